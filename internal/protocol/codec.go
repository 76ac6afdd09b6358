package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkeye/voicehub/internal/core"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownEvent   = errors.New("unknown event")
	ErrInvalidPayload = errors.New("invalid payload")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Envelope is the frame shape in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Parse reads an inbound frame and checks the event name.
func Parse(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("parse envelope: %w", errors.Join(ErrInvalidPayload, err))
	}
	if !Known(env.Type) {
		return env, fmt.Errorf("%q: %w", env.Type, ErrUnknownEvent)
	}
	return env, nil
}

// Decode unmarshals an event payload into v and validates it against the
// struct's schema.
func Decode(data json.RawMessage, v any) error {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		data = json.RawMessage("{}")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode: %w", errors.Join(ErrInvalidPayload, err))
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validate: %w", errors.Join(ErrInvalidPayload, err))
	}
	return nil
}

// Encode builds an outbound frame.
func Encode(event string, data any) (core.Frame, error) {
	var payload json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", event, err)
		}
		payload = b
	}
	b, err := json.Marshal(Envelope{Type: event, Data: payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event, err)
	}
	return core.Frame(b), nil
}
