package protocol

import (
	"encoding/json"

	"github.com/dkeye/voicehub/internal/domain"
)

type JoinRoom struct {
	RoomID  domain.RoomID `json:"roomId" validate:"required"`
	IsAdmin bool          `json:"isAdmin"`
}

// SendSignal carries an opaque negotiation payload to UserToSignal.
// RoomID is accepted but not used for routing.
type SendSignal struct {
	UserToSignal domain.ConnID   `json:"userToSignal" validate:"required"`
	Signal       json.RawMessage `json:"signal" validate:"required"`
	RoomID       domain.RoomID   `json:"roomId,omitempty"`
}

type ReturnSignal struct {
	Signal   json.RawMessage `json:"signal" validate:"required"`
	CallerID domain.ConnID   `json:"callerId" validate:"required"`
}

type Whisper struct {
	CurrentRoom   domain.RoomID   `json:"currentRoom"`
	AudioData     json.RawMessage `json:"audioData"`
	WhisperRoomID domain.RoomID   `json:"whisperRoomId,omitempty"`
}

// AdminCommand is shared by mute-user, unmute-user and remove-user. An
// empty RoomID means "the requester's current room".
type AdminCommand struct {
	RoomID domain.RoomID `json:"roomId,omitempty"`
	UserID domain.ConnID `json:"userId" validate:"required"`
}

type RoomCreated struct {
	RoomID domain.RoomID `json:"roomId"`
}

type JoinedRoom struct {
	RoomID domain.RoomID `json:"roomId"`
}

type UserJoined struct {
	SocketID domain.ConnID `json:"socketId"`
	IsAdmin  bool          `json:"isAdmin"`
}

type ReceiveSignal struct {
	Signal json.RawMessage `json:"signal"`
	From   domain.ConnID   `json:"from"`
}

type AudioStream struct {
	AudioData json.RawMessage `json:"audioData"`
	From      domain.ConnID   `json:"from"`
}
