package protocol

import (
	"encoding/json"
	"testing"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "known event", raw: `{"type":"create-room"}`, want: EventCreateRoom},
		{name: "with data", raw: `{"type":"join-room","data":{"roomId":"r"}}`, want: EventJoinRoom},
		{name: "unknown event", raw: `{"type":"rename"}`, wantErr: ErrUnknownEvent},
		{name: "server event is not inbound", raw: `{"type":"room-created"}`, wantErr: ErrUnknownEvent},
		{name: "not json", raw: `hello`, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Parse([]byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.Type)
		})
	}
}

func TestDecode_JoinRoom(t *testing.T) {
	var p JoinRoom
	require.NoError(t, Decode(json.RawMessage(`{"roomId":"room-1","isAdmin":true}`), &p))
	assert.Equal(t, domain.RoomID("room-1"), p.RoomID)
	assert.True(t, p.IsAdmin)

	var missing JoinRoom
	assert.ErrorIs(t, Decode(json.RawMessage(`{"isAdmin":true}`), &missing), ErrInvalidPayload)
	assert.ErrorIs(t, Decode(nil, &missing), ErrInvalidPayload)
}

func TestDecode_SignalIsOpaque(t *testing.T) {
	var p SendSignal
	raw := `{"userToSignal":"a","signal":{"type":"offer","sdp":"v=0\r\n"},"roomId":"r"}`
	require.NoError(t, Decode(json.RawMessage(raw), &p))
	assert.JSONEq(t, `{"type":"offer","sdp":"v=0\r\n"}`, string(p.Signal))

	var noSignal SendSignal
	assert.ErrorIs(t, Decode(json.RawMessage(`{"userToSignal":"a"}`), &noSignal), ErrInvalidPayload)

	var noCaller ReturnSignal
	assert.ErrorIs(t, Decode(json.RawMessage(`{"signal":"x"}`), &noCaller), ErrInvalidPayload)
}

func TestDecode_AdminCommand(t *testing.T) {
	var p AdminCommand
	require.NoError(t, Decode(json.RawMessage(`{"userId":"b"}`), &p))
	assert.Empty(t, p.RoomID)
	assert.Equal(t, domain.ConnID("b"), p.UserID)

	var bad AdminCommand
	assert.ErrorIs(t, Decode(json.RawMessage(`{"roomId":"r"}`), &bad), ErrInvalidPayload)
	assert.ErrorIs(t, Decode(json.RawMessage(`{"userId":42}`), &bad), ErrInvalidPayload)
}

func TestEncode(t *testing.T) {
	f, err := Encode(EventUpdateUsers, []domain.ConnID{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"update-users","data":["a","b"]}`, string(f))

	f, err = Encode(EventUserDisconnected, domain.ConnID("a"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"user-disconnected","data":"a"}`, string(f))

	f, err = Encode(EventPong, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pong"}`, string(f))

	f, err = Encode(EventReceiveSignal, ReceiveSignal{Signal: json.RawMessage(`"X"`), From: "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"receive-signal","data":{"signal":"X","from":"b"}}`, string(f))
}

func TestDecode_WhisperWithoutAudio(t *testing.T) {
	var p Whisper
	require.NoError(t, Decode(json.RawMessage(`{"currentRoom":"room-1"}`), &p))
	assert.Equal(t, domain.RoomID("room-1"), p.CurrentRoom)
	assert.Nil(t, p.AudioData)

	f, err := Encode(EventAudioStream, AudioStream{AudioData: p.AudioData, From: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"audioStream","data":{"audioData":null,"from":"a"}}`, string(f))
}
