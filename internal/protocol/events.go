// Package protocol defines the signaling wire format: every frame is a JSON
// envelope {"type": <event>, "data": <payload>} and every event name has a
// fixed payload schema.
package protocol

// Client -> server events.
const (
	EventCreateRoom   = "create-room"
	EventJoinRoom     = "join-room"
	EventSendSignal   = "send-signal"
	EventReturnSignal = "return-signal"
	EventWhisper      = "whisper"
	EventMuteUser     = "mute-user"
	EventUnmuteUser   = "unmute-user"
	EventRemoveUser   = "remove-user"
	EventPing         = "ping"
)

// Server -> client events.
const (
	EventRoomCreated       = "room-created"
	EventJoinedRoom        = "joined-room"
	EventUserJoined        = "user-joined"
	EventUpdateUsers       = "update-users"
	EventReceiveSignal     = "receive-signal"
	EventAudioStream       = "audioStream"
	EventMicrophoneUnmuted = "microphone-unmuted"
	EventUserDisconnected  = "user-disconnected"
	EventPong              = "pong"
)

var inbound = map[string]struct{}{
	EventCreateRoom:   {},
	EventJoinRoom:     {},
	EventSendSignal:   {},
	EventReturnSignal: {},
	EventWhisper:      {},
	EventMuteUser:     {},
	EventUnmuteUser:   {},
	EventRemoveUser:   {},
	EventPing:         {},
}

// Known reports whether clients may send event.
func Known(event string) bool {
	_, ok := inbound[event]
	return ok
}
