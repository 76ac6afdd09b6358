package orch

import (
	"encoding/json"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

// RelayOffer forwards a negotiation payload from one peer to another
// untouched. A target without a live connection loses the message; the
// browser times the negotiation out on its own.
func (o *Orchestrator) RelayOffer(from, target domain.ConnID, signal json.RawMessage) bool {
	return o.relay(from, target, signal)
}

// RelayAnswer is the answering half of RelayOffer.
func (o *Orchestrator) RelayAnswer(from, caller domain.ConnID, signal json.RawMessage) bool {
	return o.relay(from, caller, signal)
}

func (o *Orchestrator) relay(from, to domain.ConnID, signal json.RawMessage) bool {
	ok := o.sendTo(to, protocol.EventReceiveSignal, protocol.ReceiveSignal{Signal: signal, From: from})
	log.Debug().Str("module", "orch").Str("sid", string(from)).Str("target", string(to)).Bool("delivered", ok).Msg("relay signal")
	return ok
}

// Whisper relays audio to targetRoom when it names an existing room, the
// sender's own included. Otherwise it goes to every room except
// currentRoom. It returns the number of rooms addressed.
func (o *Orchestrator) Whisper(from domain.ConnID, currentRoom domain.RoomID, audio json.RawMessage, targetRoom domain.RoomID) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	msg := protocol.AudioStream{AudioData: audio, From: from}
	if targetRoom != "" && o.Rooms.Exists(targetRoom) {
		o.broadcastRoom(targetRoom, protocol.EventAudioStream, msg)
		log.Debug().Str("module", "orch").Str("sid", string(from)).Str("room_id", string(targetRoom)).Msg("whisper to room")
		return 1
	}

	rooms := 0
	for _, id := range o.Rooms.RoomIDs() {
		if id == currentRoom {
			continue
		}
		o.broadcastRoom(id, protocol.EventAudioStream, msg)
		rooms++
	}
	log.Debug().Str("module", "orch").Str("sid", string(from)).Str("current_room", string(currentRoom)).Int("rooms", rooms).Msg("whisper to other rooms")
	return rooms
}
