package orch

import (
	"errors"

	"github.com/dkeye/voicehub/internal/app"
	"github.com/dkeye/voicehub/internal/core"
	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

// deliver is fire-and-forget. It reports whether f was queued.
func (o *Orchestrator) deliver(sid domain.ConnID, f core.Frame) bool {
	err := o.Registry.Send(sid, f)
	switch {
	case err == nil:
		return true
	case errors.Is(err, app.ErrConnNotFound):
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Msg("no live connection, dropping")
	default:
		o.onBackpressure(sid, err)
	}
	return false
}

func (o *Orchestrator) sendTo(sid domain.ConnID, event string, data any) bool {
	f, err := protocol.Encode(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("encode")
		return false
	}
	return o.deliver(sid, f)
}

// fanout encodes once and delivers to every id in to.
func (o *Orchestrator) fanout(to []domain.ConnID, event string, data any) int {
	f, err := protocol.Encode(event, data)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("encode")
		return 0
	}
	sent := 0
	for _, sid := range to {
		if o.deliver(sid, f) {
			sent++
		}
	}
	return sent
}

// broadcastRoom sends the event to every current member of roomID.
// Callers hold o.mu.
func (o *Orchestrator) broadcastRoom(roomID domain.RoomID, event string, data any) int {
	members, err := o.Rooms.Members(roomID)
	if err != nil {
		log.Debug().Err(err).Str("module", "orch").Str("event", event).Msg("broadcast skipped")
		return 0
	}
	sent := o.fanout(members, event, data)
	log.Debug().Str("module", "orch").Str("room_id", string(roomID)).Str("event", event).Int("sent_to", sent).Int("members", len(members)).Msg("broadcast result")
	return sent
}

// broadcastRoster sends update-users with the room's current member list.
func (o *Orchestrator) broadcastRoster(roomID domain.RoomID) {
	members, err := o.Rooms.Members(roomID)
	if err != nil {
		return
	}
	o.fanout(members, protocol.EventUpdateUsers, members)
}
