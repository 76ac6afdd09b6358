package orch

import (
	"errors"
	"fmt"

	"github.com/dkeye/voicehub/internal/core"
	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

var ErrNotAdmin = errors.New("requester is not a room admin")

// authorize resolves the command's room and checks that requester may
// moderate target there. An empty roomID resolves through the reverse index.
func (o *Orchestrator) authorize(requester domain.ConnID, roomID domain.RoomID, target domain.ConnID) (domain.RoomID, error) {
	if roomID == "" {
		id, ok := o.Rooms.RoomOf(requester)
		if !ok {
			return "", fmt.Errorf("resolve room of %s: %w", requester, core.ErrRoomNotFound)
		}
		roomID = id
	}
	if !o.Rooms.Exists(roomID) {
		return "", fmt.Errorf("resolve %s: %w", roomID, core.ErrRoomNotFound)
	}
	if !o.Rooms.IsAdmin(roomID, requester) {
		return "", fmt.Errorf("%s in %s: %w", requester, roomID, ErrNotAdmin)
	}
	if !o.Rooms.HasMember(roomID, target) {
		return "", fmt.Errorf("target %s in %s: %w", target, roomID, core.ErrNotMember)
	}
	return roomID, nil
}

// deny swallows a failed admin command. The requester is told nothing.
func (o *Orchestrator) deny(command string, requester domain.ConnID, err error) {
	o.Metrics.AdminDenied.WithLabelValues(command).Inc()
	log.Debug().Err(err).Str("module", "orch").Str("command", command).Str("sid", string(requester)).Msg("admin command ignored")
}

// MuteUser broadcasts mute-user to the whole room, target included, so
// the target can silence its own microphone.
func (o *Orchestrator) MuteUser(requester domain.ConnID, roomID domain.RoomID, target domain.ConnID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	id, err := o.authorize(requester, roomID, target)
	if err != nil {
		o.deny(protocol.EventMuteUser, requester, err)
		return false
	}
	o.broadcastRoom(id, protocol.EventMuteUser, target)
	log.Info().Str("module", "orch").Str("sid", string(requester)).Str("room_id", string(id)).Str("target", string(target)).Msg("muted")
	return true
}

// UnmuteUser broadcasts unmute-user followed by microphone-unmuted. Clients
// listen for either one, so both are sent.
func (o *Orchestrator) UnmuteUser(requester domain.ConnID, roomID domain.RoomID, target domain.ConnID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	id, err := o.authorize(requester, roomID, target)
	if err != nil {
		o.deny(protocol.EventUnmuteUser, requester, err)
		return false
	}
	o.broadcastRoom(id, protocol.EventUnmuteUser, target)
	o.broadcastRoom(id, protocol.EventMicrophoneUnmuted, target)
	log.Info().Str("module", "orch").Str("sid", string(requester)).Str("room_id", string(id)).Str("target", string(target)).Msg("unmuted")
	return true
}

// RemoveUser drops target from the room. The notification goes to the
// room as it was before the removal, so the target learns it was removed;
// later room broadcasts no longer reach it.
func (o *Orchestrator) RemoveUser(requester domain.ConnID, roomID domain.RoomID, target domain.ConnID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	id, err := o.authorize(requester, roomID, target)
	if err != nil {
		o.deny(protocol.EventRemoveUser, requester, err)
		return false
	}
	group, _ := o.Rooms.Members(id)
	o.Rooms.LeaveRoom(id, target)
	o.updateGauges()

	remaining, _ := o.Rooms.Members(id)
	o.fanout(group, protocol.EventUserDisconnected, target)
	o.fanout(group, protocol.EventUpdateUsers, remaining)
	log.Info().Str("module", "orch").Str("sid", string(requester)).Str("room_id", string(id)).Str("target", string(target)).Msg("removed")
	return true
}
