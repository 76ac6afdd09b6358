package orch

import (
	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/protocol"
	"github.com/rs/zerolog/log"
)

// CreateRoom creates an empty room and answers room-created to sid.
// Rooms are never deleted, even once empty.
func (o *Orchestrator) CreateRoom(sid domain.ConnID) domain.RoomID {
	o.mu.Lock()
	defer o.mu.Unlock()

	roomID := o.Rooms.CreateRoom()
	o.updateGauges()
	o.sendTo(sid, protocol.EventRoomCreated, protocol.RoomCreated{RoomID: roomID})
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room_id", string(roomID)).Msg("room created")
	return roomID
}

// JoinRoom adds sid to roomID. A join against an unknown room is ignored.
// Joining a different room leaves the current one first, with the usual
// departure broadcast to the old room.
func (o *Orchestrator) JoinRoom(sid domain.ConnID, roomID domain.RoomID, isAdmin bool) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.Rooms.Exists(roomID) {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("room_id", string(roomID)).Msg("join: room is not exists")
		return false
	}
	if prev, ok := o.Rooms.RoomOf(sid); ok && prev != roomID {
		o.leave(prev, sid)
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("from_room", string(prev)).Msg("left room to join another")
	}
	o.Rooms.JoinRoom(roomID, sid, isAdmin)
	o.updateGauges()

	o.sendTo(sid, protocol.EventJoinedRoom, protocol.JoinedRoom{RoomID: roomID})
	admin := o.Rooms.IsAdmin(roomID, sid)
	o.broadcastRoom(roomID, protocol.EventUserJoined, protocol.UserJoined{SocketID: sid, IsAdmin: admin})
	o.broadcastRoster(roomID)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room_id", string(roomID)).Bool("admin", admin).Msg("joined room")
	return true
}

// Disconnect reconciles a lost connection: it is dropped from the
// registry and from the room the reverse index names, and the remaining
// members get user-disconnected plus the new roster.
func (o *Orchestrator) Disconnect(sid domain.ConnID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Registry.Unbind(sid) {
		o.Metrics.Connections.Dec()
	}
	roomID, ok := o.Rooms.RoomOf(sid)
	if !ok {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Msg("disconnect: not in a room")
		return
	}
	o.leave(roomID, sid)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room_id", string(roomID)).Msg("disconnected from room")
}

// leave removes sid from roomID and notifies the members left behind.
// Callers hold o.mu.
func (o *Orchestrator) leave(roomID domain.RoomID, sid domain.ConnID) {
	if !o.Rooms.LeaveRoom(roomID, sid) {
		return
	}
	o.updateGauges()
	o.broadcastRoom(roomID, protocol.EventUserDisconnected, sid)
	o.broadcastRoster(roomID)
}
