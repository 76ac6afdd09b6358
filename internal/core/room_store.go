package core

import (
	"fmt"
	"slices"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog/log"
)

// RoomStore owns every Room together with the reverse index
// (connection -> room). Both maps are mutated in the same call so they
// never disagree: for every indexed (conn, room), conn is in room.Users.
//
// RoomStore is not safe for concurrent use; the owner serializes access.
type RoomStore struct {
	rooms  map[domain.RoomID]*domain.Room
	byConn map[domain.ConnID]domain.RoomID
	newID  func() domain.RoomID
}

func NewRoomStore() *RoomStore {
	return NewRoomStoreWithIDs(newRoomID)
}

// NewRoomStoreWithIDs uses gen for room ids instead of random tokens.
func NewRoomStoreWithIDs(gen func() domain.RoomID) *RoomStore {
	return &RoomStore{
		rooms:  make(map[domain.RoomID]*domain.Room),
		byConn: make(map[domain.ConnID]domain.RoomID),
		newID:  gen,
	}
}

// roomToken yields 9 lowercase base36 characters.
var roomToken = func() func() string {
	gen, err := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 9)
	if err != nil {
		panic(err)
	}
	return gen
}()

func newRoomID() domain.RoomID {
	return domain.RoomID("room-" + roomToken())
}

// CreateRoom inserts an empty room under a fresh id.
func (s *RoomStore) CreateRoom() domain.RoomID {
	id := s.newID()
	for s.Exists(id) {
		log.Warn().Str("module", "core.rooms").Str("room_id", string(id)).Msg("room id collision, regenerating")
		id = s.newID()
	}
	s.rooms[id] = domain.NewRoom(id)
	log.Debug().Str("module", "core.rooms").Str("room_id", string(id)).Msg("room created")
	return id
}

// JoinRoom adds connID to the room. It reports false, changing nothing,
// when the room does not exist. A connection sits in one room at most, so
// a join elsewhere drops the previous membership first.
func (s *RoomStore) JoinRoom(roomID domain.RoomID, connID domain.ConnID, isAdmin bool) bool {
	room, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	if prev, ok := s.byConn[connID]; ok && prev != roomID {
		s.LeaveRoom(prev, connID)
	}
	room.Users[connID] = struct{}{}
	if isAdmin {
		room.Admins[connID] = struct{}{}
	}
	s.byConn[connID] = roomID
	log.Debug().Str("module", "core.rooms").Str("room_id", string(roomID)).Str("sid", string(connID)).Bool("admin", isAdmin).Msg("member added")
	return true
}

// LeaveRoom removes connID from users and admins of the room. It reports
// whether connID was a member.
func (s *RoomStore) LeaveRoom(roomID domain.RoomID, connID domain.ConnID) bool {
	room, ok := s.rooms[roomID]
	if !ok || !room.HasUser(connID) {
		return false
	}
	delete(room.Users, connID)
	delete(room.Admins, connID)
	if s.byConn[connID] == roomID {
		delete(s.byConn, connID)
	}
	log.Debug().Str("module", "core.rooms").Str("room_id", string(roomID)).Str("sid", string(connID)).Msg("member removed")
	return true
}

func (s *RoomStore) IsAdmin(roomID domain.RoomID, connID domain.ConnID) bool {
	room, ok := s.rooms[roomID]
	return ok && room.IsAdmin(connID)
}

func (s *RoomStore) HasMember(roomID domain.RoomID, connID domain.ConnID) bool {
	room, ok := s.rooms[roomID]
	return ok && room.HasUser(connID)
}

// RoomOf looks connID up in the reverse index.
func (s *RoomStore) RoomOf(connID domain.ConnID) (domain.RoomID, bool) {
	id, ok := s.byConn[connID]
	return id, ok
}

func (s *RoomStore) Exists(roomID domain.RoomID) bool {
	_, ok := s.rooms[roomID]
	return ok
}

// Members returns the room's users, or ErrRoomNotFound.
func (s *RoomStore) Members(roomID domain.RoomID) ([]domain.ConnID, error) {
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("members of %s: %w", roomID, ErrRoomNotFound)
	}
	return room.UserIDs(), nil
}

func (s *RoomStore) RoomIDs() []domain.RoomID {
	out := make([]domain.RoomID, 0, len(s.rooms))
	for id := range s.rooms {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *RoomStore) ListRooms() []RoomInfo {
	out := make([]RoomInfo, 0, len(s.rooms))
	for _, id := range s.RoomIDs() {
		out = append(out, RoomInfo{ID: id, Users: s.rooms[id].UserIDs()})
	}
	return out
}

// Len is the number of rooms, empty ones included.
func (s *RoomStore) Len() int { return len(s.rooms) }

// Joined is the number of connections currently in some room.
func (s *RoomStore) Joined() int { return len(s.byConn) }
