package core

import (
	"fmt"
	"testing"

	"github.com/dkeye/voicehub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkConsistent asserts admins ⊆ users for every room and that every
// reverse index entry points at a room that holds the connection.
func checkConsistent(t *testing.T, s *RoomStore) {
	t.Helper()
	for id, room := range s.rooms {
		for admin := range room.Admins {
			assert.Truef(t, room.HasUser(admin), "admin %s of %s is not a user", admin, id)
		}
	}
	for conn, roomID := range s.byConn {
		room, ok := s.rooms[roomID]
		require.Truef(t, ok, "index entry %s -> %s points at missing room", conn, roomID)
		assert.Truef(t, room.HasUser(conn), "index entry %s -> %s but not a member", conn, roomID)
	}
}

func TestRoomStore_CreateRoomDistinct(t *testing.T) {
	s := NewRoomStore()
	seen := make(map[domain.RoomID]struct{})
	for range 200 {
		id := s.CreateRoom()
		require.Regexp(t, `^room-[0-9a-z]{9}$`, string(id))
		_, dup := seen[id]
		require.False(t, dup, "duplicate room id %s", id)
		seen[id] = struct{}{}
	}
	assert.Equal(t, 200, s.Len())
}

func TestRoomStore_CreateRoomRetriesOnCollision(t *testing.T) {
	ids := []domain.RoomID{"room-a", "room-a", "room-a", "room-b"}
	i := 0
	s := NewRoomStoreWithIDs(func() domain.RoomID {
		id := ids[i]
		i++
		return id
	})

	assert.Equal(t, domain.RoomID("room-a"), s.CreateRoom())
	assert.Equal(t, domain.RoomID("room-b"), s.CreateRoom())
	assert.Equal(t, 2, s.Len())
}

func TestRoomStore_JoinRoom(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()

	tests := []struct {
		name    string
		room    domain.RoomID
		conn    domain.ConnID
		admin   bool
		wantOK  bool
		wantAdm bool
	}{
		{name: "admin join", room: r1, conn: "a", admin: true, wantOK: true, wantAdm: true},
		{name: "plain join", room: r1, conn: "b", wantOK: true},
		{name: "unknown room", room: "room-missing", conn: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := s.JoinRoom(tt.room, tt.conn, tt.admin)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAdm, s.IsAdmin(tt.room, tt.conn))
			_, indexed := s.RoomOf(tt.conn)
			assert.Equal(t, tt.wantOK, indexed)
			checkConsistent(t, s)
		})
	}

	members, err := s.Members(r1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.ConnID{"a", "b"}, members)
}

func TestRoomStore_JoinThenLeaveRestoresUsers(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()
	require.True(t, s.JoinRoom(r1, "a", false))
	before, _ := s.Members(r1)

	require.True(t, s.JoinRoom(r1, "b", true))
	require.True(t, s.LeaveRoom(r1, "b"))

	after, _ := s.Members(r1)
	assert.Equal(t, before, after)
	assert.False(t, s.IsAdmin(r1, "b"))
	_, ok := s.RoomOf("b")
	assert.False(t, ok)
	checkConsistent(t, s)
}

func TestRoomStore_LeaveRoomNoop(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()
	r2 := s.CreateRoom()
	require.True(t, s.JoinRoom(r1, "a", true))

	assert.False(t, s.LeaveRoom(r2, "a"), "not a member of r2")
	assert.False(t, s.LeaveRoom("room-missing", "a"))

	got, ok := s.RoomOf("a")
	require.True(t, ok)
	assert.Equal(t, r1, got)
	assert.True(t, s.IsAdmin(r1, "a"))
	checkConsistent(t, s)
}

func TestRoomStore_JoinElsewhereMovesConnection(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()
	r2 := s.CreateRoom()
	require.True(t, s.JoinRoom(r1, "a", true))
	require.True(t, s.JoinRoom(r2, "a", false))

	assert.False(t, s.HasMember(r1, "a"))
	assert.False(t, s.IsAdmin(r1, "a"))
	assert.True(t, s.HasMember(r2, "a"))
	got, _ := s.RoomOf("a")
	assert.Equal(t, r2, got)
	checkConsistent(t, s)
}

func TestRoomStore_RejoinKeepsAdmin(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()
	require.True(t, s.JoinRoom(r1, "a", true))
	require.True(t, s.JoinRoom(r1, "a", false))
	assert.True(t, s.IsAdmin(r1, "a"))
	assert.Equal(t, 1, s.Joined())
}

func TestRoomStore_EmptyRoomsAreKept(t *testing.T) {
	s := NewRoomStore()
	r1 := s.CreateRoom()
	require.True(t, s.JoinRoom(r1, "a", false))
	require.True(t, s.LeaveRoom(r1, "a"))

	assert.True(t, s.Exists(r1))
	members, err := s.Members(r1)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestRoomStore_MembersUnknownRoom(t *testing.T) {
	s := NewRoomStore()
	_, err := s.Members("room-missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStore_ListRooms(t *testing.T) {
	s := NewRoomStore()
	assert.Empty(t, s.ListRooms())

	r1 := s.CreateRoom()
	r2 := s.CreateRoom()
	for i := range 3 {
		require.True(t, s.JoinRoom(r1, domain.ConnID(fmt.Sprintf("c%d", i)), false))
	}

	list := s.ListRooms()
	require.Len(t, list, 2)
	byID := map[domain.RoomID][]domain.ConnID{}
	for _, info := range list {
		byID[info.ID] = info.Users
	}
	assert.ElementsMatch(t, []domain.ConnID{"c0", "c1", "c2"}, byID[r1])
	assert.Empty(t, byID[r2])
}
