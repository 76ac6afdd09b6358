package domain

import "slices"

type RoomID string

// Room is a broadcast scope for membership and moderation events.
// Admins is always a subset of Users.
type Room struct {
	ID     RoomID
	Users  map[ConnID]struct{}
	Admins map[ConnID]struct{}
}

func NewRoom(id RoomID) *Room {
	return &Room{
		ID:     id,
		Users:  make(map[ConnID]struct{}),
		Admins: make(map[ConnID]struct{}),
	}
}

func (r *Room) HasUser(id ConnID) bool {
	_, ok := r.Users[id]
	return ok
}

func (r *Room) IsAdmin(id ConnID) bool {
	_, ok := r.Admins[id]
	return ok
}

// UserIDs returns the member ids sorted, so rosters are stable across calls.
func (r *Room) UserIDs() []ConnID {
	out := make([]ConnID, 0, len(r.Users))
	for id := range r.Users {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
