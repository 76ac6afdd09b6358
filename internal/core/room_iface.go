package core

import (
	"errors"

	"github.com/dkeye/voicehub/internal/domain"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotMember    = errors.New("connection is not a room member")
)

// RoomInfo is a read-only view for APIs.
type RoomInfo struct {
	ID    domain.RoomID   `json:"id"`
	Users []domain.ConnID `json:"users"`
}
