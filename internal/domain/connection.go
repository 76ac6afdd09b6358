// Package domain contains entity without logic, just meta-data
package domain

import "github.com/google/uuid"

// ConnID identifies one live transport connection. It is opaque to clients
// and dies with the connection.
type ConnID string

func NewConnID() ConnID {
	return ConnID(uuid.NewString())
}
