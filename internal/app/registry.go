package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dkeye/voicehub/internal/core"
	"github.com/dkeye/voicehub/internal/domain"
	"github.com/rs/zerolog/log"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrConnClosed   = errors.New("connection closed")
	ErrConnNotFound = errors.New("connection not found")
)

type connEntry struct {
	Conn   core.SignalConnection
	Client string
	Cancel context.CancelFunc
}

// Registry tracks every live signaling connection by its id.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.ConnID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[domain.ConnID]*connEntry),
	}
}

// Bind registers conn under sid. client is the browser token the
// connection arrived with; cancel tears the connection's pumps down.
func (r *Registry) Bind(sid domain.ConnID, conn core.SignalConnection, client string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[sid] = &connEntry{Conn: conn, Client: client, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("client", client).Msg("bound connection")
}

// Unbind forgets sid and reports whether it was registered.
func (r *Registry) Unbind(sid domain.ConnID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[sid]; !ok {
		return false
	}
	delete(r.conns, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind connection")
	return true
}

func (r *Registry) Get(sid domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[sid]; ok {
		return e.Conn, true
	}
	return nil, false
}

// Send queues f on sid's connection without blocking.
func (r *Registry) Send(sid domain.ConnID, f core.Frame) error {
	conn, ok := r.Get(sid)
	if !ok {
		return fmt.Errorf("send to %s: %w", sid, ErrConnNotFound)
	}
	if err := conn.TrySend(f); err != nil {
		return fmt.Errorf("send to %s: %w", sid, err)
	}
	return nil
}

// Cancel stops sid's pumps; the transport then reports the disconnect.
func (r *Registry) Cancel(sid domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.conns[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled connection")
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
