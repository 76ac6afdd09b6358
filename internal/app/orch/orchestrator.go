// Package orch coordinates rooms and connections: every inbound signaling
// event lands here, mutates the room store under one lock and fans the
// resulting events out to the affected connections.
package orch

import (
	"context"
	"sync"

	"github.com/dkeye/voicehub/internal/app"
	"github.com/dkeye/voicehub/internal/core"
	"github.com/dkeye/voicehub/internal/domain"
	"github.com/dkeye/voicehub/internal/metrics"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Registry *app.Registry
	Rooms    *core.RoomStore
	Policy   app.Policy
	Metrics  *metrics.Metrics

	// mu serializes every room store access so the store and its reverse
	// index change together, one event at a time.
	mu sync.Mutex
}

func New(reg *app.Registry, rooms *core.RoomStore, policy app.Policy, m *metrics.Metrics) *Orchestrator {
	if m == nil {
		m = metrics.Nop()
	}
	return &Orchestrator{
		Registry: reg,
		Rooms:    rooms,
		Policy:   policy,
		Metrics:  m,
	}
}

// Connect makes sid reachable for relays and broadcasts.
func (o *Orchestrator) Connect(sid domain.ConnID, conn core.SignalConnection, client string, cancel context.CancelFunc) {
	o.Registry.Bind(sid, conn, client, cancel)
	o.Metrics.Connections.Inc()
}

// ListRooms is the read-only projection behind GET /api/rooms.
func (o *Orchestrator) ListRooms() []core.RoomInfo {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.Rooms.ListRooms()
}

func (o *Orchestrator) updateGauges() {
	o.Metrics.Rooms.Set(float64(o.Rooms.Len()))
	o.Metrics.RoomMembers.Set(float64(o.Rooms.Joined()))
}

func (o *Orchestrator) onBackpressure(sid domain.ConnID, err error) {
	o.Metrics.DroppedFrames.Inc()
	if o.Policy == nil {
		return
	}
	switch o.Policy.OnBackPressure(sid, err) {
	case app.KickMember:
		log.Warn().Err(err).Str("module", "orch").Str("sid", string(sid)).Msg("kicking slow connection")
		o.Registry.Cancel(sid)
	case app.DropFrame, app.NoAction:
		log.Debug().Err(err).Str("module", "orch").Str("sid", string(sid)).Msg("frame dropped")
	}
}
