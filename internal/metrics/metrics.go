// Package metrics holds the prometheus collectors of the signaling service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voicehub"

type Metrics struct {
	Connections   prometheus.Gauge
	Rooms         prometheus.Gauge
	RoomMembers   prometheus.Gauge
	Events        *prometheus.CounterVec
	DroppedFrames prometheus.Counter
	AdminDenied   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Live signaling connections.",
		}),
		Rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Rooms in the store, empty ones included.",
		}),
		RoomMembers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "room_members",
			Help:      "Connections currently joined to a room.",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Inbound events accepted, by event name.",
		}, []string{"event"}),
		DroppedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_frames_total",
			Help:      "Outbound frames dropped on a full or closed connection.",
		}),
		AdminDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_denied_total",
			Help:      "Admin commands ignored because the room was unresolved or the requester is not an admin.",
		}, []string{"command"}),
	}
	reg.MustRegister(m.Connections, m.Rooms, m.RoomMembers, m.Events, m.DroppedFrames, m.AdminDenied)
	return m
}

// Nop returns collectors registered nowhere, for tests and tools.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}
