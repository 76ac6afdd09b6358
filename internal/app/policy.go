package app

import (
	"fmt"

	"github.com/dkeye/voicehub/internal/domain"
)

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	KickMember
)

// Policy decides what happens to a connection whose outbound queue
// rejected a frame.
type Policy interface {
	OnBackPressure(sid domain.ConnID, err error) BackpressureAction
}

// SimplePolicy kicks slow members.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(domain.ConnID, error) BackpressureAction {
	return KickMember
}

// DropPolicy loses the frame and keeps the member.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(domain.ConnID, error) BackpressureAction {
	return DropFrame
}

// ParsePolicy maps the backpressure_policy config value to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "drop":
		return DropPolicy{}, nil
	case "kick":
		return SimplePolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown backpressure policy %q", name)
	}
}
