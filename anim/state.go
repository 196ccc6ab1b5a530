package anim

import (
	"fmt"
	"strings"

	"github.com/milk9111/phox/common"
)

// State is the animation a moving actor should be showing.
type State uint8

const (
	Idle State = iota
	Run
	Jump
	Fall
)

const (
	verticalThreshold = 0.01
	flipDeadZone      = 0.1
)

var stateNames = map[State]string{
	Idle: "idle",
	Run:  "run",
	Jump: "jump",
	Fall: "fall",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ParseState maps a prefab key such as "run" to its State.
func ParseState(name string) (State, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range stateNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("anim: unknown state %q", name)
}

// Select derives the animation state from a velocity. Vertical motion wins
// over horizontal motion.
func Select(vel common.Vec2) State {
	switch {
	case vel.Y > verticalThreshold:
		return Jump
	case vel.Y < -verticalThreshold:
		return Fall
	case vel.X != 0:
		return Run
	default:
		return Idle
	}
}
