package player

import (
	"github.com/milk9111/phox/common"
	"github.com/milk9111/phox/input"
)

const (
	DefaultMoveSpeed       = 200.0
	DefaultJumpImpulse     = 160.0
	DefaultSpeedMultiplier = 2.0
)

// Config holds the tunables of the movement rule.
type Config struct {
	MoveSpeed       float64
	JumpImpulse     float64
	SpeedMultiplier float64
	JumpLimit       int
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:       DefaultMoveSpeed,
		JumpImpulse:     DefaultJumpImpulse,
		SpeedMultiplier: DefaultSpeedMultiplier,
		JumpLimit:       DefaultJumpLimit,
	}
}

// ApplyMovement writes the player's intended velocity for this tick.
//
// Order within the tick is fixed: horizontal input, then the jump edge
// (gated by jumps), then the grounded clear. A jump taken on the same tick
// the player is grounded keeps its impulse and leaves the counter at zero.
//
// It reports whether a jump impulse was applied.
func ApplyMovement(cfg Config, actions input.ActionState, vel *common.Vec2, jumps *JumpCounter, grounded bool) bool {
	if vel == nil || jumps == nil {
		return false
	}

	speed := cfg.MoveSpeed
	if actions.Pressed(input.Speed) && cfg.SpeedMultiplier > 0 {
		speed *= cfg.SpeedMultiplier
	}
	if actions.Pressed(input.Left) {
		vel.X = -speed
	}
	if actions.Pressed(input.Right) {
		vel.X = speed
	}

	jumped := false
	if actions.JustPressed(input.Jump) && jumps.CanJump() {
		vel.Y = cfg.JumpImpulse
		jumps.Increase()
		jumped = true
	}

	if grounded {
		jumps.Clear()
	}

	return jumped
}
