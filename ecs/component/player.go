package component

import "github.com/milk9111/phox/player"

// Player is the gameplay state owned by the player entity. Each field is
// written by exactly one system per tick.
type Player struct {
	Config player.Config
	Jumps  player.JumpCounter
	Ground player.GroundDetector
}

var PlayerComponent = NewComponent[Player]()
