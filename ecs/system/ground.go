package system

import (
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
)

// GroundDetectionSystem samples the player's post-physics height into its
// ground detector.
type GroundDetectionSystem struct{}

func NewGroundDetectionSystem() *GroundDetectionSystem {
	return &GroundDetectionSystem{}
}

func (g *GroundDetectionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := w.Player()
	if !ok {
		return
	}
	state, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	was := state.Ground.Grounded()
	if now := state.Ground.Update(transform.Y); now != was {
		w.Events().Push(ecs.Event{Kind: ecs.EventGroundedChanged, Entity: e, Data: now})
	}
}
