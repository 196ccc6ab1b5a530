package system

import (
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/player"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
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
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	if player.ApplyMovement(state.Config, in.Actions, &vel.Vec2, &state.Jumps, state.Ground.Grounded()) {
		w.Events().Push(ecs.Event{Kind: ecs.EventJumped, Entity: e, Data: state.Jumps.Count()})
	}
}
