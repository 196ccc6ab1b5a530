package entity

import (
	"fmt"

	"github.com/milk9111/phox/anim"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/player"
	"github.com/milk9111/phox/prefabs"
)

// NewPlayer spawns the player from player.yaml at the world position x, y
// (collider center, y up) and records it as the world's player.
func NewPlayer(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, x, y)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}

	lib, err := spec.Animation.Library()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	initial, err := spec.Animation.InitialState()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	animator, err := anim.NewAnimator(lib, initial)
	if err != nil {
		return 0, fmt.Errorf("player: initial animation: %w", err)
	}

	cfg := spec.Config()
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        spec.Collider.Width,
		Height:       spec.Collider.Height,
		Mass:         spec.Collider.Mass,
		Friction:     spec.Collider.Friction,
		LockRotation: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Config: cfg,
		Jumps:  player.NewJumpCounter(cfg.JumpLimit),
	}); err != nil {
		return 0, fmt.Errorf("player: add player state: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     animator.Clip.Sheet,
		Source:    animator.Clip.Source(animator.Frame),
		UseSource: true,
		OriginX:   spec.Sprite.OriginX,
		OriginY:   spec.Sprite.OriginY,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Animator: animator, Library: lib}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	w.SetPlayer(e)
	return e, nil
}

// ApplyPlayerSpec re-applies tunables and clips to a live player after
// player.yaml changed. The jump count and grounded state carry over.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: spec is nil")
	}
	state, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: reload: %w", ecs.ErrEntityNotAlive)
	}

	lib, err := spec.Animation.Library()
	if err != nil {
		return fmt.Errorf("player: reload: %w", err)
	}

	if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if err := a.Animator.Rebind(lib); err != nil {
			return fmt.Errorf("player: reload: %w", err)
		}
		a.Library = lib
	}

	cfg := spec.Config()
	jumps := player.NewJumpCounter(cfg.JumpLimit)
	for i := 0; i < state.Jumps.Count() && jumps.CanJump(); i++ {
		jumps.Increase()
	}
	state.Config = cfg
	state.Jumps = jumps

	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.OriginX = spec.Sprite.OriginX
		s.OriginY = spec.Sprite.OriginY
	}
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		l.Index = spec.RenderLayer.Index
	}
	return nil
}
