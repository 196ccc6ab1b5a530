package system

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/milk9111/phox/anim"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach3(w, component.AnimationComponent.Kind(), component.VelocityComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, animation *component.Animation, vel *component.Velocity, sprite *component.Sprite) {
		from := animation.Animator.State
		changed, err := animation.Animator.Apply(animation.Library, vel.Vec2)
		if err != nil {
			if errors.Is(err, anim.ErrMissingClip) {
				log.Warn("skipping animation", "entity", e, "err", err)
				w.Events().Push(ecs.Event{Kind: ecs.EventMissingClip, Entity: e, Data: anim.Select(vel.Vec2)})
			}
			return
		}
		if changed {
			w.Events().Push(ecs.Event{Kind: ecs.EventAnimationSwap, Entity: e, Data: [2]anim.State{from, animation.Animator.State}})
		}

		animation.Animator.Advance(dt)

		clip := animation.Animator.Clip
		sprite.Image = clip.Sheet
		sprite.Source = clip.Source(animation.Animator.Frame)
		sprite.UseSource = true
		sprite.FlipX = animation.Animator.FlipX
	})
}
