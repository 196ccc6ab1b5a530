package system

import (
	"github.com/milk9111/phox/camera"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
)

// CameraSystem frames the loaded level around the player. Without a level
// or a player the camera keeps its last frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	p, ok := w.Player()
	if !ok {
		return
	}
	target, ok := ecs.Get(w, p, component.TransformComponent.Kind())
	if !ok {
		return
	}

	level := camera.Level{
		Width:   bounds.Width,
		Height:  bounds.Height,
		OffsetX: bounds.OffsetX,
		OffsetY: bounds.OffsetY,
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Frame = camera.FitAspect(level, target.X, target.Y, cam.AspectW, cam.AspectH)
		cam.Framed = true
	})
}
