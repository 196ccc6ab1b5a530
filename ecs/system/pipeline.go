package system

import (
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/input"
	"github.com/milk9111/phox/prefabs"
)

// NewGameplayScheduler wires the per-tick systems in their fixed order:
// input, player control, physics, ground detection, animation, camera.
func NewGameplayScheduler(source input.Source, worldSpec *prefabs.WorldSpec) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(source),
		NewPlayerControllerSystem(),
		NewPhysicsSystem(worldSpec),
		NewGroundDetectionSystem(),
		NewAnimationSystem(),
		NewCameraSystem(),
	)
}
