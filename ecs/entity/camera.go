package entity

import (
	"fmt"

	"github.com/milk9111/phox/common"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	aspectW, aspectH := common.AspectW, common.AspectH
	if cameraSpec != nil && cameraSpec.AspectW > 0 && cameraSpec.AspectH > 0 {
		aspectW, aspectH = cameraSpec.AspectW, cameraSpec.AspectH
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		AspectW: aspectW,
		AspectH: aspectH,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
