package component

import "github.com/milk9111/phox/camera"

type Camera struct {
	AspectW float64
	AspectH float64
	Frame   camera.Frame
	// Framed is false until a level and target were available.
	Framed bool
}

var CameraComponent = NewComponent[Camera]()
