package component

// Transform is a world-space position (y up). For physics bodies it is the
// body center; for tiles it is the bottom-left corner.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
