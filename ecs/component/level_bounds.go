package component

// LevelBounds stores the pixel size and world offset of the loaded level.
type LevelBounds struct {
	Name    string
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
