package common

const (
	// BaseWidth and BaseHeight are the logical screen size handed to ebiten.
	BaseWidth  = 640
	BaseHeight = 360

	TPS = 60

	// AspectW:AspectH is the aspect ratio the camera frames levels into.
	AspectW = 16.0
	AspectH = 9.0
)

// TargetAspect is the camera's fixed target aspect ratio.
const TargetAspect = AspectW / AspectH
