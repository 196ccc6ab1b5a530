package component

import "image"

// Sprite references an image by registry key. OriginX/OriginY locate the
// transform's anchor inside the image, in image pixels from the top-left.
type Sprite struct {
	Image     string
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	FlipX     bool
}

var SpriteComponent = NewComponent[Sprite]()
