package render

import "github.com/hajimehoshi/ebiten/v2"

var (
	images       = map[string]*ebiten.Image{}
	placeholders = map[string]bool{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
	delete(placeholders, key)
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// IsPlaceholder reports whether key resolved to the missing-image stand-in.
func IsPlaceholder(key string) bool {
	return placeholders[key]
}

// ForgetImages drops every cached image so the next lookup reloads from disk.
func ForgetImages() {
	clear(images)
	clear(placeholders)
}
