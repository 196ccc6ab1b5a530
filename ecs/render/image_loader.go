package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phox/levels"
	"golang.org/x/image/colornames"
)

const (
	tileKeyPrefix   = "tile:"
	placeholderSize = 32
)

// AssetsDir is where sprite sheets are looked up.
var AssetsDir = "assets"

// LoadImage resolves key to an image and caches it. Tile keys are generated
// as solid blocks; anything else is a PNG under AssetsDir. A sheet that
// cannot be read becomes a placeholder so a missing asset never stops the
// game.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}

	if strings.HasPrefix(key, tileKeyPrefix) {
		img, err := tileImage(key)
		if err != nil {
			return nil, err
		}
		RegisterImage(key, img)
		return img, nil
	}

	img, err := loadImageFromFS(key)
	if err != nil {
		log.Warn("using placeholder image", "key", key, "err", err)
		img = placeholderImage()
		images[key] = img
		placeholders[key] = true
		return img, nil
	}
	RegisterImage(key, img)
	return img, nil
}

func loadImageFromFS(path string) (*ebiten.Image, error) {
	tried := []string{filepath.Join(AssetsDir, filepath.FromSlash(path)), filepath.FromSlash(path)}
	var lastErr error
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, lastErr
}

// tileImage builds the solid block named by a key of the form
// "tile:<color>:<size>".
func tileImage(key string) (*ebiten.Image, error) {
	rest := strings.TrimPrefix(key, tileKeyPrefix)
	colorPart, sizePart, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("malformed tile key %q", key)
	}
	size, err := strconv.Atoi(sizePart)
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("malformed tile key %q", key)
	}

	clr := colornames.Slategray
	if colorPart != "" {
		clr, err = levels.ParseColor(colorPart)
		if err != nil {
			return nil, fmt.Errorf("tile key %q: %w", key, err)
		}
	}

	img := ebiten.NewImage(size, size)
	img.Fill(clr)
	return img, nil
}

func placeholderImage() *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(colornames.Fuchsia)
	half := placeholderSize / 2
	dark := img.SubImage(image.Rect(0, 0, half, half)).(*ebiten.Image)
	dark.Fill(colornames.Black)
	dark = img.SubImage(image.Rect(half, half, placeholderSize, placeholderSize)).(*ebiten.Image)
	dark.Fill(colornames.Black)
	return img
}
