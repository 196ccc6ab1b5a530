package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/levels"
	"github.com/milk9111/phox/prefabs"
)

var ErrPlayerCount = errors.New("level must contain exactly one player spawn")

const defaultTileFriction = 0.9

// Specs bundles the prefabs a level load spawns from.
type Specs struct {
	Player *prefabs.PlayerSpec
	Camera *prefabs.CameraSpec
	World  *prefabs.WorldSpec
}

func LoadSpecs() (Specs, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return Specs{}, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return Specs{}, err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return Specs{}, err
	}
	return Specs{Player: playerSpec, Camera: cameraSpec, World: worldSpec}, nil
}

// TileImageKey names the solid-color tile image the renderer generates for
// color at size pixels.
func TileImageKey(color string, size int) string {
	return fmt.Sprintf("tile:%s:%d", color, size)
}

// LoadLevelToWorld populates world with lvl: a level bounds entity, one
// sprite entity per occupied cell, merged static colliders for physics
// layers, the camera, and the entity spawns.
//
// Level rows run top-down and spawns are measured from the top-left; the
// world is y up, so a pixel row py maps to offsetY + height - py.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, specs Specs) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	players := lvl.EntitiesOfType("player")
	if len(players) != 1 {
		return fmt.Errorf("level %q: %w (found %d)", lvl.Name, ErrPlayerCount, len(players))
	}

	tileSize := lvl.GridSize
	cols, rows := lvl.Cols(), lvl.RowCount()
	widthPx := float64(lvl.PixelWidth())
	heightPx := float64(lvl.PixelHeight())
	offX, offY := float64(lvl.WorldX), float64(lvl.WorldY)

	boundsEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Name:    lvl.Name,
		Width:   widthPx,
		Height:  heightPx,
		OffsetX: offX,
		OffsetY: offY,
	}); err != nil {
		return fmt.Errorf("level: add bounds: %w", err)
	}

	friction := defaultTileFriction
	if specs.World != nil && specs.World.TileFriction > 0 {
		friction = specs.World.TileFriction
	}

	for layerIdx, layer := range lvl.Layers {
		key := TileImageKey(layer.Color, tileSize)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if !lvl.Solid(layerIdx, col, row) {
					continue
				}

				e := ecs.CreateEntity(world)
				if err := ecs.Add(world, e, component.TileTagComponent.Kind(), &component.TileTag{}); err != nil {
					return fmt.Errorf("level: add tile tag: %w", err)
				}
				if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
					X:      offX + float64(col*tileSize),
					Y:      offY + heightPx - float64((row+1)*tileSize),
					ScaleX: 1,
					ScaleY: 1,
				}); err != nil {
					return fmt.Errorf("level: add tile transform: %w", err)
				}
				if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
					Image:   key,
					OriginY: float64(tileSize),
				}); err != nil {
					return fmt.Errorf("level: add tile sprite: %w", err)
				}
				if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layerIdx}); err != nil {
					return fmt.Errorf("level: add tile layer: %w", err)
				}
			}
		}
		if layer.Physics {
			if err := addMergedTileColliders(world, lvl, layerIdx, friction); err != nil {
				return err
			}
		}
	}

	if _, err := NewCameraFromSpec(world, specs.Camera); err != nil {
		return err
	}

	for _, ent := range lvl.Entities {
		x := offX + float64(ent.X)
		y := offY + heightPx - float64(ent.Y)
		switch strings.ToLower(ent.Type) {
		case "player":
			if specs.Player == nil {
				if _, err := NewPlayer(world, x, y); err != nil {
					return err
				}
				continue
			}
			if _, err := NewPlayerFromSpec(world, specs.Player, x, y); err != nil {
				return err
			}
		default:
			log.Warn("unknown level entity", "level", lvl.Name, "type", ent.Type)
		}
	}

	return nil
}

// addMergedTileColliders greedily merges solid cells into rectangles: extend
// right along the row, then down while every cell of the span is solid.
func addMergedTileColliders(world *ecs.World, lvl *levels.Level, layerIdx int, friction float64) error {
	width, height := lvl.Cols(), lvl.RowCount()
	if width <= 0 || height <= 0 {
		return nil
	}
	tileSize := float64(lvl.GridSize)
	heightPx := float64(lvl.PixelHeight())
	offX, offY := float64(lvl.WorldX), float64(lvl.WorldY)

	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	open := func(x, y int) bool {
		return !visited[index(x, y)] && lvl.Solid(layerIdx, x, y)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && open(x2, y); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !open(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}

			e := ecs.CreateEntity(world)
			if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
				X:      offX + float64(x)*tileSize,
				Y:      offY + heightPx - float64(y+maxH)*tileSize,
				ScaleX: 1,
				ScaleY: 1,
			}); err != nil {
				return fmt.Errorf("level: add collider transform: %w", err)
			}
			if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:           float64(maxW) * tileSize,
				Height:          float64(maxH) * tileSize,
				Friction:        friction,
				Static:          true,
				AlignBottomLeft: true,
			}); err != nil {
				return fmt.Errorf("level: add collider body: %w", err)
			}
		}
	}

	return nil
}
