package render

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phox/camera"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
)

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e      ecs.Entity
	layer  int
	t      *component.Transform
	sprite *component.Sprite
}

// Frame returns the current camera frame, if the camera has framed a level.
func (r *RenderSystem) Frame(w *ecs.World) (camera.Frame, bool) {
	if r == nil || w == nil {
		return camera.Frame{}, false
	}
	if !ecs.IsAlive(w, r.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return camera.Frame{}, false
		}
		r.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok || !cam.Framed {
		return camera.Frame{}, false
	}
	return cam.Frame, true
}

// Draw renders every sprite through the camera frame, lowest layer first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	frame, ok := r.Frame(w)
	if !ok {
		return
	}

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawItem{e: e, layer: layer, t: t, sprite: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	bounds := screen.Bounds()
	screenW, screenH := float64(bounds.Dx()), float64(bounds.Dy())
	scale := frame.Scale(screenW, screenH)

	for _, it := range items {
		s := it.sprite
		if s.Image == "" {
			continue
		}
		img, err := LoadImage(s.Image)
		if err != nil {
			log.Error("draw sprite", "entity", it.e, "err", err)
			s.Image = ""
			continue
		}
		if s.UseSource && !IsPlaceholder(s.Image) {
			if sub, ok := img.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		sx := it.t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := it.t.ScaleY
		if sy == 0 {
			sy = 1
		}
		if s.FlipX {
			sx = -sx
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(-it.t.Rotation)
		op.GeoM.Scale(scale, scale)
		x, y := frame.Project(it.t.X, it.t.Y, screenW, screenH)
		op.GeoM.Translate(x, y)

		screen.DrawImage(img, op)
	}
}
