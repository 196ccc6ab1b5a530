package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// overlay prints the debug HUD in the top-left corner.
type overlay struct {
	face ebtext.Face
}

func newOverlay() *overlay {
	return &overlay{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (o *overlay) Draw(screen *ebiten.Image, g *Game) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.1f  TPS %.1f  tick %d\n", ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.Tick())
	if g.level != nil {
		fmt.Fprintf(&b, "level %s (%d/%d)\n", g.level.Name, g.levelIdx+1, len(g.levelNames))
	}

	if p, ok := g.world.Player(); ok {
		if t, ok := ecs.Get(g.world, p, component.TransformComponent.Kind()); ok {
			fmt.Fprintf(&b, "pos %.1f, %.1f\n", t.X, t.Y)
		}
		if v, ok := ecs.Get(g.world, p, component.VelocityComponent.Kind()); ok {
			fmt.Fprintf(&b, "vel %.1f, %.1f\n", v.X, v.Y)
		}
		if s, ok := ecs.Get(g.world, p, component.PlayerComponent.Kind()); ok {
			fmt.Fprintf(&b, "grounded %v (%d)  jumps %d/%d\n", s.Ground.Grounded(), s.Ground.Counter(), s.Jumps.Count(), s.Jumps.Limit())
		}
		if a, ok := ecs.Get(g.world, p, component.AnimationComponent.Kind()); ok {
			fmt.Fprintf(&b, "anim %s frame %d/%d flip %v\n", a.Animator.State, a.Animator.Frame+1, a.Animator.Clip.FrameCount, a.Animator.FlipX)
		}
		if in, ok := ecs.Get(g.world, p, component.InputComponent.Kind()); ok {
			fmt.Fprintf(&b, "input %s\n", in.Actions.Current())
		}
	}
	if frame, ok := g.render.Frame(g.world); ok {
		fmt.Fprintf(&b, "camera %.0fx%.0f at %.1f, %.1f\n", frame.Width(), frame.Height(), frame.X, frame.Y)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(6, 6)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.LineSpacing = 14
	ebtext.Draw(screen, b.String(), o.face, op)
}
