package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phox/input"
)

// keyBindings is the fixed keyboard layout. Either shift key sprints.
var keyBindings = input.NewInputMap(map[ebiten.Key]input.Action{
	ebiten.KeyW:          input.Up,
	ebiten.KeyA:          input.Left,
	ebiten.KeyS:          input.Down,
	ebiten.KeyD:          input.Right,
	ebiten.KeySpace:      input.Jump,
	ebiten.KeyShiftLeft:  input.Speed,
	ebiten.KeyShiftRight: input.Speed,
})

type keyboardSource struct {
	bindings *input.InputMap[ebiten.Key]
}

func (k keyboardSource) Poll() input.ActionSet {
	return k.bindings.Resolve(ebiten.IsKeyPressed)
}
