package system

import (
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/input"
)

// InputSystem polls the action source once per tick and shifts the result
// into every Input component.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var next input.ActionSet
	if i.source != nil {
		next = i.source.Poll()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Actions.Update(next)
	})
}
