package component

import "github.com/milk9111/phox/input"

// Input holds the logical actions an entity sees this tick.
type Input struct {
	Actions input.ActionState
}

var InputComponent = NewComponent[Input]()
