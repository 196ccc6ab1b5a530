package input

import "strings"

// Action is a logical input decoupled from the key that triggers it.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
	Jump
	Speed

	actionCount
)

var actionNames = [actionCount]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
	Jump:  "jump",
	Speed: "speed",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every logical action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ActionSet is a bitmask of active actions.
type ActionSet uint8

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return s&(1<<a) != 0
}

func (s ActionSet) With(a Action) ActionSet {
	if a >= actionCount {
		return s
	}
	return s | 1<<a
}

func (s ActionSet) Without(a Action) ActionSet {
	if a >= actionCount {
		return s
	}
	return s &^ (1 << a)
}

func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) String() string {
	if s.Empty() {
		return "{}"
	}
	names := make([]string, 0, actionCount)
	for _, a := range Actions() {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
