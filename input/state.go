package input

// ActionState tracks the current and previous action sets so callers can tell
// a press edge from a held key.
type ActionState struct {
	current  ActionSet
	previous ActionSet
}

// Update shifts the current set into previous and stores next.
func (s *ActionState) Update(next ActionSet) {
	s.previous = s.current
	s.current = next
}

// Reset clears both frames, e.g. after a level change.
func (s *ActionState) Reset() {
	s.current = 0
	s.previous = 0
}

func (s ActionState) Current() ActionSet {
	return s.current
}

func (s ActionState) Pressed(a Action) bool {
	return s.current.Has(a)
}

// JustPressed reports a not-pressed to pressed transition on this tick.
func (s ActionState) JustPressed(a Action) bool {
	return s.current.Has(a) && !s.previous.Has(a)
}

func (s ActionState) JustReleased(a Action) bool {
	return !s.current.Has(a) && s.previous.Has(a)
}
