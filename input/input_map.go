package input

// Source produces the set of logical actions that are active right now.
type Source interface {
	Poll() ActionSet
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() ActionSet

func (f SourceFunc) Poll() ActionSet {
	if f == nil {
		return 0
	}
	return f()
}

// InputMap is a static key to action binding table. Several keys may map to
// the same action. There is no rebinding after construction.
type InputMap[K comparable] struct {
	keys     []K
	bindings map[K]Action
}

// NewInputMap copies bindings into a new map.
func NewInputMap[K comparable](bindings map[K]Action) *InputMap[K] {
	m := &InputMap[K]{bindings: make(map[K]Action, len(bindings))}
	for k, a := range bindings {
		m.bindings[k] = a
		m.keys = append(m.keys, k)
	}
	return m
}

// Binding returns the action bound to key.
func (m *InputMap[K]) Binding(key K) (Action, bool) {
	if m == nil {
		return 0, false
	}
	a, ok := m.bindings[key]
	return a, ok
}

// Resolve probes every bound key and returns the union of their actions.
// A nil probe stands for an absent device and yields the empty set.
func (m *InputMap[K]) Resolve(pressed func(K) bool) ActionSet {
	if m == nil || pressed == nil {
		return 0
	}
	var set ActionSet
	for _, k := range m.keys {
		if pressed(k) {
			set = set.With(m.bindings[k])
		}
	}
	return set
}
