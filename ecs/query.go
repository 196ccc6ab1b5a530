package ecs

import "github.com/milk9111/phox/ecs/component"

// ForEach calls fn for every live entity holding kind. fn must not add or
// remove components of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for i := 0; i < len(s.denseEntities); i++ {
		e := s.denseEntities[i]
		if !w.entities.isAlive(e) {
			continue
		}
		fn(e, s.denseValues[i])
	}
}

// ForEach2 visits entities holding both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa.denseEntities, sb.denseEntities) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(e.id())
		b, okB := sb.get(e.id())
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa.denseEntities, sb.denseEntities, sc.denseEntities) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(e.id())
		b, okB := sb.get(e.id())
		c, okC := sc.get(e.id())
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	sd := storeFor(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa.denseEntities, sb.denseEntities, sc.denseEntities, sd.denseEntities) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(e.id())
		b, okB := sb.get(e.id())
		c, okC := sc.get(e.id())
		d, okD := sd.get(e.id())
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

// First returns some live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0, false
	}
	for _, e := range s.denseEntities {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).len()
}

// smallest returns a snapshot of the shortest entity list so callbacks can
// mutate other stores safely.
func smallest(lists ...[]Entity) []Entity {
	var best []Entity
	for i, l := range lists {
		if i == 0 || len(l) < len(best) {
			best = l
		}
	}
	return append([]Entity(nil), best...)
}
