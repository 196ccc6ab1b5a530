package ecs

import (
	"errors"

	"github.com/milk9111/phox/ecs/component"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the event queue and per-tick
// timing. It is not safe for concurrent use; the game loop owns it.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue

	player Entity
	delta  float64
	tick   uint64
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all its components. It reports false when e
// was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	if w.player == e {
		w.player = 0
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// SetPlayer records the single player entity. Level loading calls it once
// per spawn; systems read it back through Player instead of querying.
func (w *World) SetPlayer(e Entity) {
	if w == nil {
		return
	}
	w.player = e
}

// Player returns the player handle if one was set and is still alive.
func (w *World) Player() (Entity, bool) {
	if w == nil || !w.player.Valid() || !w.entities.isAlive(w.player) {
		return 0, false
	}
	return w.player, true
}

// Advance starts a new tick lasting dt seconds.
func (w *World) Advance(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	w.tick++
}

// Delta is the length of the current tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Tick counts calls to Advance.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
