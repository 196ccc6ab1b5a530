package ecs

// EventKind identifies gameplay events.
type EventKind string

const (
	EventJumped          EventKind = "jumped"
	EventGroundedChanged EventKind = "grounded_changed"
	EventAnimationSwap   EventKind = "animation_swap"
	EventMissingClip     EventKind = "missing_clip"
)

// Event is a gameplay notification raised by a system during a tick.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
