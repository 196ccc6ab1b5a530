package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key string

func wasdMap() *InputMap[key] {
	return NewInputMap(map[key]Action{
		"w":      Up,
		"a":      Left,
		"s":      Down,
		"d":      Right,
		"space":  Jump,
		"shift":  Speed,
		"rshift": Speed,
	})
}

func probe(keys ...key) func(key) bool {
	held := make(map[key]bool, len(keys))
	for _, k := range keys {
		held[k] = true
	}
	return func(k key) bool { return held[k] }
}

func TestInputMapResolve(t *testing.T) {
	m := wasdMap()

	cases := []struct {
		name string
		held []key
		want ActionSet
	}{
		{"nothing", nil, 0},
		{"single", []key{"a"}, NewActionSet(Left)},
		{"jump_and_right", []key{"space", "d"}, NewActionSet(Jump, Right)},
		{"both_shifts_one_action", []key{"shift", "rshift"}, NewActionSet(Speed)},
		{"unbound_key_ignored", []key{"q"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, m.Resolve(probe(c.held...)))
		})
	}
}

func TestInputMapAbsentDevice(t *testing.T) {
	assert.True(t, wasdMap().Resolve(nil).Empty())

	var nilMap *InputMap[key]
	assert.True(t, nilMap.Resolve(probe("w")).Empty())
}

func TestInputMapBinding(t *testing.T) {
	a, ok := wasdMap().Binding("s")
	require.True(t, ok)
	assert.Equal(t, Down, a)

	_, ok = wasdMap().Binding("x")
	assert.False(t, ok)
}

func TestActionStateEdges(t *testing.T) {
	var s ActionState

	s.Update(NewActionSet(Jump))
	assert.True(t, s.JustPressed(Jump))
	assert.True(t, s.Pressed(Jump))

	s.Update(NewActionSet(Jump))
	assert.False(t, s.JustPressed(Jump), "held key must not re-trigger the edge")
	assert.True(t, s.Pressed(Jump))

	s.Update(0)
	assert.True(t, s.JustReleased(Jump))
	assert.False(t, s.Pressed(Jump))

	s.Update(NewActionSet(Jump))
	assert.True(t, s.JustPressed(Jump))

	s.Reset()
	assert.True(t, s.Current().Empty())
}

func TestActionSetString(t *testing.T) {
	assert.Equal(t, "{}", ActionSet(0).String())
	assert.Equal(t, "{left,jump}", NewActionSet(Jump, Left).String())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc(func() ActionSet { return NewActionSet(Up) })
	assert.True(t, src.Poll().Has(Up))

	var nilSrc SourceFunc
	assert.True(t, nilSrc.Poll().Empty())
}
