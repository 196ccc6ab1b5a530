package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/phox/anim"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/levels"
	"github.com/milk9111/phox/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRoom(t *testing.T) (*ecs.World, Specs) {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS("room")
	require.NoError(t, err)
	specs, err := LoadSpecs()
	require.NoError(t, err)

	w := ecs.NewWorld()
	require.NoError(t, LoadLevelToWorld(w, lvl, specs))
	return w, specs
}

func TestLoadLevelToWorldRoom(t *testing.T) {
	w, _ := loadRoom(t)

	boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	bounds, _ := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
	assert.Equal(t, component.LevelBounds{Name: "room", Width: 320, Height: 180, OffsetX: -320, OffsetY: 192}, *bounds)

	assert.Equal(t, 40, ecs.Count(w, component.TileTagComponent.Kind()))
	assert.Equal(t, 1, ecs.Count(w, component.CameraComponent.Kind()))

	statics := 0
	var floor *component.Transform
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, tr *component.Transform) {
		if !body.Static {
			return
		}
		statics++
		if body.Width == 320 {
			assert.Equal(t, 40.0, body.Height)
			floor = tr
		}
	})
	assert.Equal(t, 3, statics)
	require.NotNil(t, floor)
	assert.Equal(t, -320.0, floor.X)
	assert.Equal(t, 192.0, floor.Y)

	p, ok := w.Player()
	require.True(t, ok)
	tr, ok := ecs.Get(w, p, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, -260.0, tr.X)
	assert.Equal(t, 262.0, tr.Y)
}

func TestLoadLevelToWorldPlayerCount(t *testing.T) {
	layer := levels.Layer{Name: "ground", Physics: true, Rows: []string{"..", "##"}}
	tests := []struct {
		name     string
		entities []levels.Entity
	}{
		{name: "none"},
		{name: "two", entities: []levels.Entity{{Type: "player"}, {Type: "Player", X: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := &levels.Level{Name: tt.name, GridSize: 8, Layers: []levels.Layer{layer}, Entities: tt.entities}
			w := ecs.NewWorld()
			err := LoadLevelToWorld(w, lvl, Specs{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPlayerCount))
			assert.Empty(t, ecs.Entities(w))
		})
	}
}

func TestMergedCollidersCoverSolidCells(t *testing.T) {
	lvl := &levels.Level{
		Name:     "merge",
		GridSize: 10,
		Layers: []levels.Layer{{Physics: true, Rows: []string{
			"##.#",
			"##.#",
			"....",
		}}},
	}
	w := ecs.NewWorld()
	require.NoError(t, addMergedTileColliders(w, lvl, 0, 1))

	type rect struct{ x, y, w, h float64 }
	var got []rect
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, tr *component.Transform) {
		assert.True(t, body.AlignBottomLeft)
		got = append(got, rect{tr.X, tr.Y, body.Width, body.Height})
	})
	assert.ElementsMatch(t, []rect{{0, 10, 20, 20}, {30, 10, 10, 20}}, got)
}

func TestNewPlayerSetsHandle(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, 5, 6)
	require.NoError(t, err)

	got, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, e, got)

	state, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2, state.Jumps.Limit())
	assert.False(t, state.Ground.Grounded())

	a, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, anim.Idle, a.Animator.State)

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.True(t, body.LockRotation)
	assert.Equal(t, 18.0, body.Width)
}

func TestApplyPlayerSpec(t *testing.T) {
	w, specs := loadRoom(t)
	e, ok := w.Player()
	require.True(t, ok)

	state, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	state.Jumps.Increase()
	state.Jumps.Increase()

	one := 1
	reloaded := *specs.Player
	reloaded.MoveSpeed = 120
	reloaded.JumpLimit = &one
	require.NoError(t, ApplyPlayerSpec(w, e, &reloaded))

	assert.Equal(t, 120.0, state.Config.MoveSpeed)
	assert.Equal(t, 1, state.Jumps.Limit())
	assert.Equal(t, 1, state.Jumps.Count())

	broken := reloaded
	broken.Animation = prefabs.AnimationSpec{}
	err := ApplyPlayerSpec(w, e, &broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, anim.ErrMissingClip))
}
