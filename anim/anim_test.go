package anim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/milk9111/phox/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guyLibrary(t *testing.T) *Library {
	t.Helper()
	lib := NewLibrary()
	clips := map[State]Clip{
		Idle: {Sheet: "idle", FrameW: 32, FrameH: 32, FrameCount: 11, FrameDuration: 1.0 / 20},
		Run:  {Sheet: "run", FrameW: 32, FrameH: 32, FrameCount: 12, FrameDuration: 1.0 / 20},
		Jump: {Sheet: "jump", FrameW: 32, FrameH: 32, FrameCount: 1, FrameDuration: 1},
		Fall: {Sheet: "fall", FrameW: 32, FrameH: 32, FrameCount: 1, FrameDuration: 1},
	}
	for s, c := range clips {
		require.NoError(t, lib.Set(s, c))
	}
	return lib
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name string
		vel  common.Vec2
		want State
	}{
		{"rest", common.Vec2{}, Idle},
		{"run_right", common.Vec2{X: 50}, Run},
		{"run_tiny", common.Vec2{X: 0.001}, Run},
		{"jump", common.Vec2{Y: 50}, Jump},
		{"jump_while_running", common.Vec2{X: 50, Y: 50}, Jump},
		{"fall", common.Vec2{Y: -50}, Fall},
		{"fall_while_running", common.Vec2{X: -20, Y: -50}, Fall},
		{"vertical_dead_zone", common.Vec2{Y: 0.005}, Idle},
		{"vertical_dead_zone_negative", common.Vec2{X: 3, Y: -0.01}, Run},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Select(c.vel))
		})
	}
}

func TestApplyTransitions(t *testing.T) {
	lib := guyLibrary(t)

	cases := []struct {
		name string
		to   common.Vec2
		want State
	}{
		{"idle_to_run", common.Vec2{X: 50}, Run},
		{"idle_to_jump", common.Vec2{Y: 50}, Jump},
		{"idle_to_fall", common.Vec2{Y: -50}, Fall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewAnimator(lib, Idle)
			require.NoError(t, err)

			changed, err := a.Apply(lib, common.Vec2{})
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, Idle, a.State)

			changed, err = a.Apply(lib, c.to)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, c.want, a.State)
			assert.Equal(t, c.want.String(), a.Clip.Sheet)
		})
	}
}

func TestApplyAnyStateToFall(t *testing.T) {
	lib := guyLibrary(t)
	for _, from := range []common.Vec2{{}, {X: 50}, {Y: 50}, {Y: -50}} {
		a, err := NewAnimator(lib, Idle)
		require.NoError(t, err)
		_, err = a.Apply(lib, from)
		require.NoError(t, err)
		_, err = a.Apply(lib, common.Vec2{Y: -50})
		require.NoError(t, err)
		assert.Equal(t, Fall, a.State)
	}
}

func TestApplyFlipDeadZone(t *testing.T) {
	lib := guyLibrary(t)
	a, err := NewAnimator(lib, Idle)
	require.NoError(t, err)

	steps := []struct {
		vx   float64
		flip bool
	}{
		{-50, true},
		{-0.05, true},
		{0, true},
		{0.1, true},
		{0.2, false},
		{-0.1, false},
		{-0.11, true},
	}
	for i, s := range steps {
		_, err := a.Apply(lib, common.Vec2{X: s.vx})
		require.NoError(t, err)
		assert.Equal(t, s.flip, a.FlipX, "step %d vx=%v", i, s.vx)
	}
}

func TestApplyKeepsFrameModuloNewClip(t *testing.T) {
	lib := guyLibrary(t)
	a, err := NewAnimator(lib, Idle)
	require.NoError(t, err)
	a.Frame = 9

	_, err = a.Apply(lib, common.Vec2{X: 10})
	require.NoError(t, err)
	assert.Equal(t, 9, a.Frame, "run has 12 frames so 9 survives")

	_, err = a.Apply(lib, common.Vec2{Y: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Frame, "jump has a single frame")
}

func TestApplyMissingClip(t *testing.T) {
	lib := NewLibrary()
	require.NoError(t, lib.Set(Idle, Clip{FrameCount: 4, FrameDuration: 0.1}))

	a, err := NewAnimator(lib, Idle)
	require.NoError(t, err)
	a.Frame = 3

	changed, err := a.Apply(lib, common.Vec2{X: -40})
	assert.True(t, errors.Is(err, ErrMissingClip))
	assert.False(t, changed)
	assert.Equal(t, Idle, a.State)
	assert.Equal(t, 3, a.Frame)
	assert.False(t, a.FlipX, "a skipped update leaves flip alone")

	_, err = NewAnimator(NewLibrary(), Run)
	assert.True(t, errors.Is(err, ErrMissingClip))
}

func TestAdvance(t *testing.T) {
	clip := Clip{FrameCount: 4, FrameDuration: 0.1}
	cases := []struct {
		name      string
		dts       []float64
		wantFrame int
	}{
		{"under_one_frame", []float64{0.05}, 0},
		{"exactly_one_frame", []float64{0.1}, 1},
		{"accumulates", []float64{0.06, 0.06}, 1},
		{"multi_frame_skip", []float64{0.35}, 3},
		{"wraps", []float64{0.45}, 0},
		{"zero_dt", []float64{0}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lib := NewLibrary()
			require.NoError(t, lib.Set(Idle, clip))
			a, err := NewAnimator(lib, Idle)
			require.NoError(t, err)
			for _, dt := range c.dts {
				a.Advance(dt)
			}
			assert.Equal(t, c.wantFrame, a.Frame)
			assert.GreaterOrEqual(t, a.Timer, 0.0)
			assert.Less(t, a.Timer, clip.FrameDuration)
		})
	}
}

func TestAdvanceFrameAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		clip := Clip{
			FrameCount:    1 + rng.Intn(16),
			FrameDuration: 0.001 + rng.Float64(),
		}
		lib := NewLibrary()
		require.NoError(t, lib.Set(Run, clip))
		a, err := NewAnimator(lib, Run)
		require.NoError(t, err)

		for j := 0; j < 20; j++ {
			a.Advance(rng.Float64() * 5)
			require.GreaterOrEqual(t, a.Frame, 0)
			require.Less(t, a.Frame, clip.FrameCount)
			require.GreaterOrEqual(t, a.Timer, 0.0)
			require.Less(t, a.Timer, clip.FrameDuration)
		}
	}
}

func TestLibrarySetValidates(t *testing.T) {
	lib := NewLibrary()
	assert.Error(t, lib.Set(Idle, Clip{FrameCount: 0, FrameDuration: 1}))
	assert.Error(t, lib.Set(Idle, Clip{FrameCount: 1, FrameDuration: 0}))
	assert.Equal(t, 0, lib.Len())

	var nilLib *Library
	_, ok := nilLib.Get(Idle)
	assert.False(t, ok)
	assert.Error(t, nilLib.Set(Idle, Clip{FrameCount: 1, FrameDuration: 1}))
}

func TestParseState(t *testing.T) {
	for _, s := range []State{Idle, Run, Jump, Fall} {
		got, err := ParseState(" " + s.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseState("double_jump")
	assert.Error(t, err)
}

func TestClipSource(t *testing.T) {
	c := Clip{Row: 1, ColStart: 2, FrameW: 32, FrameH: 16}
	r := c.Source(3)
	assert.Equal(t, 160, r.Min.X)
	assert.Equal(t, 16, r.Min.Y)
	assert.Equal(t, 32, r.Dx())
	assert.Equal(t, 16, r.Dy())
}
