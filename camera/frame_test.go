package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitExactAspect(t *testing.T) {
	level := Level{Width: 320, Height: 180}
	for _, p := range [][2]float64{{0, 0}, {160, 90}, {320, 180}, {-500, 900}} {
		f := Fit(level, p[0], p[1])
		assert.Equal(t, 320.0, f.Width())
		assert.Equal(t, 180.0, f.Height())
		assert.Equal(t, 0.0, f.X, "player %v", p)
		assert.Equal(t, 0.0, f.Y, "player %v", p)
	}
}

func TestFitWideLevel(t *testing.T) {
	level := Level{Width: 640, Height: 180}

	cases := []struct {
		name  string
		px    float64
		wantX float64
	}{
		{"left_edge_clamps_to_zero", 0, 0},
		{"middle_centers", 320, 160},
		{"right_edge_clamps", 640, 320},
		{"past_right_edge", 10_000, 320},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := Fit(level, c.px, 90)
			assert.Equal(t, 180.0, f.Height())
			assert.Equal(t, 320.0, f.Width())
			assert.Equal(t, c.wantX, f.X)
			assert.Equal(t, 0.0, f.Y)
		})
	}
}

func TestFitWideLevelRoundsHeightUp(t *testing.T) {
	f := Fit(Level{Width: 1000, Height: 176}, 0, 0)
	assert.Equal(t, 180.0, f.Height())
	assert.InDelta(t, 320.0, f.Width(), 1e-9)
}

func TestFitTallLevel(t *testing.T) {
	level := Level{Width: 320, Height: 720}

	cases := []struct {
		name  string
		py    float64
		wantY float64
	}{
		{"bottom_clamps", 0, 0},
		{"middle", 360, 270},
		{"top_clamps", 720, 540},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := Fit(level, 9999, c.py)
			assert.Equal(t, 320.0, f.Width())
			assert.Equal(t, 180.0, f.Height())
			assert.Equal(t, 0.0, f.X)
			assert.Equal(t, c.wantY, f.Y)
		})
	}
}

func TestFitAddsWorldOffset(t *testing.T) {
	level := Level{Width: 640, Height: 180, OffsetX: 1000, OffsetY: -200}
	f := Fit(level, 1000+320, 0)
	assert.Equal(t, 1000.0+160, f.X)
	assert.Equal(t, -200.0, f.Y)
}

func TestFitLevelSmallerThanFrameNeverNegative(t *testing.T) {
	// Width rounds up from 328 to 336, leaving no room to scroll.
	f := Fit(Level{Width: 328, Height: 400}, 0, 200)
	assert.Equal(t, 336.0, f.Width())
	assert.GreaterOrEqual(t, f.Y, 0.0)
	assert.Equal(t, 0.0, f.X)
}

func TestFitNoLevel(t *testing.T) {
	f := Fit(Level{}, 50, 50)
	assert.Equal(t, Frame{}, f)
}

func TestWorldToView(t *testing.T) {
	f := Frame{Right: 320, Top: 180, X: 100, Y: 20}
	x, y := f.WorldToView(150, 30)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 10.0, y)
}

func TestProjectFlipsY(t *testing.T) {
	f := Frame{Right: 320, Top: 180, X: 100, Y: 20}
	tests := []struct {
		name   string
		wx, wy float64
		sx, sy float64
	}{
		{name: "bottom-left", wx: 100, wy: 20, sx: 0, sy: 360},
		{name: "top-right", wx: 420, wy: 200, sx: 640, sy: 0},
		{name: "center", wx: 260, wy: 110, sx: 320, sy: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := f.Project(tt.wx, tt.wy, 640, 360)
			assert.InDelta(t, tt.sx, x, 1e-9)
			assert.InDelta(t, tt.sy, y, 1e-9)
		})
	}
}

func TestScaleLetterboxes(t *testing.T) {
	f := Frame{Right: 352, Top: 198}
	assert.InDelta(t, 640.0/352.0, f.Scale(640, 360), 1e-9)
	assert.Equal(t, 1.0, Frame{}.Scale(640, 360))
}
