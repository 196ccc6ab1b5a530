package camera

import "github.com/milk9111/phox/common"

// Level is the part of a level the camera cares about: its pixel size and
// where it sits in world space.
type Level struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Frame is the visible world window. Extents are relative to the
// translation, which is the window's bottom-left corner in world space.
type Frame struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	X      float64
	Y      float64
}

func (f Frame) Width() float64 {
	return f.Right - f.Left
}

func (f Frame) Height() float64 {
	return f.Top - f.Bottom
}

// WorldToView maps a world point into frame-relative coordinates with the
// origin at the window's bottom-left.
func (f Frame) WorldToView(x, y float64) (float64, float64) {
	return x - f.X - f.Left, y - f.Y - f.Bottom
}

// Fit frames the level at the given aspect ratio and follows (px, py).
//
// The axis on which the level overflows the aspect ratio scrolls; the other
// axis shows the whole level. Extents snap to the ratio's grid (height to a
// multiple of 9 when the level is wide, width to a multiple of 16 when it is
// tall) and the scroll offset is clamped to the level, never below zero.
func Fit(level Level, px, py float64) Frame {
	return FitAspect(level, px, py, common.AspectW, common.AspectH)
}

// FitAspect is Fit for an arbitrary aspectW:aspectH target.
func FitAspect(level Level, px, py, aspectW, aspectH float64) Frame {
	if level.Width <= 0 || level.Height <= 0 || aspectW <= 0 || aspectH <= 0 {
		return Frame{X: level.OffsetX, Y: level.OffsetY}
	}

	target := aspectW / aspectH
	ratio := level.Width / level.Height

	var f Frame
	if ratio > target {
		height := common.RoundUpTo(level.Height, aspectH)
		width := height * target
		f.Right, f.Top = width, height
		f.X = common.Clamp(px-level.OffsetX-width/2, 0, level.Width-width)
		f.Y = 0
	} else {
		width := common.RoundTo(level.Width, aspectW)
		height := width / target
		f.Right, f.Top = width, height
		f.Y = common.Clamp(py-level.OffsetY-height/2, 0, level.Height-height)
		f.X = 0
	}

	f.X += level.OffsetX
	f.Y += level.OffsetY
	return f
}

// Scale is the factor that fits the frame into a screenW x screenH target.
func (f Frame) Scale(screenW, screenH float64) float64 {
	w, h := f.Width(), f.Height()
	if w <= 0 || h <= 0 || screenW <= 0 || screenH <= 0 {
		return 1
	}
	return min(screenW/w, screenH/h)
}

// Project maps a world point to screen pixels. Screens are y down, so the
// frame's bottom edge lands on the last screen row.
func (f Frame) Project(x, y, screenW, screenH float64) (float64, float64) {
	s := f.Scale(screenW, screenH)
	vx, vy := f.WorldToView(x, y)
	return vx * s, screenH - vy*s
}
