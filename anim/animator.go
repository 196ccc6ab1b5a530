package anim

import (
	"fmt"
	"math"

	"github.com/milk9111/phox/common"
)

// Animator is the per-entity playback state: the bound clip, the frame being
// shown, time spent on that frame, and horizontal flip.
type Animator struct {
	State State
	Clip  Clip
	Frame int
	Timer float64
	FlipX bool

	bound bool
}

// NewAnimator binds the clip registered for initial.
func NewAnimator(lib *Library, initial State) (Animator, error) {
	clip, ok := lib.Get(initial)
	if !ok {
		return Animator{}, fmt.Errorf("%w: %s", ErrMissingClip, initial)
	}
	return Animator{State: initial, Clip: clip, bound: true}, nil
}

// Apply selects the state for vel, updates the flip, and swaps clips on a
// state change. The frame index is reduced modulo the new clip length so
// playback continues rather than restarting.
//
// When the clip for the selected state is missing, Apply returns
// ErrMissingClip and leaves the animator untouched.
func (a *Animator) Apply(lib *Library, vel common.Vec2) (changed bool, err error) {
	next := Select(vel)
	if a.bound && next == a.State {
		a.updateFlip(vel.X)
		return false, nil
	}

	clip, ok := lib.Get(next)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrMissingClip, next)
	}

	a.updateFlip(vel.X)
	a.State = next
	a.Clip = clip
	a.Frame %= clip.FrameCount
	a.bound = true
	return true, nil
}

// Rebind refreshes the bound clip from lib after the library was reloaded.
func (a *Animator) Rebind(lib *Library) error {
	clip, ok := lib.Get(a.State)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingClip, a.State)
	}
	a.Clip = clip
	a.Frame %= clip.FrameCount
	if a.Timer >= clip.FrameDuration {
		a.Timer = 0
	}
	a.bound = true
	return nil
}

func (a *Animator) updateFlip(vx float64) {
	if vx < -flipDeadZone {
		a.FlipX = true
	} else if vx > flipDeadZone {
		a.FlipX = false
	}
}

// Advance accumulates dt and steps as many frames as fit, which keeps
// playback speed right when ticks are long.
func (a *Animator) Advance(dt float64) {
	if !a.bound || a.Clip.FrameCount <= 0 || a.Clip.FrameDuration <= 0 {
		return
	}
	if dt > 0 {
		a.Timer += dt
	}

	d := a.Clip.FrameDuration
	if a.Timer >= d {
		frames := math.Floor(a.Timer / d)
		step := int(math.Mod(frames, float64(a.Clip.FrameCount)))
		a.Frame = (a.Frame + step) % a.Clip.FrameCount
		a.Timer -= frames * d
		if a.Timer < 0 || a.Timer >= d {
			a.Timer = 0
		}
	}
	if a.Frame < 0 {
		a.Frame = 0
	}
}
