package anim

import (
	"errors"
	"fmt"
	"image"
)

var ErrMissingClip = errors.New("anim: clip not registered")

// Clip describes one animation sequence laid out on a sprite sheet row.
type Clip struct {
	Sheet         string
	Row           int
	ColStart      int
	FrameW        int
	FrameH        int
	FrameCount    int
	FrameDuration float64
}

func (c Clip) Validate() error {
	if c.FrameCount <= 0 {
		return fmt.Errorf("anim: frame count must be positive, got %d", c.FrameCount)
	}
	if c.FrameDuration <= 0 {
		return fmt.Errorf("anim: frame duration must be positive, got %v", c.FrameDuration)
	}
	return nil
}

// Source returns the sheet rectangle for frame.
func (c Clip) Source(frame int) image.Rectangle {
	x := (c.ColStart + frame) * c.FrameW
	y := c.Row * c.FrameH
	return image.Rect(x, y, x+c.FrameW, y+c.FrameH)
}

// Library maps each State to its clip.
type Library struct {
	clips map[State]Clip
}

func NewLibrary() *Library {
	return &Library{clips: make(map[State]Clip)}
}

// Set registers clip for state, replacing any previous one.
func (l *Library) Set(state State, clip Clip) error {
	if l == nil {
		return fmt.Errorf("anim: set %s: library is nil", state)
	}
	if err := clip.Validate(); err != nil {
		return fmt.Errorf("anim: set %s: %w", state, err)
	}
	if l.clips == nil {
		l.clips = make(map[State]Clip)
	}
	l.clips[state] = clip
	return nil
}

func (l *Library) Get(state State) (Clip, bool) {
	if l == nil {
		return Clip{}, false
	}
	c, ok := l.clips[state]
	return c, ok
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.clips)
}
