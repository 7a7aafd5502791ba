package tileplay

import (
	"fmt"
	"image"
)

// Clip is a named animation sequence: one horizontal strip of a sprite
// sheet played at a fixed rate.
type Clip struct {
	Name       string
	Row        int
	FrameCount int
	FPS        float64
}

func (c Clip) validate() error {
	if c.Name == "" {
		return fmt.Errorf("animation: clip needs a name")
	}
	if c.FrameCount <= 0 {
		return fmt.Errorf("animation: clip %q frame count %d must be positive", c.Name, c.FrameCount)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("animation: clip %q fps %g must be positive", c.Name, c.FPS)
	}
	if c.Row < 0 {
		return fmt.Errorf("animation: clip %q row %d must be non-negative", c.Name, c.Row)
	}
	return nil
}

// Animator tracks frame timing over a set of clips. Playback always
// loops; there is no play-once variant.
type Animator struct {
	frameWidth  int
	frameHeight int
	clips       []Clip
	current     int
	elapsed     float64
	frame       int
}

func NewAnimator(frameWidth, frameHeight int, clips ...Clip) (*Animator, error) {
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, fmt.Errorf("animation: frame size %dx%d must be positive", frameWidth, frameHeight)
	}
	if len(clips) == 0 {
		return nil, fmt.Errorf("animation: at least one clip required")
	}
	seen := make(map[string]bool, len(clips))
	for _, c := range clips {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("animation: duplicate clip %q", c.Name)
		}
		seen[c.Name] = true
	}

	return &Animator{
		frameWidth:  frameWidth,
		frameHeight: frameHeight,
		clips:       clips,
	}, nil
}

// Advance accumulates dt seconds and steps the frame index when the
// accumulated time crosses the clip's frame period. The accumulator
// resets on crossing; the remainder is not carried over.
func (a *Animator) Advance(dt float64) {
	clip := a.clips[a.current]
	a.elapsed += dt
	if a.elapsed >= 1.0/clip.FPS {
		a.elapsed = 0
		a.frame = (a.frame + 1) % clip.FrameCount
	}
}

// SetClip selects the named clip. Switching resets the frame index and
// accumulator so the new clip starts clean mid-cycle. Selecting the
// already-active clip is a no-op.
func (a *Animator) SetClip(name string) error {
	for i, c := range a.clips {
		if c.Name != name {
			continue
		}
		if i != a.current {
			a.current = i
			a.frame = 0
			a.elapsed = 0
		}
		return nil
	}
	return fmt.Errorf("animation: no clip %q", name)
}

// Reset rewinds the active clip to frame zero with an empty accumulator.
func (a *Animator) Reset() {
	a.frame = 0
	a.elapsed = 0
}

// Clip returns the active clip.
func (a *Animator) Clip() Clip {
	return a.clips[a.current]
}

// FrameIndex returns the current frame within the active clip.
func (a *Animator) FrameIndex() int {
	return a.frame
}

// Frame returns the current frame's source rectangle within the sheet.
func (a *Animator) Frame() image.Rectangle {
	clip := a.clips[a.current]
	x := a.frame * a.frameWidth
	y := clip.Row * a.frameHeight
	return image.Rect(x, y, x+a.frameWidth, y+a.frameHeight)
}

// FrameSize returns the constant destination size of every frame.
func (a *Animator) FrameSize() (int, int) {
	return a.frameWidth, a.frameHeight
}
