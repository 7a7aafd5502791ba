package tileplay

import (
	"image"
	"testing"
)

func newTestAnimator(t *testing.T, clips ...Clip) *Animator {
	t.Helper()
	a, err := NewAnimator(16, 16, clips...)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	return a
}

// Advancing by exactly one frame period k times lands on frame
// k mod FrameCount.
func TestAdvanceWrap(t *testing.T) {
	a := newTestAnimator(t, Clip{Name: "idle", FrameCount: 4, FPS: 5})

	for k := 1; k <= 10; k++ {
		a.Advance(0.2)
		if want := k % 4; a.FrameIndex() != want {
			t.Fatalf("after %d ticks of 0.2s: frame %d, want %d", k, a.FrameIndex(), want)
		}
	}
}

// Crossing a frame boundary resets the accumulator; the overshoot is
// not carried into the next frame.
func TestAdvanceDropsRemainder(t *testing.T) {
	a := newTestAnimator(t, Clip{Name: "idle", FrameCount: 4, FPS: 5})

	a.Advance(0.35)
	if a.FrameIndex() != 1 {
		t.Fatalf("after 0.35s: frame %d, want 1", a.FrameIndex())
	}
	if a.elapsed != 0 {
		t.Fatalf("after crossing: elapsed %g, want 0", a.elapsed)
	}

	// The 0.15s overshoot was dropped, so another 0.15s must not step.
	a.Advance(0.15)
	if a.FrameIndex() != 1 {
		t.Fatalf("after 0.15s more: frame %d, want 1", a.FrameIndex())
	}
	a.Advance(0.05)
	if a.FrameIndex() != 2 {
		t.Fatalf("after reaching the period: frame %d, want 2", a.FrameIndex())
	}
}

func TestSetClipResetsMidCycle(t *testing.T) {
	a := newTestAnimator(t,
		Clip{Name: "idle", Row: 0, FrameCount: 4, FPS: 5},
		Clip{Name: "walk", Row: 1, FrameCount: 6, FPS: 8},
	)

	a.Advance(0.2)
	a.Advance(0.1)
	if a.FrameIndex() != 1 || a.elapsed == 0 {
		t.Fatalf("setup: frame %d elapsed %g, want mid-cycle state", a.FrameIndex(), a.elapsed)
	}

	if err := a.SetClip("walk"); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	if a.FrameIndex() != 0 || a.elapsed != 0 {
		t.Errorf("after switch: frame %d elapsed %g, want 0 and 0", a.FrameIndex(), a.elapsed)
	}
	if a.Clip().Name != "walk" {
		t.Errorf("active clip %q, want walk", a.Clip().Name)
	}
}

func TestSetClipSameIsNoop(t *testing.T) {
	a := newTestAnimator(t, Clip{Name: "idle", FrameCount: 4, FPS: 5})

	a.Advance(0.2)
	if err := a.SetClip("idle"); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	if a.FrameIndex() != 1 {
		t.Errorf("re-selecting the active clip reset the frame to %d", a.FrameIndex())
	}
}

func TestSetClipUnknown(t *testing.T) {
	a := newTestAnimator(t, Clip{Name: "idle", FrameCount: 4, FPS: 5})
	if err := a.SetClip("swim"); err == nil {
		t.Error("SetClip(swim): want error")
	}
}

func TestFrameRect(t *testing.T) {
	a := newTestAnimator(t, Clip{Name: "walk", Row: 2, FrameCount: 6, FPS: 8})

	for i := 0; i < 3; i++ {
		a.Advance(1.0 / 8.0)
	}
	want := image.Rect(48, 32, 64, 48)
	if got := a.Frame(); got != want {
		t.Errorf("Frame() at index 3 row 2 = %v, want %v", got, want)
	}
}

func TestNewAnimatorValidation(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		clips []Clip
	}{
		{"no clips", 16, 16, nil},
		{"zero frame size", 0, 16, []Clip{{Name: "idle", FrameCount: 4, FPS: 5}}},
		{"zero frame count", 16, 16, []Clip{{Name: "idle", FrameCount: 0, FPS: 5}}},
		{"zero fps", 16, 16, []Clip{{Name: "idle", FrameCount: 4, FPS: 0}}},
		{"negative row", 16, 16, []Clip{{Name: "idle", Row: -1, FrameCount: 4, FPS: 5}}},
		{"unnamed clip", 16, 16, []Clip{{FrameCount: 4, FPS: 5}}},
		{"duplicate names", 16, 16, []Clip{
			{Name: "idle", FrameCount: 4, FPS: 5},
			{Name: "idle", FrameCount: 2, FPS: 5},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnimator(tt.w, tt.h, tt.clips...); err == nil {
				t.Error("want error")
			}
		})
	}
}
