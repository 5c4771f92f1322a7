package tui

import (
	"time"

	"github.com/vovakirdan/darkpath/internal/core"
)

// HoldTracker turns key presses into held directions.
//
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until window has passed since its last press.
// Pressing the opposite direction or calling Release ends it at once.
type HoldTracker struct {
	window time.Duration
	left   time.Time
	right  time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press of the direction (ActionLeft or ActionRight) at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}

// Held reports whether the direction is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionLeft:
		return h.active(h.left, now)
	case core.ActionRight:
		return h.active(h.right, now)
	}
	return false
}

func (h *HoldTracker) active(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < h.window
}

// Apply sets the held directions on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	if h.Held(core.ActionLeft, now) {
		frame.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight, now) {
		frame.Set(core.ActionRight)
	}
}
