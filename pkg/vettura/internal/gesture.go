package internal

import "time"

// Gesture classifies a completed single-finger stroke.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureTap
	GestureSwipeUp
	GestureSwipeDown
	GestureSwipeLeft
	GestureSwipeRight
)

// String returns a string representation of the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	default:
		return ""
	}
}

// Top edge region for pull-down detection, in normalized coordinates.
const topEdgeRegion = 0.08

// GestureTracker classifies single-finger strokes from normalized
// touch coordinates (0..1). Embed this in a window to get consistent
// global gesture handling independent of widget focus.
type GestureTracker struct {
	active           bool
	startX, startY   float32
	startTime        time.Time
	minSwipeDistance float32
	maxSwipeDuration time.Duration
	maxTapDistance   float32
}

// NewGestureTracker creates a GestureTracker with default thresholds.
// A swipe must cover 15% of the screen within 600ms; anything shorter
// than 2% of the screen counts as a tap.
func NewGestureTracker() GestureTracker {
	return NewGestureTrackerWithTiming(0.15, 600*time.Millisecond)
}

// NewGestureTrackerWithTiming creates a GestureTracker with a custom
// swipe distance threshold and duration limit.
func NewGestureTrackerWithTiming(minDistance float32, maxDuration time.Duration) GestureTracker {
	return GestureTracker{
		minSwipeDistance: minDistance,
		maxSwipeDuration: maxDuration,
		maxTapDistance:   0.02,
	}
}

// Begin records the start of a stroke at the given position.
func (t *GestureTracker) Begin(x, y float32) {
	t.active = true
	t.startX = x
	t.startY = y
	t.startTime = time.Now()
}

// Active reports whether a stroke is in progress.
func (t *GestureTracker) Active() bool {
	return t.active
}

// BeganAtTopEdge reports whether the last stroke started inside the
// top edge region. Valid until the next Begin or Reset.
func (t *GestureTracker) BeganAtTopEdge() bool {
	return t.startY <= topEdgeRegion
}

// End completes the stroke at the given position and classifies it.
// The start position is retained for BeganAtTopEdge until the next
// Begin or Reset.
func (t *GestureTracker) End(x, y float32) Gesture {
	if !t.active {
		return GestureNone
	}
	t.active = false

	dx := x - t.startX
	dy := y - t.startY

	absX, absY := dx, dy
	if absX < 0 {
		absX = -absX
	}
	if absY < 0 {
		absY = -absY
	}

	if absX <= t.maxTapDistance && absY <= t.maxTapDistance {
		return GestureTap
	}

	if time.Since(t.startTime) > t.maxSwipeDuration {
		return GestureNone
	}

	if absX >= absY {
		if absX < t.minSwipeDistance {
			return GestureNone
		}
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if absY < t.minSwipeDistance {
		return GestureNone
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// Reset clears all stroke state.
func (t *GestureTracker) Reset() {
	t.active = false
	t.startX = 0
	t.startY = 0
	t.startTime = time.Time{}
}
