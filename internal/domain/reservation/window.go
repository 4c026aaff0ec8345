package reservation

import (
	"errors"
	"time"
)

var (
	ErrWindowInPast   = errors.New("window start cannot be in the past")
	ErrWindowInverted = errors.New("window end must be after start")
)

// Window is a [start, end) booking interval. Overlap detection is half-open
// so back-to-back reservations on the same stall never collide; consumption
// at check-in is boundary-inclusive so a reservation is usable at exactly its
// start and end instants.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time, now time.Time) (Window, error) {
	if start.Before(now) {
		return Window{}, ErrWindowInPast
	}
	if !end.After(start) {
		return Window{}, ErrWindowInverted
	}
	return Window{start: start, end: end}, nil
}

// ReconstructWindow skips validation for rows loaded from storage.
func ReconstructWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

// Overlaps uses the half-open test: [s1,e1) and [s2,e2) conflict iff
// s1 < e2 && s2 < e1. Touching endpoints do not conflict.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Covers is boundary-inclusive on both ends.
func (w Window) Covers(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// EndedBefore reports whether the window elapsed strictly before t.
func (w Window) EndedBefore(t time.Time) bool {
	return w.end.Before(t)
}
