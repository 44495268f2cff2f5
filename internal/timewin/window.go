package timewin

import (
	"fmt"
	"time"
)

// Window is an immutable closed interval [Start, End] of absolute UTC time.
type Window struct {
	Start time.Time
	End   time.Time
}

// New creates a window from start to end. It panics if start is after end;
// callers validate ordering at the adapter boundary, so a bad pair here is an
// internal inconsistency.
func New(start, end time.Time) Window {
	if start.After(end) {
		panic(fmt.Sprintf("timewin: window start %s after end %s", start, end))
	}
	return Window{Start: start, End: end}
}

// Contains reports whether t lies inside the window. Both endpoints count:
// the interval is closed. Note that the end instant, while contained, is not
// fittable for new work (see Windows.FindNextFit).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Lateness returns how far t lies past the window's end, or zero.
func (w Window) Lateness(t time.Time) time.Duration {
	if t.After(w.End) {
		return t.Sub(w.End)
	}
	return 0
}

// Equal reports whether two windows cover the same instant pair. time.Time
// values from different constructions can differ representationally, so this
// is the comparison to use instead of ==.
func (w Window) Equal(o Window) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s]", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
