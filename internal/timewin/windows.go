package timewin

import (
	"fmt"
	"sort"
	"time"
)

// Windows is an ordered sequence of non-overlapping time windows for a single
// location. Invariant: windows[i].End <= windows[i+1].Start.
type Windows struct {
	windows []Window
}

// NewWindows builds a Windows collection, validating chronological order and
// non-overlap.
func NewWindows(windows []Window) (Windows, error) {
	for i := 1; i < len(windows); i++ {
		if windows[i].Start.Before(windows[i-1].End) {
			return Windows{}, fmt.Errorf("window %d starting %s overlaps window %d ending %s",
				i, windows[i].Start.Format(time.RFC3339), i-1, windows[i-1].End.Format(time.RFC3339))
		}
	}
	return Windows{windows: windows}, nil
}

// Add appends a window, which must start no earlier than the last window's
// end.
func (ws *Windows) Add(w Window) error {
	if n := len(ws.windows); n > 0 && w.Start.Before(ws.windows[n-1].End) {
		return fmt.Errorf("window starting %s overlaps previous window ending %s",
			w.Start.Format(time.RFC3339), ws.windows[n-1].End.Format(time.RFC3339))
	}
	ws.windows = append(ws.windows, w)
	return nil
}

// IsEmpty reports whether the collection holds no windows.
func (ws Windows) IsEmpty() bool {
	return len(ws.windows) == 0
}

// Len returns the number of windows.
func (ws Windows) Len() int {
	return len(ws.windows)
}

// At returns the window at index i.
func (ws Windows) At(i int) Window {
	return ws.windows[i]
}

// First returns the earliest window. It panics on an empty collection.
func (ws Windows) First() Window {
	return ws.windows[0]
}

// Lateness returns how far t lies past the end of the last window, or zero
// when the collection is empty.
func (ws Windows) Lateness(t time.Time) time.Duration {
	if len(ws.windows) == 0 {
		return 0
	}
	return ws.windows[len(ws.windows)-1].Lateness(t)
}

// FindNextFit locates the earliest usable interval at or after now.
//
// With mustFit true it returns the first window whose full span holds need in
// one piece. With mustFit false it returns whatever the first still-open
// window can offer, clipped to that window's span, so a caller that already
// accepted a split makes forward progress. The boolean result is false when
// no window qualifies. A window whose end equals now is spent: the end
// instant is not fittable for new work.
func (ws Windows) FindNextFit(now time.Time, need time.Duration, mustFit bool) (Window, bool) {
	if len(ws.windows) == 0 {
		return Window{}, false
	}
	// First window with End strictly after now; ends are sorted, so binary
	// search applies.
	idx := sort.Search(len(ws.windows), func(i int) bool {
		return ws.windows[i].End.After(now)
	})
	if idx == len(ws.windows) {
		return Window{}, false
	}
	if !mustFit {
		w := ws.windows[idx]
		start := maxTime(w.Start, now)
		span := need
		if d := w.Duration(); d < span {
			span = d
		}
		return New(start, start.Add(span)), true
	}
	for _, w := range ws.windows[idx:] {
		if w.Duration() >= need {
			start := maxTime(w.Start, now)
			return New(start, start.Add(need)), true
		}
	}
	return Window{}, false
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
