package schedule

import (
	"fmt"

	"github.com/hzerrad/tourkit/internal/timewin"
)

// Kind tags what happened during an event's window.
type Kind int

const (
	// Wait means idle time before a window or operating hours opened.
	Wait Kind = iota
	// Travel means moving between two consecutive route locations.
	Travel
	// Work means executing (part of) a location's job.
	Work
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Wait:
		return "wait"
	case Travel:
		return "travel"
	case Work:
		return "work"
	default:
		return "unknown"
	}
}

// Event is one contiguous segment of the synthesized timeline. Location is
// meaningful only for Work events. Consecutive events in a schedule share
// their boundary instant: event[i].Window.End == event[i+1].Window.Start.
type Event struct {
	Kind     Kind
	Window   timewin.Window
	Location int
}

func (e Event) String() string {
	if e.Kind == Work {
		return fmt.Sprintf("%s %s at %d", e.Kind, e.Window, e.Location)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Window)
}
