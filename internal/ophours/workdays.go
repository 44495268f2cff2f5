package ophours

import (
	"fmt"
	"time"
)

// workdays is a weekday mask indexed from Monday, with a precomputed
// next-working-weekday table so day skips cost one lookup.
type workdays struct {
	mask [7]bool
	next [7]int
}

// mondayIndex maps time.Weekday (Sunday = 0) onto a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func newWorkdays(days []time.Weekday) (*workdays, error) {
	w := &workdays{}
	for _, d := range days {
		w.mask[mondayIndex(d)] = true
	}
	any := false
	for _, set := range w.mask {
		any = any || set
	}
	if !any {
		return nil, fmt.Errorf("working day set is empty")
	}
	for i := 0; i < 7; i++ {
		for j := 1; j <= 7; j++ {
			if w.mask[(i+j)%7] {
				w.next[i] = (i + j) % 7
				break
			}
		}
	}
	return w, nil
}

func (w *workdays) working(d time.Weekday) bool {
	return w.mask[mondayIndex(d)]
}

// nextWorkingDay returns the next calendar date strictly after date whose
// weekday is in the mask. With a single working day the jump is a full week.
func (w *workdays) nextWorkingDay(date time.Time) time.Time {
	idx := mondayIndex(date.Weekday())
	ahead := (w.next[idx] - idx + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return date.AddDate(0, 0, ahead)
}
