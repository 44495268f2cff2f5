// Package ophours models global daily operating hours: a wall-clock start/end
// pair that applies every working day, restricted by an optional weekday mask
// and an optional holiday calendar.
package ophours

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/hzerrad/tourkit/internal/timewin"
)

// maxDayScan bounds the search for the next working day so a calendar that
// marks everything as holiday cannot spin forever.
const maxDayScan = 370

// Hours holds the daily operating interval [dailyStart, dailyEnd) as offsets
// from midnight UTC, plus the working-days restriction.
type Hours struct {
	dailyStart time.Duration
	dailyEnd   time.Duration
	days       *workdays     // nil means every weekday works
	holidays   *cal.Calendar // nil means no holidays observed
}

// New creates operating hours. dailyStart must be strictly before dailyEnd
// and both must lie within a day. days may be nil or empty to treat all
// weekdays as working.
func New(dailyStart, dailyEnd time.Duration, days []time.Weekday) (*Hours, error) {
	if dailyStart < 0 || dailyEnd > 24*time.Hour {
		return nil, fmt.Errorf("operating hours must lie within a day, got start=%s end=%s", dailyStart, dailyEnd)
	}
	if dailyStart >= dailyEnd {
		return nil, fmt.Errorf("daily start %s is not before daily end %s", dailyStart, dailyEnd)
	}
	h := &Hours{dailyStart: dailyStart, dailyEnd: dailyEnd}
	if len(days) > 0 {
		wd, err := newWorkdays(days)
		if err != nil {
			return nil, err
		}
		h.days = wd
	}
	return h, nil
}

// ObserveHolidays treats dates from c as non-working days on top of the
// weekday mask.
func (h *Hours) ObserveHolidays(c *cal.Calendar) {
	h.holidays = c
}

// Start returns the daily opening offset from midnight.
func (h *Hours) Start() time.Duration { return h.dailyStart }

// End returns the daily closing offset from midnight.
func (h *Hours) End() time.Duration { return h.dailyEnd }

// Span returns the length of one operating day.
func (h *Hours) Span() time.Duration {
	return h.dailyEnd - h.dailyStart
}

// Contains reports whether t falls inside operating hours: its time of day in
// [dailyStart, dailyEnd) and its date a working day.
func (h *Hours) Contains(t time.Time) bool {
	tod := timeOfDay(t)
	return tod >= h.dailyStart && tod < h.dailyEnd && h.workingDate(t)
}

// WaitingTime returns the duration from t until the next open instant, zero
// if t is already inside operating hours.
func (h *Hours) WaitingTime(t time.Time) time.Duration {
	if h.Contains(t) {
		return 0
	}
	if tod := timeOfDay(t); tod < h.dailyStart && h.workingDate(t) {
		return h.dailyStart - tod
	}
	return h.StartOfNextWorkingDay(t).Sub(t)
}

// NextWorkingDay returns midnight of the next working date strictly after
// t's date, skipping masked-out weekdays and observed holidays.
func (h *Hours) NextWorkingDay(t time.Time) time.Time {
	d := midnight(t)
	for i := 0; i < maxDayScan; i++ {
		if h.days != nil {
			d = h.days.nextWorkingDay(d)
		} else {
			d = d.AddDate(0, 0, 1)
		}
		if !h.isHoliday(d) {
			return d
		}
	}
	panic("ophours: no working day within a year of " + t.Format(time.RFC3339))
}

// StartOfNextWorkingDay returns the opening instant of the next working day
// strictly after t's date.
func (h *Hours) StartOfNextWorkingDay(t time.Time) time.Time {
	return h.NextWorkingDay(t).Add(h.dailyStart)
}

// FindNextFit locates the earliest operating interval at or after now.
//
// The candidate starts at the next open instant s and is clipped to that
// day's closing time. With mustFit false the clipped interval is returned as
// is. With mustFit true the interval is only returned whole: if the remainder
// of the day is too short the search jumps to the next working day's opening,
// and if need exceeds a full operating day no interval qualifies at all.
func (h *Hours) FindNextFit(now time.Time, need time.Duration, mustFit bool) (timewin.Window, bool) {
	start := now.Add(h.WaitingTime(now))
	end := start.Add(need)
	if dayEnd := midnight(start).Add(h.dailyEnd); end.After(dayEnd) {
		end = dayEnd
	}
	w := timewin.New(start, end)
	if !mustFit {
		return w, true
	}
	if w.Duration() == need {
		return w, true
	}
	if need > h.Span() {
		return timewin.Window{}, false
	}
	start = h.StartOfNextWorkingDay(now)
	return timewin.New(start, start.Add(need)), true
}

func (h *Hours) workingDate(t time.Time) bool {
	if h.days != nil && !h.days.working(t.Weekday()) {
		return false
	}
	return !h.isHoliday(t)
}

func (h *Hours) isHoliday(t time.Time) bool {
	if h.holidays == nil {
		return false
	}
	actual, observed, _ := h.holidays.IsHoliday(t)
	return actual || observed
}

func timeOfDay(t time.Time) time.Duration {
	return t.Sub(midnight(t))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
