package problem

import (
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"

	"github.com/hzerrad/tourkit/internal/evaluate"
	"github.com/hzerrad/tourkit/internal/matrix"
	"github.com/hzerrad/tourkit/internal/ophours"
	"github.com/hzerrad/tourkit/internal/timewin"
)

const secondsPerDay = 86400

// Model is the validated, internal form of a problem, ready to hand to the
// solver.
type Model struct {
	N         int
	Distances *matrix.Distance
	// Inputs is nil when the problem is distance-only.
	Inputs    *evaluate.Inputs
	TimeLimit time.Duration
	InitRoute []int
}

// Build validates the raw problem and converts it into internal types. It
// fails fast with a typed Error before any evaluation can begin.
func (p *Problem) Build() (*Model, error) {
	n := len(p.DistanceMatrix)
	if n < 2 {
		return nil, Errorf(ShapeError, "need at least 2 locations, got %d", n)
	}
	distances, err := buildDistances(p.DistanceMatrix, n)
	if err != nil {
		return nil, err
	}

	m := &Model{N: n, Distances: distances}

	if p.TimeLimit != nil {
		if *p.TimeLimit < 0 {
			return nil, Errorf(BoundsError, "time limit must be non-negative, got %d", *p.TimeLimit)
		}
		m.TimeLimit = time.Duration(*p.TimeLimit) * time.Second
	}
	if p.InitRoute != nil {
		if err := validateRoute(p.InitRoute, n); err != nil {
			return nil, err
		}
		m.InitRoute = p.InitRoute
	}

	if !p.TimeMode() {
		return m, nil
	}

	inputs, err := p.buildTimeInputs(n)
	if err != nil {
		return nil, err
	}
	m.Inputs = inputs
	return m, nil
}

func (p *Problem) buildTimeInputs(n int) (*evaluate.Inputs, error) {
	durations, err := buildDurations(p.DurationMatrix, n)
	if err != nil {
		return nil, err
	}
	if len(p.JobDurations) != n {
		return nil, Errorf(ShapeError, "job_durations has %d entries, want %d", len(p.JobDurations), n)
	}
	jobs := make([]time.Duration, n)
	for i, sec := range p.JobDurations {
		if sec < 0 {
			return nil, Errorf(BoundsError, "job duration %d is negative", i)
		}
		jobs[i] = time.Duration(sec) * time.Second
	}

	windows, err := p.buildWindows(n)
	if err != nil {
		return nil, err
	}
	hours, err := p.buildHours()
	if err != nil {
		return nil, err
	}

	in := &evaluate.Inputs{
		Durations:    durations,
		JobDurations: jobs,
		Windows:      windows,
		Hours:        hours,
	}
	if p.TravelDurationUntilBreak != nil {
		if *p.TravelDurationUntilBreak < 0 {
			return nil, Errorf(BoundsError, "travel_duration_until_break must be non-negative")
		}
		in.TravelUntilBreak = time.Duration(*p.TravelDurationUntilBreak) * time.Second
	}
	if p.BreakDuration != nil {
		if *p.BreakDuration < 0 {
			return nil, Errorf(BoundsError, "break_duration must be non-negative")
		}
		in.BreakDuration = time.Duration(*p.BreakDuration) * time.Second
	}
	return in, nil
}

// buildWindows merges explicit windows with rule-derived ones per location
// and validates chronological non-overlap.
func (p *Problem) buildWindows(n int) ([]timewin.Windows, error) {
	if p.TimeWindows != nil && len(p.TimeWindows) != n {
		return nil, Errorf(ShapeError, "time_windows has %d entries, want %d", len(p.TimeWindows), n)
	}
	if p.WindowRules != nil && len(p.WindowRules) != n {
		return nil, Errorf(ShapeError, "window_rules has %d entries, want %d", len(p.WindowRules), n)
	}
	out := make([]timewin.Windows, n)
	for loc := 0; loc < n; loc++ {
		var windows []timewin.Window
		if p.TimeWindows != nil {
			for i, spec := range p.TimeWindows[loc] {
				if spec.Start > spec.End {
					return nil, Errorf(OrderError, "location %d window %d starts after it ends", loc, i)
				}
				windows = append(windows, timewin.Window{
					Start: time.Unix(spec.Start, 0).UTC(),
					End:   time.Unix(spec.End, 0).UTC(),
				})
			}
		}
		if p.WindowRules != nil && p.WindowRules[loc] != nil {
			expanded, err := expandRule(p.WindowRules[loc], loc)
			if err != nil {
				return nil, err
			}
			windows = append(windows, expanded...)
		}
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].Start.Before(windows[j].Start)
		})
		ws, err := timewin.NewWindows(windows)
		if err != nil {
			return nil, Errorf(OrderError, "location %d: %v", loc, err)
		}
		out[loc] = ws
	}
	return out, nil
}

// buildHours converts operation times into internal hours. A full-day span
// or start == end collapses to nil: no operating-hours restriction at all.
// The weekday mask and holiday calendar only apply when hours are in effect.
func (p *Problem) buildHours() (*ophours.Hours, error) {
	if p.OperationTimes == nil {
		return nil, nil
	}
	start, end := p.OperationTimes.Start, p.OperationTimes.End
	if start == end || end-start == secondsPerDay {
		return nil, nil
	}
	if start < 0 || end > secondsPerDay {
		return nil, Errorf(BoundsError, "operation times must lie within a day, got (%d, %d)", start, end)
	}
	if start >= end {
		return nil, Errorf(BoundsError, "daily start %d is not before daily end %d", start, end)
	}
	var days []time.Weekday
	if p.WorkingDays != nil {
		if len(p.WorkingDays) != 7 {
			return nil, Errorf(ShapeError, "working_days has %d entries, want 7", len(p.WorkingDays))
		}
		for i, on := range p.WorkingDays {
			if on {
				days = append(days, weekdayFromMonday(i))
			}
		}
		if len(days) == 0 {
			return nil, Errorf(BoundsError, "working day set is empty")
		}
	}
	hours, err := ophours.New(time.Duration(start)*time.Second, time.Duration(end)*time.Second, days)
	if err != nil {
		return nil, Errorf(BoundsError, "%v", err)
	}
	holidays, err := holidayCalendar(p.Holidays)
	if err != nil {
		return nil, err
	}
	if holidays != nil {
		hours.ObserveHolidays(holidays)
	}
	return hours, nil
}

// weekdayFromMonday maps the mask index (0 = Monday) onto time.Weekday.
func weekdayFromMonday(i int) time.Weekday {
	return time.Weekday((i + 1) % 7)
}

func buildDistances(rows [][]int64, n int) (*matrix.Distance, error) {
	cells := make([][]uint64, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, Errorf(ShapeError, "distance matrix row %d has %d entries, want %d", i, len(row), n)
		}
		cells[i] = make([]uint64, n)
		for j, v := range row {
			if v < 0 {
				return nil, Errorf(BoundsError, "distance matrix entry (%d, %d) is negative", i, j)
			}
			cells[i][j] = uint64(v)
		}
	}
	m, err := matrix.NewDistance(cells)
	if err != nil {
		return nil, Errorf(ShapeError, "%v", err)
	}
	return m, nil
}

func buildDurations(rows [][]int64, n int) (*matrix.Duration, error) {
	if len(rows) != n {
		return nil, Errorf(ShapeError, "duration matrix has %d rows, want %d", len(rows), n)
	}
	cells := make([][]time.Duration, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, Errorf(ShapeError, "duration matrix row %d has %d entries, want %d", i, len(row), n)
		}
		cells[i] = make([]time.Duration, n)
		for j, v := range row {
			if v < 0 {
				return nil, Errorf(BoundsError, "duration matrix entry (%d, %d) is negative", i, j)
			}
			cells[i][j] = time.Duration(v) * time.Second
		}
	}
	m, err := matrix.NewDuration(cells)
	if err != nil {
		return nil, Errorf(ShapeError, "%v", err)
	}
	return m, nil
}

func validateRoute(route []int, n int) error {
	if len(route) != n {
		return Errorf(RouteError, "init route has %d entries, want %d", len(route), n)
	}
	seen := make([]bool, n)
	for _, loc := range route {
		if loc < 0 || loc >= n || seen[loc] {
			return Errorf(RouteError, "init route is not a permutation of 0..%d", n-1)
		}
		seen[loc] = true
	}
	return nil
}

// holidayCalendar maps a region code onto its holiday set. Holidays act as
// non-working days on top of the weekday mask.
func holidayCalendar(region string) (*cal.Calendar, error) {
	switch strings.ToLower(region) {
	case "":
		return nil, nil
	case "us":
		c := &cal.Calendar{Name: "us"}
		c.AddHoliday(us.Holidays...)
		return c, nil
	case "de":
		c := &cal.Calendar{Name: "de"}
		c.AddHoliday(de.Holidays...)
		return c, nil
	case "gb":
		c := &cal.Calendar{Name: "gb"}
		c.AddHoliday(gb.Holidays...)
		return c, nil
	default:
		return nil, Errorf(BoundsError, "unknown holiday region %q (want us, de, or gb)", region)
	}
}
