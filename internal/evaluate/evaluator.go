// Package evaluate synthesizes a feasible timeline for a candidate route:
// waiting, working and traveling segments that respect per-location time
// windows, global operating hours and working days, splitting jobs across
// days only when a job cannot fit a single operating segment.
package evaluate

import (
	"time"

	"github.com/hzerrad/tourkit/internal/schedule"
	"github.com/hzerrad/tourkit/internal/timewin"
)

// Evaluator turns routes into completed schedules. It is a pure function of
// its inputs; the same route always yields the same report.
type Evaluator struct {
	in *Inputs
}

// New creates an evaluator over validated inputs.
func New(in *Inputs) *Evaluator {
	return &Evaluator{in: in}
}

// Evaluate walks the route cyclically, executing each location's job and the
// travel to its successor, and returns the frozen schedule. With logEvents
// false only the scalar totals are computed; this is the hot path during
// search.
func (e *Evaluator) Evaluate(route []int, logEvents bool) schedule.Report {
	w := walker{
		in:    e.in,
		route: route,
		b:     schedule.NewBuilder(e.startTime(route), logEvents),
	}
	return w.run()
}

// startTime picks the earliest opening of the first route location, falling
// back to the earliest window anywhere on the route, then to the epoch when
// no location has windows at all.
func (e *Evaluator) startTime(route []int) time.Time {
	if ws := e.in.Windows[route[0]]; !ws.IsEmpty() {
		return ws.First().Start
	}
	var earliest time.Time
	found := false
	for _, loc := range route {
		if ws := e.in.Windows[loc]; !ws.IsEmpty() {
			if s := ws.First().Start; !found || s.Before(earliest) {
				earliest = s
				found = true
			}
		}
	}
	if found {
		return earliest
	}
	return time.Unix(0, 0).UTC()
}

// walker carries the in-flight state of one evaluation. The builder's end
// time is the committed timeline position; current inside executeJob is the
// tentative position that retries advance without emitting events.
type walker struct {
	in    *Inputs
	route []int
	b     schedule.Builder
}

func (w *walker) run() schedule.Report {
	for i := range w.route {
		w.executeJob(i)
		w.executeTravel(i)
	}
	return w.b.Finish()
}

// executeJob works off the job at route position i. The job is attempted
// whole first; only when operating hours can never hold it in one piece is
// splitting admitted, at the cost of one split count. mustFit flips at most
// once per job and is never reset until the next job.
func (w *walker) executeJob(i int) {
	loc := w.route[i]
	remaining := w.in.JobDurations[loc]
	windows := w.in.Windows[loc]
	current := w.b.EndTime()
	mustFit := true

	for {
		tw, twOK := windows.FindNextFit(current, remaining, mustFit)
		op, opOK := w.opFit(current, remaining, mustFit)
		switch {
		case twOK && opOK:
			if !tw.Equal(op) {
				if !tw.Start.Equal(op.Start) {
					// The two candidates disagree; retry from the later
					// start, which is strictly ahead of current.
					current = maxTime(tw.Start, op.Start)
					continue
				}
				// Same start, different clipping: work the overlap both
				// constraints allow. Only reachable once a split was
				// admitted, since whole-job candidates with one start are
				// identical.
				if op.End.Before(tw.End) {
					tw = op
				}
			}
			w.addWork(loc, tw)
			remaining -= tw.Duration()
			current = w.b.EndTime()
		case !twOK && opOK:
			// Past the last location window but operating hours remain
			// usable: work anyway and pay lateness at the end of the job.
			w.addWork(loc, op)
			remaining -= op.Duration()
			current = w.b.EndTime()
		default:
			// Operating hours can never fit the remainder in one piece.
			// Admit a split and keep going with clipped segments.
			mustFit = false
			w.b.AddSplit()
			continue
		}
		if remaining == 0 {
			break
		}
	}
	w.b.AddLateness(windows.Lateness(w.b.EndTime()))
}

// executeTravel moves from route position i to its cyclic successor. With
// mustFit false the operating-hours search always yields forward progress,
// so the loop terminates.
func (w *walker) executeTravel(i int) {
	from := w.route[i]
	to := w.route[(i+1)%len(w.route)]
	remaining := w.in.Durations.At(from, to)
	for remaining > 0 {
		op, ok := w.opFit(w.b.EndTime(), remaining, false)
		if !ok {
			panic("evaluate: operating hours yielded no interval for unclipped travel")
		}
		w.addTravel(op)
		remaining -= op.Duration()
	}
}

// opFit consults operating hours, treating absent hours as around-the-clock
// operation.
func (w *walker) opFit(now time.Time, need time.Duration, mustFit bool) (timewin.Window, bool) {
	if w.in.Hours == nil {
		return timewin.New(now, now.Add(need)), true
	}
	return w.in.Hours.FindNextFit(now, need, mustFit)
}

func (w *walker) addWork(loc int, win timewin.Window) {
	w.waitUntil(win.Start)
	w.b.AddWork(loc, win)
}

func (w *walker) addTravel(win timewin.Window) {
	w.waitUntil(win.Start)
	w.b.AddTravel(win)
}

func (w *walker) waitUntil(t time.Time) {
	if end := w.b.EndTime(); t.After(end) {
		w.b.AddWait(timewin.New(end, t))
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
