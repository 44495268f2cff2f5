package penalty

import "github.com/hzerrad/tourkit/internal/schedule"

// Solution is one evaluated route. Report is nil when the solver runs in
// distance-only mode. Each solution owns its route slice; nothing aliases it.
type Solution struct {
	Route    []int
	Distance uint64
	Report   *schedule.Report
}

// Feasible reports whether the solution meets every time constraint. A
// distance-only solution is trivially feasible.
func (s Solution) Feasible() bool {
	return s.Report == nil || s.Report.Feasible()
}
