// Package penalty scores routes. The penalizer combines the distance sum
// with the time evaluator's report and ranks solutions lexicographically:
// job splits, lateness, traveling time, makespan, waiting time, distance.
package penalty

import (
	"github.com/hzerrad/tourkit/internal/evaluate"
	"github.com/hzerrad/tourkit/internal/matrix"
)

// Penalizer evaluates routes against the distance matrix and, when time
// inputs are configured, the schedule evaluator.
type Penalizer struct {
	distances *matrix.Distance
	eval      *evaluate.Evaluator // nil in distance-only mode
}

// New creates a penalizer. eval may be nil for distance-only solving.
func New(distances *matrix.Distance, eval *evaluate.Evaluator) *Penalizer {
	return &Penalizer{distances: distances, eval: eval}
}

// TimeMode reports whether time inputs are configured.
func (p *Penalizer) TimeMode() bool {
	return p.eval != nil
}

// Distance sums the route's consecutive edges plus the closing edge back to
// the start.
func (p *Penalizer) Distance(route []int) uint64 {
	var sum uint64
	for i := 0; i < len(route)-1; i++ {
		sum += p.distances.At(route[i], route[i+1])
	}
	return sum + p.distances.At(route[len(route)-1], route[0])
}

// Penalize evaluates a route into a Solution. The route is owned by the
// returned solution. logEvents requests the full event timeline; search keeps
// it off.
func (p *Penalizer) Penalize(route []int, logEvents bool) Solution {
	sol := Solution{Route: route, Distance: p.Distance(route)}
	if p.eval != nil {
		report := p.eval.Evaluate(route, logEvents)
		sol.Report = &report
	}
	return sol
}

// Better reports whether a ranks strictly before b. Without time inputs the
// order is by distance alone; with them the six keys cascade, first
// differing key wins.
func (p *Penalizer) Better(a, b Solution) bool {
	if p.eval == nil {
		return a.Distance < b.Distance
	}
	ra, rb := a.Report, b.Report
	if ra.JobSplits != rb.JobSplits {
		return ra.JobSplits < rb.JobSplits
	}
	if ra.Lateness != rb.Lateness {
		return ra.Lateness < rb.Lateness
	}
	if ra.TravelingTime != rb.TravelingTime {
		return ra.TravelingTime < rb.TravelingTime
	}
	if ra.Duration != rb.Duration {
		return ra.Duration < rb.Duration
	}
	if ra.WaitingTime != rb.WaitingTime {
		return ra.WaitingTime < rb.WaitingTime
	}
	return a.Distance < b.Distance
}
