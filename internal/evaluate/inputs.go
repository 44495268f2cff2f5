package evaluate

import (
	"time"

	"github.com/hzerrad/tourkit/internal/matrix"
	"github.com/hzerrad/tourkit/internal/ophours"
	"github.com/hzerrad/tourkit/internal/timewin"
)

// Inputs bundles everything the evaluator needs beside the route: travel
// durations, per-location job durations and time windows, and the global
// operating hours. Inputs is immutable after construction and shared by
// reference across evaluations.
type Inputs struct {
	Durations    *matrix.Duration
	JobDurations []time.Duration
	Windows      []timewin.Windows
	// Hours is nil when the operation runs around the clock.
	Hours *ophours.Hours

	// Reserved for mid-travel breaks. Accepted and validated by the adapter
	// but not consumed by the evaluator yet.
	TravelUntilBreak time.Duration
	BreakDuration    time.Duration
}
