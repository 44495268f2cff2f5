package problem

import (
	"github.com/hzerrad/tourkit/internal/schedule"
	"github.com/hzerrad/tourkit/internal/solver"
)

// Output is the host-facing result of a solve. Sequence is a cyclic tour
// starting at an arbitrary index; external comparisons must be made modulo
// rotation.
type Output struct {
	Sequence       []int       `json:"sequence"`
	Iterations     uint64      `json:"iterations"`
	ElapsedSeconds uint64      `json:"elapsed_seconds"`
	Distance       uint64      `json:"distance"`
	TimeReport     *TimeReport `json:"time_report,omitempty"`
}

// TimeReport is the schedule summary in host units: Unix seconds for
// instants, whole seconds for durations.
type TimeReport struct {
	StartTime        int64        `json:"start_time"`
	EndTime          int64        `json:"end_time"`
	DurationSeconds  int64        `json:"duration_seconds"`
	LatenessSeconds  int64        `json:"lateness_seconds"`
	WorkingSeconds   int64        `json:"working_seconds"`
	WaitingSeconds   int64        `json:"waiting_seconds"`
	TravelingSeconds int64        `json:"traveling_seconds"`
	JobSplits        int          `json:"job_splits"`
	Feasible         bool         `json:"feasible"`
	Events           []EventEntry `json:"events,omitempty"`
}

// EventEntry is one timeline segment in host units. Location is present only
// for work events.
type EventEntry struct {
	Type     string `json:"type"`
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
	Location *int   `json:"location,omitempty"`
}

// NewOutput shapes a solver result into host output. TimeReport is present
// iff the solve ran in time mode.
func NewOutput(res solver.Result) *Output {
	out := &Output{
		Sequence:       res.Best.Route,
		Iterations:     res.Iterations,
		ElapsedSeconds: uint64(res.Elapsed.Seconds()),
		Distance:       res.Best.Distance,
	}
	if res.Best.Report != nil {
		out.TimeReport = newTimeReport(*res.Best.Report)
	}
	return out
}

func newTimeReport(r schedule.Report) *TimeReport {
	tr := &TimeReport{
		StartTime:        r.StartTime.Unix(),
		EndTime:          r.EndTime.Unix(),
		DurationSeconds:  int64(r.Duration.Seconds()),
		LatenessSeconds:  int64(r.Lateness.Seconds()),
		WorkingSeconds:   int64(r.WorkingTime.Seconds()),
		WaitingSeconds:   int64(r.WaitingTime.Seconds()),
		TravelingSeconds: int64(r.TravelingTime.Seconds()),
		JobSplits:        r.JobSplits,
		Feasible:         r.Feasible(),
	}
	for _, ev := range r.Events {
		entry := EventEntry{
			Type:  ev.Kind.String(),
			Start: ev.Window.Start.Unix(),
			End:   ev.Window.End.Unix(),
		}
		if ev.Kind == schedule.Work {
			loc := ev.Location
			entry.Location = &loc
		}
		tr.Events = append(tr.Events, entry)
	}
	return tr
}
