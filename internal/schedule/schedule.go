// Package schedule accumulates the synthesized timeline of one route
// evaluation. The mutable Builder and the frozen Report split the original's
// incomplete/complete states into two types, so nothing can read totals off a
// half-built schedule.
package schedule

import (
	"time"

	"github.com/hzerrad/tourkit/internal/timewin"
)

// Builder is the running accumulator used while an evaluation is in flight.
// When logEvents is false only the scalar totals are maintained and the hot
// path never touches the event slice.
type Builder struct {
	startTime     time.Time
	endTime       time.Time
	duration      time.Duration
	lateness      time.Duration
	workingTime   time.Duration
	waitingTime   time.Duration
	travelingTime time.Duration
	jobSplits     int
	events        []Event
	logEvents     bool
}

// NewBuilder starts an empty schedule at start.
func NewBuilder(start time.Time, logEvents bool) Builder {
	return Builder{startTime: start, endTime: start, logEvents: logEvents}
}

// EndTime returns the running end of the schedule, the instant the next
// event must start at.
func (b *Builder) EndTime() time.Time { return b.endTime }

// AddWait appends a waiting segment.
func (b *Builder) AddWait(w timewin.Window) {
	d := w.Duration()
	b.waitingTime += d
	b.advance(d)
	if b.logEvents {
		b.events = append(b.events, Event{Kind: Wait, Window: w, Location: -1})
	}
}

// AddTravel appends a traveling segment.
func (b *Builder) AddTravel(w timewin.Window) {
	d := w.Duration()
	b.travelingTime += d
	b.advance(d)
	if b.logEvents {
		b.events = append(b.events, Event{Kind: Travel, Window: w, Location: -1})
	}
}

// AddWork appends a working segment at the given location.
func (b *Builder) AddWork(location int, w timewin.Window) {
	d := w.Duration()
	b.workingTime += d
	b.advance(d)
	if b.logEvents {
		b.events = append(b.events, Event{Kind: Work, Window: w, Location: location})
	}
}

// AddSplit records that a job had to be cut by an operating-hours boundary.
func (b *Builder) AddSplit() {
	b.jobSplits++
}

// AddLateness accumulates lateness against a location's windows.
func (b *Builder) AddLateness(d time.Duration) {
	b.lateness += d
}

func (b *Builder) advance(d time.Duration) {
	b.duration += d
	b.endTime = b.endTime.Add(d)
}

// Finish freezes the accumulator into a Report.
func (b *Builder) Finish() Report {
	return Report{
		StartTime:     b.startTime,
		EndTime:       b.endTime,
		Duration:      b.duration,
		Lateness:      b.lateness,
		WorkingTime:   b.workingTime,
		WaitingTime:   b.waitingTime,
		TravelingTime: b.travelingTime,
		JobSplits:     b.jobSplits,
		Events:        b.events,
	}
}

// Report is a completed schedule, safe to read in comparisons. Invariants:
// Duration == WaitingTime + WorkingTime + TravelingTime and
// EndTime == StartTime + Duration. Events is nil unless the evaluation was
// asked to log them.
type Report struct {
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Lateness      time.Duration
	WorkingTime   time.Duration
	WaitingTime   time.Duration
	TravelingTime time.Duration
	JobSplits     int
	Events        []Event
}

// Feasible reports whether the schedule met every constraint: no job was
// split and nothing ran late.
func (r Report) Feasible() bool {
	return r.JobSplits == 0 && r.Lateness == 0
}
