// Package render turns a completed schedule into terminal output: one row
// per timeline event plus a totals block.
package render

import (
	"fmt"
	"io"

	"github.com/hzerrad/tourkit/internal/human"
	"github.com/hzerrad/tourkit/internal/schedule"
)

// Timeline writes the event log as an aligned table. Reports evaluated
// without event logging render only the totals.
func Timeline(w io.Writer, report schedule.Report) {
	if len(report.Events) > 0 {
		fmt.Fprintf(w, "%-4s %-7s %-22s %-22s %-10s %s\n",
			"#", "TYPE", "START", "END", "LENGTH", "LOCATION")
		for i, ev := range report.Events {
			loc := "-"
			if ev.Kind == schedule.Work {
				loc = fmt.Sprintf("%d", ev.Location)
			}
			fmt.Fprintf(w, "%-4d %-7s %-22s %-22s %-10s %s\n",
				i+1,
				ev.Kind,
				human.FormatClock(ev.Window.Start)+" "+human.FormatWeekday(ev.Window.Start),
				human.FormatClock(ev.Window.End)+" "+human.FormatWeekday(ev.Window.End),
				human.FormatDuration(ev.Window.Duration()),
				loc)
		}
		fmt.Fprintln(w)
	}
	Totals(w, report)
}

// Totals writes the schedule's scalar summary.
func Totals(w io.Writer, report schedule.Report) {
	fmt.Fprintf(w, "Schedule %s -> %s\n",
		human.FormatClock(report.StartTime), human.FormatClock(report.EndTime))
	fmt.Fprintf(w, "  duration:  %s\n", human.FormatDuration(report.Duration))
	fmt.Fprintf(w, "  working:   %s\n", human.FormatDuration(report.WorkingTime))
	fmt.Fprintf(w, "  traveling: %s\n", human.FormatDuration(report.TravelingTime))
	fmt.Fprintf(w, "  waiting:   %s\n", human.FormatDuration(report.WaitingTime))
	fmt.Fprintf(w, "  lateness:  %s\n", human.FormatDuration(report.Lateness))
	fmt.Fprintf(w, "  splits:    %d\n", report.JobSplits)
	if report.Feasible() {
		fmt.Fprintln(w, "  feasible:  yes")
	} else {
		fmt.Fprintln(w, "  feasible:  no")
	}
}
