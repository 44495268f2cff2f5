package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hzerrad/tourkit/internal/schedule"
	"github.com/hzerrad/tourkit/internal/timewin"
)

func sampleReport(logEvents bool) schedule.Report {
	start := time.Date(2021, 1, 1, 6, 0, 0, 0, time.UTC)
	b := schedule.NewBuilder(start, logEvents)
	b.AddWait(timewin.New(start, start.Add(2*time.Hour)))
	b.AddWork(0, timewin.New(start.Add(2*time.Hour), start.Add(5*time.Hour)))
	b.AddTravel(timewin.New(start.Add(5*time.Hour), start.Add(6*time.Hour)))
	return b.Finish()
}

func TestTimeline(t *testing.T) {
	t.Run("should render one row per event plus totals", func(t *testing.T) {
		var buf strings.Builder
		Timeline(&buf, sampleReport(true))
		out := buf.String()

		assert.Contains(t, out, "TYPE")
		assert.Contains(t, out, "wait")
		assert.Contains(t, out, "work")
		assert.Contains(t, out, "travel")
		assert.Contains(t, out, "2021-01-01 08:00")
		assert.Contains(t, out, "duration:  6h")
		assert.Contains(t, out, "feasible:  yes")
	})

	t.Run("should render only totals without an event log", func(t *testing.T) {
		var buf strings.Builder
		Timeline(&buf, sampleReport(false))
		out := buf.String()

		assert.NotContains(t, out, "TYPE")
		assert.Contains(t, out, "working:   3h")
		assert.Contains(t, out, "waiting:   2h")
		assert.Contains(t, out, "traveling: 1h")
	})
}

func TestTotals(t *testing.T) {
	t.Run("should flag infeasible schedules", func(t *testing.T) {
		start := time.Date(2021, 1, 1, 6, 0, 0, 0, time.UTC)
		b := schedule.NewBuilder(start, false)
		b.AddSplit()
		var buf strings.Builder
		Totals(&buf, b.Finish())
		assert.Contains(t, buf.String(), "feasible:  no")
		assert.Contains(t, buf.String(), "splits:    1")
	})
}
