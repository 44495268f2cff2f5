package problem

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/hzerrad/tourkit/internal/timewin"
)

// expandRule turns a recurrence rule into concrete time windows: one window
// of spec.Duration seconds per occurrence. Rules must be bounded (COUNT or
// UNTIL) so expansion terminates.
func expandRule(spec *RuleSpec, loc int) ([]timewin.Window, error) {
	if spec.Duration <= 0 {
		return nil, Errorf(BoundsError, "location %d: window rule duration must be positive, got %d", loc, spec.Duration)
	}
	upper := strings.ToUpper(spec.Rule)
	if !strings.Contains(upper, "COUNT=") && !strings.Contains(upper, "UNTIL=") {
		return nil, Errorf(BoundsError, "location %d: window rule must be bounded by COUNT or UNTIL", loc)
	}
	set, err := rrule.StrToRRuleSet(spec.Rule)
	if err != nil {
		return nil, Errorf(OrderError, "location %d: invalid recurrence rule: %v", loc, err)
	}
	length := time.Duration(spec.Duration) * time.Second
	occurrences := set.All()
	windows := make([]timewin.Window, 0, len(occurrences))
	for _, t := range occurrences {
		start := t.UTC()
		windows = append(windows, timewin.Window{Start: start, End: start.Add(length)})
	}
	return windows, nil
}
