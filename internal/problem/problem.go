// Package problem is the adapter between raw host input and the solver's
// internal types. It loads problem files, validates every input against the
// error taxonomy, converts seconds to internal time values, and shapes
// results back into host output.
package problem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WindowSpec is one (start, end) pair in Unix seconds, UTC.
type WindowSpec struct {
	Start int64 `yaml:"start" json:"start"`
	End   int64 `yaml:"end" json:"end"`
}

// RuleSpec derives a location's time windows from an RFC 5545 recurrence
// rule: each occurrence opens a window of the given length in seconds. The
// rule must be bounded by COUNT or UNTIL.
type RuleSpec struct {
	Rule     string `yaml:"rrule" json:"rrule"`
	Duration int64  `yaml:"duration" json:"duration"`
}

// OperationTimes is the global daily operating interval in seconds from
// midnight. A full-day span (end-start == 86400) or start == end means the
// operation runs around the clock.
type OperationTimes struct {
	Start int64 `yaml:"start" json:"start"`
	End   int64 `yaml:"end" json:"end"`
}

// Problem is the raw solver request as read from a problem file or built by
// a host. All times are seconds; all timestamps are Unix seconds UTC.
type Problem struct {
	DistanceMatrix [][]int64       `yaml:"distance_matrix" json:"distance_matrix"`
	DurationMatrix [][]int64       `yaml:"duration_matrix,omitempty" json:"duration_matrix,omitempty"`
	JobDurations   []int64         `yaml:"job_durations,omitempty" json:"job_durations,omitempty"`
	TimeWindows    [][]WindowSpec  `yaml:"time_windows,omitempty" json:"time_windows,omitempty"`
	WindowRules    []*RuleSpec     `yaml:"window_rules,omitempty" json:"window_rules,omitempty"`
	OperationTimes *OperationTimes `yaml:"operation_times,omitempty" json:"operation_times,omitempty"`
	WorkingDays    []bool          `yaml:"working_days,omitempty" json:"working_days,omitempty"`
	Holidays       string          `yaml:"holidays,omitempty" json:"holidays,omitempty"`

	// Reserved for mid-travel breaks; accepted and validated, not yet
	// consumed by the evaluator.
	TravelDurationUntilBreak *int64 `yaml:"travel_duration_until_break,omitempty" json:"travel_duration_until_break,omitempty"`
	BreakDuration            *int64 `yaml:"break_duration,omitempty" json:"break_duration,omitempty"`

	TimeLimit *int64 `yaml:"time_limit,omitempty" json:"time_limit,omitempty"`
	InitRoute []int  `yaml:"init_route,omitempty" json:"init_route,omitempty"`
}

// Load reads a problem file. The format follows the file extension: .yaml
// and .yml parse as YAML, everything else as JSON.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	p := &Problem{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse problem file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse problem file %s: %w", path, err)
		}
	}
	return p, nil
}

// TimeMode reports whether the problem carries everything needed for
// time-aware solving: a duration matrix, job durations, and time windows
// (explicit or rule-derived).
func (p *Problem) TimeMode() bool {
	return p.DurationMatrix != nil && p.JobDurations != nil &&
		(p.TimeWindows != nil || p.WindowRules != nil)
}
