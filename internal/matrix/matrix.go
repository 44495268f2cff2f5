// Package matrix holds the square lookup tables the solver reads on every
// evaluation: unitless distances and travel durations. Both are stored as a
// single flat slice so lookups stay O(1) without pointer chasing.
package matrix

import (
	"fmt"
	"time"
)

// Distance is an N×N table of unitless non-negative distances. Asymmetric
// tables are allowed; self-entries are zero.
type Distance struct {
	n     int
	cells []uint64
}

// NewDistance validates that rows form a square table and copies them into
// flat storage.
func NewDistance(rows [][]uint64) (*Distance, error) {
	n := len(rows)
	m := &Distance{n: n, cells: make([]uint64, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("distance matrix row %d has %d entries, want %d", i, len(row), n)
		}
		m.cells = append(m.cells, row...)
	}
	return m, nil
}

// Len returns the number of locations N.
func (m *Distance) Len() int { return m.n }

// At returns the distance from location i to location j.
func (m *Distance) At(i, j int) uint64 {
	return m.cells[i*m.n+j]
}

// Duration is an N×N table of travel durations.
type Duration struct {
	n     int
	cells []time.Duration
}

// NewDuration validates that rows form a square table and copies them into
// flat storage.
func NewDuration(rows [][]time.Duration) (*Duration, error) {
	n := len(rows)
	m := &Duration{n: n, cells: make([]time.Duration, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("duration matrix row %d has %d entries, want %d", i, len(row), n)
		}
		m.cells = append(m.cells, row...)
	}
	return m, nil
}

// Len returns the number of locations N.
func (m *Duration) Len() int { return m.n }

// At returns the travel duration from location i to location j.
func (m *Duration) At(i, j int) time.Duration {
	return m.cells[i*m.n+j]
}
