// Package solver drives the search: iterated local descent over the move
// catalog, accepting strictly improving solutions under the penalizer's
// lexicographic order, restarting from uniform random permutations until the
// wall-clock budget runs out.
package solver

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/hzerrad/tourkit/internal/moves"
	"github.com/hzerrad/tourkit/internal/penalty"
)

// Options configures a solver. The zero value means: start from the identity
// permutation, no time limit (one descent pass), time-derived seed, no
// logging.
type Options struct {
	// TimeLimit is the wall-clock budget. Zero means a single pass.
	TimeLimit time.Duration
	// InitRoute is the starting permutation; nil means identity.
	InitRoute []int
	// Seed makes restarts reproducible when non-nil.
	Seed *int64
	// Logger receives progress at debug level; nil disables logging.
	Logger *zerolog.Logger
}

// Result is what a finished solve hands back to the adapter.
type Result struct {
	Best       penalty.Solution
	Iterations uint64
	Elapsed    time.Duration
}

// Solver owns the current and best solutions of one run. It is
// single-threaded; evaluations share the immutable penalizer inputs by
// reference and mutate only freshly cloned routes.
type Solver struct {
	pen        *penalty.Penalizer
	n          int
	current    penalty.Solution
	best       penalty.Solution
	timeLimit  time.Duration
	start      time.Time
	iterations uint64
	rng        *rand.Rand
	log        zerolog.Logger
}

// New creates a solver over n locations.
func New(pen *penalty.Penalizer, n int, opts Options) *Solver {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	s := &Solver{
		pen:       pen,
		n:         n,
		timeLimit: opts.TimeLimit,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
	init := opts.InitRoute
	if init == nil {
		init = identity(n)
	}
	s.current = s.evaluate(init)
	s.best = s.current
	return s
}

// Solve runs descent passes until the budget is exhausted, or for exactly
// one pass when no budget was set.
func (s *Solver) Solve() Result {
	s.start = time.Now()
	for {
		improved := true
		for improved && !s.terminated() {
			improved = s.runHeuristics()
		}
		if s.pen.Better(s.current, s.best) {
			s.best = s.current
			s.logSolution("new best solution")
		}
		if s.timeLimit == 0 || s.terminated() {
			break
		}
		s.current = s.evaluate(s.randomRoute())
		s.log.Debug().Uint64("iterations", s.iterations).Msg("restarting from random permutation")
	}
	elapsed := time.Since(s.start)
	s.log.Debug().
		Uint64("iterations", s.iterations).
		Dur("elapsed", elapsed).
		Uint64("distance", s.best.Distance).
		Msg("search finished")
	return Result{Best: s.best, Iterations: s.iterations, Elapsed: elapsed}
}

// runHeuristics scans the full move catalog once, accepting every strict
// improvement it meets. It reports whether anything improved.
func (s *Solver) runHeuristics() bool {
	improved := false
	for _, mv := range moves.Catalog {
		if s.terminated() {
			break
		}
		if s.runMove(mv) {
			improved = true
		}
	}
	return improved
}

// runMove enumerates all admissible (i, j) pairs for one move, cloning the
// current route, applying the transform and keeping the result when it ranks
// strictly better.
func (s *Solver) runMove(mv moves.Move) bool {
	improved := false
	for i := 0; i < s.n; i++ {
		for j := i + mv.MinGap; j < s.n; j++ {
			cand := make([]int, s.n)
			copy(cand, s.current.Route)
			mv.Apply(cand, i, j)
			sol := s.evaluate(cand)
			if s.pen.Better(sol, s.current) {
				s.current = sol
				improved = true
			}
		}
	}
	return improved
}

func (s *Solver) evaluate(route []int) penalty.Solution {
	s.iterations++
	return s.pen.Penalize(route, false)
}

func (s *Solver) randomRoute() []int {
	route := identity(s.n)
	s.rng.Shuffle(s.n, func(i, j int) {
		route[i], route[j] = route[j], route[i]
	})
	return route
}

// terminated polls the wall clock against the budget. With no budget the
// outer loop exits after one pass instead.
func (s *Solver) terminated() bool {
	return s.timeLimit > 0 && time.Since(s.start) >= s.timeLimit
}

func (s *Solver) logSolution(msg string) {
	ev := s.log.Debug().Uint64("distance", s.best.Distance)
	if r := s.best.Report; r != nil {
		ev = ev.Int("job_splits", r.JobSplits).
			Dur("lateness", r.Lateness).
			Dur("duration", r.Duration)
	}
	ev.Msg(msg)
}

func identity(n int) []int {
	route := make([]int, n)
	for i := range route {
		route[i] = i
	}
	return route
}
