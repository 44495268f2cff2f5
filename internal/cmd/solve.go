package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hzerrad/tourkit/internal/evaluate"
	"github.com/hzerrad/tourkit/internal/human"
	"github.com/hzerrad/tourkit/internal/penalty"
	"github.com/hzerrad/tourkit/internal/problem"
	"github.com/hzerrad/tourkit/internal/render"
	"github.com/hzerrad/tourkit/internal/solver"
)

// SolveCommand wraps cobra.Command with solve-specific functionality
type SolveCommand struct {
	*cobra.Command
	file      string
	timeLimit int
	seed      int64
	json      bool
	schedule  bool
}

func init() {
	rootCmd.AddCommand(newSolveCommand().Command)
}

// newSolveCommand creates a fresh solve command instance for testing
// This avoids state pollution between tests by creating isolated command instances
func newSolveCommand() *SolveCommand {
	sc := &SolveCommand{}
	sc.Command = &cobra.Command{
		Args:  cobra.NoArgs,
		RunE:  sc.runSolve,
		Use:   "solve",
		Short: "Solve a routing problem from a problem file",
		Long: `Read a problem file and search for the best cyclic visiting sequence.

Without time inputs the search minimizes total distance. With a duration
matrix, job durations, and time windows it ranks candidates
lexicographically: job splits, lateness, traveling time, makespan, waiting
time, then distance.

Without a time limit (neither --time-limit nor the problem file's
time_limit) the search runs a single descent pass from the initial route.
With a limit it keeps restarting from random permutations until the budget
is spent; --time-limit overrides the problem file.

Examples:
  tourkit solve -f problem.yaml                  # One descent pass
  tourkit solve -f problem.yaml --time-limit 30  # 30s of restarts
  tourkit solve -f problem.yaml --seed 42        # Reproducible restarts
  tourkit solve -f problem.yaml --json           # JSON output
  tourkit solve -f problem.yaml --schedule       # Full event timeline`,
	}

	sc.Command.Flags().StringVarP(&sc.file, "file", "f", "", "Problem file (YAML or JSON)")
	sc.Command.Flags().IntVarP(&sc.timeLimit, "time-limit", "t", 0, "Wall-clock budget in seconds (overrides the problem file)")
	sc.Command.Flags().Int64VarP(&sc.seed, "seed", "s", 0, "Random seed for reproducible restarts")
	sc.Command.Flags().BoolVarP(&sc.json, "json", "j", false, "Output as JSON")
	sc.Command.Flags().BoolVar(&sc.schedule, "schedule", false, "Print the full event timeline")
	_ = sc.Command.MarkFlagRequired("file")

	return sc
}

func (sc *SolveCommand) runSolve(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr()).With().
		Str("run_id", uuid.NewString()).
		Str("file", sc.file).
		Logger()

	prob, err := problem.Load(sc.file)
	if err != nil {
		return err
	}
	model, err := prob.Build()
	if err != nil {
		return fmt.Errorf("invalid problem: %w", err)
	}

	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &sc.seed
	}
	res := runModel(model, sc.timeLimit, seed, sc.schedule, logger)

	if sc.json {
		return sc.outputJSON(cmd, res)
	}
	return sc.outputText(cmd, model, res)
}

// runModel wires penalizer and solver for one run. withEvents re-evaluates
// the winner with event logging so the timeline can be rendered; the search
// itself never builds event logs.
func runModel(model *problem.Model, timeLimitSec int, seed *int64, withEvents bool, logger zerolog.Logger) solver.Result {
	var eval *evaluate.Evaluator
	if model.Inputs != nil {
		eval = evaluate.New(model.Inputs)
	}
	pen := penalty.New(model.Distances, eval)

	limit := model.TimeLimit
	if timeLimitSec > 0 {
		limit = time.Duration(timeLimitSec) * time.Second
	}
	s := solver.New(pen, model.N, solver.Options{
		TimeLimit: limit,
		InitRoute: model.InitRoute,
		Seed:      seed,
		Logger:    &logger,
	})
	res := s.Solve()

	if withEvents && pen.TimeMode() {
		route := make([]int, len(res.Best.Route))
		copy(route, res.Best.Route)
		res.Best = pen.Penalize(route, true)
	}

	logger.Info().
		Uint64("iterations", res.Iterations).
		Dur("elapsed", res.Elapsed).
		Uint64("distance", res.Best.Distance).
		Bool("feasible", res.Best.Feasible()).
		Msg("solve finished")
	return res
}

func (sc *SolveCommand) outputJSON(cmd *cobra.Command, res solver.Result) error {
	data, err := json.MarshalIndent(problem.NewOutput(res), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func (sc *SolveCommand) outputText(cmd *cobra.Command, model *problem.Model, res solver.Result) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Solved %d locations in %s (%s evaluations)\n\n",
		model.N,
		human.FormatDuration(res.Elapsed.Round(time.Second)),
		humanize.Comma(int64(res.Iterations)))
	_, _ = fmt.Fprintf(out, "Sequence: %s\n", formatSequence(res.Best.Route))
	_, _ = fmt.Fprintf(out, "Distance: %s\n", humanize.Comma(int64(res.Best.Distance)))

	if res.Best.Report != nil {
		_, _ = fmt.Fprintln(out)
		if sc.schedule {
			render.Timeline(out, *res.Best.Report)
		} else {
			render.Totals(out, *res.Best.Report)
		}
	}
	return nil
}

// formatSequence renders a cyclic tour, repeating the first stop in
// parentheses to show the closing edge.
func formatSequence(route []int) string {
	parts := make([]string, 0, len(route)+1)
	for _, loc := range route {
		parts = append(parts, fmt.Sprintf("%d", loc))
	}
	parts = append(parts, fmt.Sprintf("(%d)", route[0]))
	return strings.Join(parts, " -> ")
}
