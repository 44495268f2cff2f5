package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/hzerrad/tourkit/internal/problem"
)

// WatchCommand wraps cobra.Command with watch-specific functionality
type WatchCommand struct {
	*cobra.Command
	file      string
	every     string
	timeLimit int
	seed      int64
}

func init() {
	rootCmd.AddCommand(newWatchCommand().Command)
}

// newWatchCommand creates a fresh watch command instance for testing
func newWatchCommand() *WatchCommand {
	wc := &WatchCommand{}
	wc.Command = &cobra.Command{
		Args:  cobra.NoArgs,
		RunE:  wc.runWatch,
		Use:   "watch",
		Short: "Re-solve a problem file on change or on a cron schedule",
		Long: `Solve a problem file, then keep watching it and re-solve whenever it
changes on disk. With --every, also re-solve on a cron schedule - useful for
standing routing jobs whose matrices are regenerated periodically.

Runs until interrupted.

Examples:
  tourkit watch -f problem.yaml                       # Re-solve on file change
  tourkit watch -f problem.yaml --every "0 6 * * *"   # Also re-solve daily at 06:00
  tourkit watch -f problem.yaml -t 10                 # 10s budget per solve`,
	}

	wc.Command.Flags().StringVarP(&wc.file, "file", "f", "", "Problem file (YAML or JSON)")
	wc.Command.Flags().StringVar(&wc.every, "every", "", "Cron schedule for periodic re-solves")
	wc.Command.Flags().IntVarP(&wc.timeLimit, "time-limit", "t", 0, "Wall-clock budget in seconds per solve")
	wc.Command.Flags().Int64VarP(&wc.seed, "seed", "s", 0, "Random seed for reproducible restarts")
	_ = wc.Command.MarkFlagRequired("file")

	return wc
}

func (wc *WatchCommand) runWatch(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &wc.seed
	}

	solveOnce := func(trigger string) {
		runLogger := logger.With().
			Str("run_id", uuid.NewString()).
			Str("trigger", trigger).
			Str("file", wc.file).
			Logger()
		prob, err := problem.Load(wc.file)
		if err != nil {
			runLogger.Error().Err(err).Msg("failed to load problem")
			return
		}
		model, err := prob.Build()
		if err != nil {
			runLogger.Error().Err(err).Msg("invalid problem")
			return
		}
		res := runModel(model, wc.timeLimit, seed, false, runLogger)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: sequence %v, distance %s\n",
			time.Now().UTC().Format("15:04:05"), trigger,
			res.Best.Route, humanize.Comma(int64(res.Best.Distance)))
	}

	// Fail fast on an unusable file before settling into the loop.
	if _, err := problem.Load(wc.file); err != nil {
		return err
	}
	solveOnce("startup")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := watcher.Add(filepath.Dir(wc.file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", wc.file, err)
	}

	scheduled := make(chan struct{}, 1)
	if wc.every != "" {
		c := cron.New()
		if _, err := c.AddFunc(wc.every, func() {
			select {
			case scheduled <- struct{}{}:
			default:
			}
		}); err != nil {
			return fmt.Errorf("invalid --every schedule: %w", err)
		}
		c.Start()
		defer c.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("file", wc.file).Str("every", wc.every).Msg("watching")

	var debounce *time.Timer
	debounced := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stopping")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(wc.file) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce save bursts into one re-solve.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case debounced <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watch error")
		case <-debounced:
			solveOnce("file change")
		case <-scheduled:
			solveOnce("schedule")
		}
	}
}
