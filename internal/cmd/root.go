package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	verbose bool   // Global verbosity flag, raises logging to debug level
	logFile string // Optional rotating log file sink
)

var rootCmd = &cobra.Command{
	Use:   "tourkit",
	Short: "tourkit - a traveling salesman solver with time windows",
	Long: `tourkit solves traveling salesman problems with per-location time
windows, daily operating hours, working days, and splittable jobs.

It reads a problem file (YAML or JSON), runs an iterated local search under
an optional wall-clock budget, and prints the best cyclic visiting sequence
it found, together with the synthesized schedule for time-aware problems.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommand is specified
		_ = cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (rotated)")
}

// newLogger builds the logger every command shares: console on stderr, plus
// a rotating file sink when --log-file is set.
func newLogger(errOut io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: errOut}}
	if logFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		})
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}

// SetOutput sets the output and error writers for the root command
func SetOutput(out, err interface{}) {
	if w, ok := out.(io.Writer); ok {
		rootCmd.SetOut(w)
	}
	if w, ok := err.(io.Writer); ok {
		rootCmd.SetErr(w)
	}
}
