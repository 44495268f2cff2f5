package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("should list the subcommands in --help output", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"--help"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "tourkit")
		assert.Contains(t, out.String(), "solve")
		assert.Contains(t, out.String(), "watch")
	})

	t.Run("should carry version information", func(t *testing.T) {
		assert.Contains(t, rootCmd.Version, version)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("should log to the given writer", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out)
		logger.Info().Msg("hello from the solver")
		assert.Contains(t, out.String(), "hello from the solver")
	})

	t.Run("should suppress debug logs unless verbose", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out)
		logger.Debug().Msg("hidden")
		assert.NotContains(t, out.String(), "hidden")
	})
}
