package timewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindows(t *testing.T) {
	t.Run("should accept chronological non-overlapping windows", func(t *testing.T) {
		ws, err := NewWindows([]Window{
			New(ts(1, 1, 0), ts(1, 2, 0)),
			New(ts(1, 3, 0), ts(1, 5, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, ws.Len())
		assert.Equal(t, New(ts(1, 1, 0), ts(1, 2, 0)), ws.First())
	})

	t.Run("should accept windows sharing a boundary instant", func(t *testing.T) {
		_, err := NewWindows([]Window{
			New(ts(1, 1, 0), ts(1, 2, 0)),
			New(ts(1, 2, 0), ts(1, 3, 0)),
		})
		assert.NoError(t, err)
	})

	t.Run("should reject overlapping windows", func(t *testing.T) {
		_, err := NewWindows([]Window{
			New(ts(1, 1, 0), ts(1, 3, 0)),
			New(ts(1, 2, 0), ts(1, 4, 0)),
		})
		assert.Error(t, err)
	})

	t.Run("should reject out-of-order windows via Add", func(t *testing.T) {
		ws := Windows{}
		require.NoError(t, ws.Add(New(ts(1, 3, 0), ts(1, 5, 0))))
		assert.Error(t, ws.Add(New(ts(1, 1, 0), ts(1, 2, 0))))
	})
}

func TestWindowsLateness(t *testing.T) {
	t.Run("should be zero for an empty collection", func(t *testing.T) {
		ws := Windows{}
		assert.Equal(t, time.Duration(0), ws.Lateness(ts(9, 0, 0)))
	})

	t.Run("should measure against the last window only", func(t *testing.T) {
		ws, err := NewWindows([]Window{
			New(ts(1, 1, 0), ts(1, 2, 0)),
			New(ts(1, 3, 0), ts(1, 5, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), ws.Lateness(ts(1, 4, 0)))
		assert.Equal(t, 2*time.Hour, ws.Lateness(ts(1, 7, 0)))
	})
}

func TestFindNextFit(t *testing.T) {
	ws, err := NewWindows([]Window{
		New(ts(1, 1, 0), ts(1, 2, 0)),
		New(ts(1, 3, 0), ts(1, 5, 0)),
	})
	require.NoError(t, err)

	t.Run("should return nothing for an empty collection", func(t *testing.T) {
		empty := Windows{}
		_, ok := empty.FindNextFit(ts(1, 0, 0), time.Hour, true)
		assert.False(t, ok)
	})

	t.Run("should find the first window fitting the whole duration", func(t *testing.T) {
		w, ok := ws.FindNextFit(ts(1, 0, 0), time.Hour, true)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 1, 0), ts(1, 2, 0)), w)

		w, ok = ws.FindNextFit(ts(1, 0, 0), 2*time.Hour, true)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 3, 0), ts(1, 5, 0)), w)
	})

	t.Run("should return nothing when no window is long enough", func(t *testing.T) {
		_, ok := ws.FindNextFit(ts(1, 0, 0), 3*time.Hour, true)
		assert.False(t, ok)
	})

	t.Run("should clip to the first open window when fitting is optional", func(t *testing.T) {
		w, ok := ws.FindNextFit(ts(1, 0, 0), 2*time.Hour, false)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 1, 0), ts(1, 2, 0)), w)

		w, ok = ws.FindNextFit(ts(1, 2, 0), 3*time.Hour, false)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 3, 0), ts(1, 5, 0)), w)
	})

	t.Run("should treat a window ending exactly now as spent", func(t *testing.T) {
		w, ok := ws.FindNextFit(ts(1, 2, 0), time.Hour, true)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 3, 0), ts(1, 4, 0)), w)
	})

	t.Run("should return nothing past the last window", func(t *testing.T) {
		_, ok := ws.FindNextFit(ts(2, 0, 0), 3*time.Hour, false)
		assert.False(t, ok)
	})

	t.Run("should start mid-window when now is inside it", func(t *testing.T) {
		w, ok := ws.FindNextFit(ts(1, 4, 0), time.Hour, true)
		require.True(t, ok)
		assert.Equal(t, New(ts(1, 4, 0), ts(1, 5, 0)), w)
	})
}
