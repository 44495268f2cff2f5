package cmd

import "time"

// Log rotation defaults for --log-file
const (
	// logMaxSizeMB is the size a log file may reach before rotation
	logMaxSizeMB = 10
	// logMaxBackups is the number of rotated files kept around
	logMaxBackups = 3
	// logMaxAgeDays is the age limit for rotated files
	logMaxAgeDays = 28
)

// Watch command constants
const (
	// watchDebounce coalesces bursts of file events into one re-solve
	watchDebounce = 500 * time.Millisecond
)
