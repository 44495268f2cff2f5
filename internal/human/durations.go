// Package human formats solver quantities for terminal output.
package human

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as day/hour/minute/second parts,
// dropping zero components: "2d 7h", "45m 10s", "0s".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	neg := d < 0
	if neg {
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	parts := []string{}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	out := strings.Join(parts, " ")
	if neg {
		return "-" + out
	}
	return out
}

// FormatClock renders an absolute instant for schedule rows.
func FormatClock(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// FormatWeekday returns the short weekday name of an instant.
func FormatWeekday(t time.Time) string {
	return t.UTC().Format("Mon")
}
