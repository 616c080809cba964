package countdown

import (
	"fmt"
	"strings"
	"time"
)

// Ended is the terminal display string.
const Ended = "Ended"

// IsEnded reports whether the auction deadline has passed.
func IsEnded(endTime, now time.Time) bool {
	return !now.Before(endTime)
}

// Format converts an absolute end time into a human countdown string and an
// ended flag. The remainder is rounded up to whole seconds so the display
// never shows "0s" while the auction is still live.
func Format(endTime, now time.Time) (string, bool) {
	remaining := endTime.Sub(now)
	if remaining <= 0 {
		return Ended, true
	}

	total := int64(remaining / time.Second)
	if remaining%time.Second > 0 {
		total++
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " "), false
}
