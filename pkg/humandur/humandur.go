package humandur

import (
	"fmt"
	"time"
)

// Format renders a duration the way the log line should read aloud:
// "6 hours", "10 seconds", "90 minutes". Durations that do not divide
// evenly into a single unit fall back to the stdlib rendering.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int64(d/time.Minute), "minute")
	case d%time.Second == 0:
		return plural(int64(d/time.Second), "second")
	default:
		return d.String()
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
