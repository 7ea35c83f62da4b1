package render

import (
	"fmt"
	"time"
)

// FormatTimestamp renders epoch milliseconds as local calendar time with
// millisecond precision. Real logs contain zero and negative timestamps
// (events recorded before the clock was set); those render as an invalid
// marker rather than an error. Values that convert to a time outside the
// formattable calendar range keep the raw number visible.
func FormatTimestamp(ms int64) string {
	if ms <= 0 {
		return "Invalid timestamp"
	}
	t := time.UnixMilli(ms)
	if y := t.Year(); y < 1 || y > 9999 {
		return fmt.Sprintf("Invalid timestamp: %d", ms)
	}
	return t.Format("2006-01-02 15:04:05.000")
}
