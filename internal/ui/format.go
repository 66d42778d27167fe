package ui

import (
	"math"
	"strconv"
	"time"
)

// ClockLayout is the 12-hour hh:mm clock used for message times.
const ClockLayout = "03:04 PM"

// ClockTime formats t for a message timestamp.
func ClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in 1024-based units with at most two
// decimals, e.g. "1.5 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
