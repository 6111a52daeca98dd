package utils

import (
	"time"

	"github.com/dustin/go-humanize"
)

// ISOTimestamp formats t as RFC 3339 in UTC, or returns "" if zero.
func ISOTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// Size renders a byte count for log lines, e.g. "3.1 kB".
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
