// Package timeutil holds small clock helpers shared by the fetch pipeline:
// deadline budgeting against a monotonic reference and the site's epoch
// timestamp conversions.
package timeutil

import (
	"strconv"
	"strings"
	"time"
)

const minAttemptTimeout = time.Second

// DeadlineTimeout resolves the timeout for the next network attempt under an
// overall deadline. A zero deadline means no budget applies and fallback is
// returned as-is. When budget remains it is clamped into
// [1s, fallback]; when none remains, ok is false and no attempt should start.
func DeadlineTimeout(deadline time.Time, fallback time.Duration) (time.Duration, bool) {
	if deadline.IsZero() {
		return fallback, true
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, false
	}
	if remaining > fallback {
		remaining = fallback
	}
	if remaining < minAttemptTimeout {
		remaining = minAttemptTimeout
	}
	return remaining, true
}

// EpochToISO8601 converts the site's epoch attribute value (seconds since the
// Unix epoch, as decimal text) to an ISO-8601 UTC string with a Z suffix.
// Blank or non-integer input yields "".
func EpochToISO8601(value string) string {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return ""
	}
	epoch, err := strconv.ParseInt(candidate, 10, 64)
	if err != nil {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02T15:04:05Z")
}

// ParseISO8601UTC parses an ISO-8601 string into a UTC time. Both the Z
// suffix and numeric offsets are accepted. The zero time and false are
// returned for blank or unparseable input.
func ParseISO8601UTC(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
