package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
}

// FormatDate formats a time as YYYY-MM-DD. The zero time renders as the
// empty string, which is the serialized form of an absent date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
