package timex

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by form fields.
const DateLayout = "2006-01-02"

// ParseDate parses a form date. Blank input yields nil, which is persisted
// as "no date".
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// FormatDate renders a nullable date, "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// NilIfZero maps the zero time to nil.
func NilIfZero(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}
