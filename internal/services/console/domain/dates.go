package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and form layout for calendar dates.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateLayout,
}

// ParseDate accepts a calendar date or a full timestamp.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date as "January 2, 2006". Unparseable input is
// returned unchanged.
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("January 2, 2006")
}

// FormatMonth renders a date as "January 2006".
func FormatMonth(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("January 2006")
}

// FormDate renders a stored date for a date input (YYYY-MM-DD).
func FormDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return strings.TrimSpace(raw)
	}
	return t.Format(DateLayout)
}
