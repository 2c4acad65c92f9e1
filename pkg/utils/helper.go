package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts lists the start_time formats accepted from forms, most specific first.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseFormBool follows checkbox semantics: an absent field yields def, a present
// one is true unless it is empty or an explicit negative.
func ParseFormBool(value string, present, def bool) bool {
	if !present {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "n", "no", "off", "0":
		return false
	default:
		return true
	}
}

// ParseDateTime parses a submitted timestamp in loc. Layouts with an explicit
// offset keep their own zone.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
