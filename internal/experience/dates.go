package experience

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are tried in order before falling back to dateparse
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"Jan 2006",
	"January 2006",
	"01/2006",
	"1/2006",
	"2006",
}

// ongoingMarkers are end-date values meaning the role has not ended
var ongoingMarkers = map[string]bool{
	"current": true,
	"present": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

// IsOngoing reports whether an end-date string marks a current role.
func IsOngoing(endDate string) bool {
	return ongoingMarkers[strings.ToLower(strings.TrimSpace(endDate))]
}

// ParseDate parses the date formats commonly produced by resume parsers.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &DateError{Value: value}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, &DateError{Value: value, Cause: err}
	}
	return t, nil
}
