package engine

import (
	"strings"
	"time"
)

// datetimeLayout is the fixed output format of the datetime step.
const datetimeLayout = "2006-01-02 15:04:05"

// DefaultDatetimeLayouts are the input layouts tried, in order, when parsing
// a datetime column. Layouts with unpadded tokens also accept zero-padded
// values, so "2006-1-2 15:4:5" matches "2023-1-5 9:0:0" and
// "2023-01-05 09:00:00" alike.
var DefaultDatetimeLayouts = []string{
	"2006-1-2 15:4:5",
	"2006-1-2T15:4:5",
	time.RFC3339,
	"2006-1-2 15:4",
	"2006-1-2",
	"2006/1/2 15:4:5",
	"2006/1/2",
	"1/2/2006 15:4:5",
	"1/2/2006 15:4",
	"1/2/2006",
	"2-Jan-2006 15:4:5",
	"2-Jan-2006",
	"2 Jan 2006 15:4:5",
	"2 Jan 2006",
	"Jan 2, 2006 15:4:5",
	"Jan 2, 2006",
	time.RFC1123,
	time.ANSIC,
}

// parseDatetime tries each layout in order and reports whether any matched.
func parseDatetime(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
