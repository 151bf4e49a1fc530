package season

import (
	"strconv"
	"strings"
	"time"
)

// Unknown labels matches whose date could not be parsed.
const Unknown = "unknown"

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// ParseDate parses a match date as exported by the common IPL datasets.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// Of returns the four-digit year label for date, or Unknown for a zero date.
func Of(date time.Time) string {
	if date.IsZero() {
		return Unknown
	}
	return strconv.Itoa(date.Year())
}

// Year parses a season label back to its year.
func Year(label string) (int, bool) {
	if len(label) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(label)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
