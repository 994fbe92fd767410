package bucket

import (
	"errors"
	"fmt"
	"time"
)

// Granularity selects the calendar window documents are grouped by.
// All timestamps inside the same window map to the same bucket key.
type Granularity string

const (
	Day   Granularity = "day"
	Month Granularity = "month"
	Year  Granularity = "year"
)

// Sentinel errors for date and granularity validation
var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidGranularity = errors.New("invalid granularity")
)

// DateLayout is the default layout for document dates (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// ParseGranularity validates a time-unit name from configuration or flags.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case Day, Month, Year:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q (valid units are day, month and year)", ErrInvalidGranularity, s)
}

// Key truncates t to the granularity window and returns the canonical bucket
// key. Keys are zero-padded so lexicographic order equals chronological order
// ("2008-04" < "2008-11"); downstream consumers can sort them without
// re-parsing dates.
func Key(t time.Time, g Granularity) (string, error) {
	switch g {
	case Day:
		return t.Format("2006-01-02"), nil
	case Month:
		return t.Format("2006-01"), nil
	case Year:
		return t.Format("2006"), nil
	}
	return "", fmt.Errorf("%w: %q (valid units are day, month and year)", ErrInvalidGranularity, string(g))
}

// ParseDate parses a document date using layout, or DateLayout when layout is
// empty. Two timestamps that parse into the same granularity window are
// guaranteed to produce identical keys via Key.
func ParseDate(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrInvalidDate, s, layout)
	}
	return t, nil
}
