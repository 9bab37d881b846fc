package helpers

import "time"

// DateLayout is the calendar-date format used across the portal for
// applied/posted/deadline/placement dates.
const DateLayout = "2006-01-02"

// Today returns the current date formatted as yyyy-mm-dd
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate parses a yyyy-mm-dd date string
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// DatePassed reports whether the given yyyy-mm-dd date lies strictly before
// today. Unparseable dates are treated as passed.
func DatePassed(value string) bool {
	d, err := ParseDate(value)
	if err != nil {
		return true
	}
	today, _ := ParseDate(Today())
	return d.Before(today)
}

// ParseDuration parses a duration string, falling back to a default value
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
