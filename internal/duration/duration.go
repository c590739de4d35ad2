// Package duration computes how long a pull request has been (or was) open
// and parses the date bounds accepted on the command line.
package duration

import (
	"fmt"
	"time"
)

// StillOpen is the close label used for pull requests without a closure time.
const StillOpen = "Still open"

// DateLayout is the calendar-day layout used for labels and date bounds.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Result is the elapsed time of a pull request in the forms the reports use.
type Result struct {
	Elapsed    time.Duration
	Days       int    // whole days, floored
	Human      string // e.g. "2 weeks, 3 days"
	CloseLabel string // closure date, or StillOpen
}

// Calculate returns the elapsed time between createdAt and closedAt. When
// closedAt is nil the pull request is treated as open and now is used as the
// end point. Both ends are truncated to the second. A negative elapsed time
// (clock skew between now and the API) is treated as zero.
func Calculate(createdAt time.Time, closedAt *time.Time, now time.Time) Result {
	end := now
	label := StillOpen
	if closedAt != nil {
		end = *closedAt
		label = closedAt.UTC().Format(DateLayout)
	}

	elapsed := end.Truncate(time.Second).Sub(createdAt.Truncate(time.Second))
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(elapsed / day)

	return Result{
		Elapsed:    elapsed,
		Days:       days,
		Human:      Humanize(days),
		CloseLabel: label,
	}
}

// Humanize formats a day count as a readable duration.
// Months are a flat 30 days; they are not calendar aware.
func Humanize(days int) string {
	switch {
	case days <= 0:
		return "Same day"
	case days == 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		return compound(days/7, "week", days%7)
	default:
		return compound(days/30, "month", days%30)
	}
}

// compound renders "<n> unit(s)[, <rem> day(s)]".
func compound(n int, unit string, rem int) string {
	s := plural(n, unit)
	if rem == 0 {
		return s
	}
	return s + ", " + plural(rem, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ParseBound normalises a date bound to YYYY-MM-DD. It accepts either an
// absolute date ("2024-06-01") or a relative duration counted back from now
// ("1w", "30d", "6mo"). An empty string means no bound.
func ParseBound(s string, now time.Time) (string, error) {
	if s == "" {
		return "", nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}

	d, err := parseRelative(s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD or e.g. 1w, 30d, 6mo): %w", s, err)
	}
	return now.Add(-d).UTC().Format(DateLayout), nil
}

// parseRelative parses human-readable durations like "1w", "30d", "6mo".
func parseRelative(s string) (time.Duration, error) {
	var n int
	var unit string

	if _, err := fmt.Sscanf(s, "%d%s", &n, &unit); err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative duration: %s", s)
	}

	switch unit {
	case "d", "day", "days":
		return time.Duration(n) * day, nil
	case "w", "wk", "wks", "week", "weeks":
		return time.Duration(n) * 7 * day, nil
	case "mo", "month", "months":
		return time.Duration(n) * 30 * day, nil
	case "y", "yr", "yrs", "year", "years":
		return time.Duration(n) * 365 * day, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}
