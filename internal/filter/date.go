// Package filter narrows pull request lists by creation date.
package filter

import (
	"fmt"
	"time"

	"github.com/spiffcs/prreport/internal/duration"
)

// Range is an inclusive creation-date window. Bounds are YYYY-MM-DD strings;
// an empty bound is open-ended. Comparison is lexicographic on the UTC
// calendar day, which orders correctly because the layout is fixed-width.
type Range struct {
	Since string
	Until string
}

// NewRange builds a Range from user input. Each bound may be an absolute date
// or a relative duration such as "2w", resolved against now.
func NewRange(since, until string, now time.Time) (Range, error) {
	s, err := duration.ParseBound(since, now)
	if err != nil {
		return Range{}, fmt.Errorf("--since: %w", err)
	}
	u, err := duration.ParseBound(until, now)
	if err != nil {
		return Range{}, fmt.Errorf("--until: %w", err)
	}
	return Range{Since: s, Until: u}, nil
}

// IsZero reports whether the range has no bounds.
func (r Range) IsZero() bool {
	return r.Since == "" && r.Until == ""
}

// Inverted reports whether since is after until, so no day can match.
func (r Range) Inverted() bool {
	return r.Since != "" && r.Until != "" && r.Since > r.Until
}

// Contains reports whether t falls on a day inside the range.
func (r Range) Contains(t time.Time) bool {
	return r.ContainsDay(DayKey(t))
}

// ContainsDay reports whether a YYYY-MM-DD day key falls inside the range.
func (r Range) ContainsDay(day string) bool {
	if r.Since != "" && day < r.Since {
		return false
	}
	if r.Until != "" && day > r.Until {
		return false
	}
	return true
}

// String renders the range for log output.
func (r Range) String() string {
	since, until := r.Since, r.Until
	if since == "" {
		since = "*"
	}
	if until == "" {
		until = "*"
	}
	return since + ".." + until
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(duration.DateLayout)
}

// ByCreatedDate returns the items created inside r, preserving order.
// created extracts the creation time; a zero range returns items unchanged.
func ByCreatedDate[T any](items []T, created func(T) time.Time, r Range) []T {
	if r.IsZero() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if r.Contains(created(it)) {
			out = append(out, it)
		}
	}
	return out
}
