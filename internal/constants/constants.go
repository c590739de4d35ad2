// Package constants provides a centralized location for all configuration
// values and magic numbers used throughout the prreport application.
package constants

import "time"

// GitHub API constants
const (
	// PerPage is the page size requested from list endpoints.
	PerPage = 100

	// DefaultWorkers is the default number of pull requests whose details
	// are fetched concurrently.
	DefaultWorkers = 8
)

// Output constants
const (
	// DefaultFilename is the spreadsheet written by --excel when no
	// filename is given.
	DefaultFilename = "pr_report.xlsx"

	// SheetName is the name of the single worksheet in the spreadsheet.
	SheetName = "PR Report"

	// ReportTitle is the heading printed above the console table.
	ReportTitle = "Pull Request Report"

	// NoReviewers is shown in the reviewers column when a PR has no reviews.
	NoReviewers = "None"

	// MinTitleWidth is the narrowest the title column is truncated to when
	// fitting the table to the terminal.
	MinTitleWidth = 20

	// TruncationSuffixWidth is the width of the "..." suffix when truncating strings.
	TruncationSuffixWidth = 3
)

// TUI constants
const (
	// TUIUpdateInterval is the minimum time between TUI progress updates
	// to provide smooth progress display without excessive overhead.
	TUIUpdateInterval = 50 * time.Millisecond

	// LogThrottlePercent is the interval (in percent) at which progress
	// logs are emitted when not using the TUI.
	LogThrottlePercent = 10
)
