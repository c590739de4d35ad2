package output

import (
	"strconv"
	"strings"
	"time"

	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/duration"
	"github.com/spiffcs/prreport/internal/model"
)

// Headers are the report column titles, in the order every writer uses.
var Headers = []string{
	"PR Title",
	"Author",
	"State",
	"Created At",
	"Close Date",
	"Days Open",
	"Duration",
	"# Reviews",
	"Reviewers",
	"# Review Comments",
	"# PR Comments",
}

// titleColumn is the index of "PR Title" in Headers.
const titleColumn = 0

// Row is the per-PR field set shared by all writers.
type Row struct {
	Number         int    `json:"number"`
	URL            string `json:"url,omitempty"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	State          string `json:"state"`
	CreatedAt      string `json:"createdAt"`
	CloseDate      string `json:"closeDate"`
	DaysOpen       int    `json:"daysOpen"`
	Duration       string `json:"duration"`
	Reviews        int    `json:"reviews"`
	Reviewers      string `json:"reviewers"`
	ReviewComments int    `json:"reviewComments"`
	PRComments     int    `json:"prComments"`
}

// NewRow derives the report fields for pr. now is only consulted for open
// pull requests.
func NewRow(pr model.PullRequest, now time.Time) Row {
	d := duration.Calculate(pr.CreatedAt, pr.ClosedAt, now)

	reviewers := constants.NoReviewers
	if len(pr.Reviews) > 0 {
		reviewers = strings.Join(pr.Reviewers(), ", ")
	}

	return Row{
		Number:         pr.Number,
		URL:            pr.URL,
		Title:          pr.Title,
		Author:         pr.Author,
		State:          string(pr.State),
		CreatedAt:      pr.CreatedAt.UTC().Format(duration.DateLayout),
		CloseDate:      d.CloseLabel,
		DaysOpen:       d.Days,
		Duration:       d.Human,
		Reviews:        len(pr.Reviews),
		Reviewers:      reviewers,
		ReviewComments: pr.ReviewCommentCount(),
		PRComments:     len(pr.Comments),
	}
}

// NewRows converts prs in order.
func NewRows(prs []model.PullRequest, now time.Time) []Row {
	rows := make([]Row, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, NewRow(pr, now))
	}
	return rows
}

// Strings returns the row's cells as text, aligned with Headers.
func (r Row) Strings() []string {
	return []string{
		r.Title,
		r.Author,
		r.State,
		r.CreatedAt,
		r.CloseDate,
		strconv.Itoa(r.DaysOpen),
		r.Duration,
		strconv.Itoa(r.Reviews),
		r.Reviewers,
		strconv.Itoa(r.ReviewComments),
		strconv.Itoa(r.PRComments),
	}
}

// Values returns the row's cells with counts kept numeric, aligned with
// Headers.
func (r Row) Values() []any {
	return []any{
		r.Title,
		r.Author,
		r.State,
		r.CreatedAt,
		r.CloseDate,
		r.DaysOpen,
		r.Duration,
		r.Reviews,
		r.Reviewers,
		r.ReviewComments,
		r.PRComments,
	}
}
