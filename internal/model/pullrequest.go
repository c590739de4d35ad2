// Package model contains domain types for the PR report.
// These types are independent of any external GitHub library.
package model

import "time"

// PRState is the pull request state as reported by GitHub.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
)

// Comment is a single comment, either attached to a review or to the PR
// conversation thread.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is a reviewer's verdict on a pull request along with the inline
// comments that belong to it.
type Review struct {
	ID          int64     `json:"id"`
	Reviewer    string    `json:"reviewer"`
	State       string    `json:"state"` // APPROVED, CHANGES_REQUESTED, COMMENTED, ...
	Comments    []Comment `json:"comments"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// PullRequest is a pull request with its reviews and top-level comments.
type PullRequest struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	State     PRState    `json:"state"`
	URL       string     `json:"url,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`

	Reviews  []Review  `json:"reviews"`
	Comments []Comment `json:"comments"`
}

// IsClosed reports whether the pull request has a closure timestamp.
// ClosedAt is the only signal used; State is informational.
func (p PullRequest) IsClosed() bool {
	return p.ClosedAt != nil
}

// ReviewCommentCount returns the number of comments across all reviews.
func (p PullRequest) ReviewCommentCount() int {
	n := 0
	for _, r := range p.Reviews {
		n += len(r.Comments)
	}
	return n
}

// Reviewers returns the reviewer handles in review order.
// A reviewer who submitted several reviews appears once per review.
func (p PullRequest) Reviewers() []string {
	out := make([]string, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		out = append(out, r.Reviewer)
	}
	return out
}
