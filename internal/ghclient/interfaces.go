// Package ghclient provides GitHub API client functionality.
package ghclient

import (
	"context"

	gh "github.com/google/go-github/v57/github"
)

// PullRequestAPI defines the raw GitHub REST operations the Fetcher needs.
// This interface enables mocking the GitHub client in unit tests.
type PullRequestAPI interface {
	ListPullRequests(ctx context.Context, owner, repo string) ([]*gh.PullRequest, error)
	ListReviews(ctx context.Context, owner, repo string, number int) ([]*gh.PullRequestReview, error)
	ListReviewComments(ctx context.Context, owner, repo string, number int) ([]*gh.PullRequestComment, error)
	ListIssueComments(ctx context.Context, owner, repo string, number int) ([]*gh.IssueComment, error)
}

// Ensure Client implements PullRequestAPI interface.
var _ PullRequestAPI = (*Client)(nil)
