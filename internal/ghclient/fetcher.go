package ghclient

import (
	"context"
	"sync/atomic"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/filter"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called as pull requests finish assembling.
type ProgressFunc func(completed, total int)

// Fetcher retrieves pull requests with their reviews and comments.
type Fetcher struct {
	api        PullRequestAPI
	workers    int
	onListed   func(total int)
	onProgress ProgressFunc
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithWorkers caps the number of pull requests fetched concurrently.
func WithWorkers(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.workers = n
		}
	}
}

// WithProgress registers a callback invoked after each pull request is assembled.
func WithProgress(fn ProgressFunc) FetcherOption {
	return func(f *Fetcher) {
		f.onProgress = fn
	}
}

// WithListed registers a callback invoked once the pull request list is
// fetched and date-filtered, with the number of pull requests to assemble.
func WithListed(fn func(total int)) FetcherOption {
	return func(f *Fetcher) {
		f.onListed = fn
	}
}

// NewFetcher creates a Fetcher backed by api.
func NewFetcher(api PullRequestAPI, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		api:     api,
		workers: constants.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch lists the repository's pull requests, drops those created outside r,
// and fetches reviews, review comments and conversation comments for the
// rest. The result follows the upstream listing order. The first failing
// request cancels the remaining work and its error is returned; no partial
// result is produced.
func (f *Fetcher) Fetch(ctx context.Context, fullName string, r filter.Range) ([]model.PullRequest, error) {
	owner, repo, err := SplitRepo(fullName)
	if err != nil {
		return nil, err
	}

	raw, err := f.api.ListPullRequests(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	log.Info("fetched pull requests", "repo", fullName, "count", len(raw))

	if r.Inverted() {
		log.Warn("since is after until, no pull requests can match", "range", r.String())
	}
	raw = filter.ByCreatedDate(raw, createdAt, r)
	if !r.IsZero() {
		log.Info("filtered by creation date", "range", r.String(), "remaining", len(raw))
	}
	if f.onListed != nil {
		f.onListed(len(raw))
	}

	prs := make([]model.PullRequest, len(raw))
	total := len(raw)
	var completed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, pr := range raw {
		g.Go(func() error {
			assembled, err := f.fetchDetails(gctx, owner, repo, pr)
			if err != nil {
				return err
			}
			prs[i] = assembled

			done := atomic.AddInt64(&completed, 1)
			if f.onProgress != nil {
				f.onProgress(int(done), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prs, nil
}

// fetchDetails runs the three leaf fetches for one pull request in parallel
// and assembles the result.
func (f *Fetcher) fetchDetails(ctx context.Context, owner, repo string, pr *gh.PullRequest) (model.PullRequest, error) {
	number := pr.GetNumber()

	var (
		reviews        []*gh.PullRequestReview
		reviewComments []*gh.PullRequestComment
		issueComments  []*gh.IssueComment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = f.api.ListReviews(gctx, owner, repo, number)
		return err
	})
	g.Go(func() error {
		var err error
		reviewComments, err = f.api.ListReviewComments(gctx, owner, repo, number)
		return err
	})
	g.Go(func() error {
		var err error
		issueComments, err = f.api.ListIssueComments(gctx, owner, repo, number)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.PullRequest{}, err
	}

	log.Trace("fetched pull request details",
		"number", number,
		"reviews", len(reviews),
		"reviewComments", len(reviewComments),
		"comments", len(issueComments))

	return assemble(pr, reviews, reviewComments, issueComments), nil
}

func createdAt(pr *gh.PullRequest) time.Time {
	return pr.GetCreatedAt().Time
}
