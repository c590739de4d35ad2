package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/urlutil"
	"golang.org/x/oauth2"
)

// ErrMissingToken is returned when no GitHub token is available.
var ErrMissingToken = errors.New("GitHub token not provided. Use --token or set the GITHUB_TOKEN environment variable")

// ErrInvalidRepo is returned when a repository is not in owner/name form.
var ErrInvalidRepo = errors.New("repository must be in the form owner/repo")

// loggingTransport wraps an http.RoundTripper and logs every API call.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Debug("api request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return resp, err
	}
	log.Debug("api request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond))
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		log.Trace("rate limit", "remaining", remaining, "limit", resp.Header.Get("X-RateLimit-Limit"))
	}
	return resp, nil
}

// Client wraps the GitHub REST API client
type Client struct {
	client *gh.Client
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	baseURL    string
}

// WithHTTPClient sets the base HTTP client whose transport carries the
// authenticated requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithBaseURL points the client at a different API root, e.g. GitHub Enterprise.
func WithBaseURL(u string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = u
	}
}

// NewClient creates a new GitHub client using a personal access token.
func NewClient(ctx context.Context, token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	// oauth2 picks up a caller-supplied base client from the context
	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Transport = &loggingTransport{
		base: tc.Transport,
	}

	client := gh.NewClient(tc)

	if o.baseURL != "" {
		u := o.baseURL
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		parsed, err := url.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("parse API base URL %q: %w", o.baseURL, err)
		}
		client.BaseURL = parsed
	}

	return &Client{client: client}, nil
}

// RateLimits fetches the current GitHub API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*gh.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}
	return limits, nil
}

// ListPullRequests fetches every pull request in the repository, in any state.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string) ([]*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: constants.PerPage},
	}

	var all []*gh.PullRequest
	for {
		prs, resp, err := c.client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
		}
		all = append(all, prs...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListReviews fetches the reviews submitted on a pull request.
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) ([]*gh.PullRequestReview, error) {
	opts := &gh.ListOptions{PerPage: constants.PerPage}

	var all []*gh.PullRequestReview
	for {
		reviews, resp, err := c.client.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for #%d: %w", number, err)
		}
		all = append(all, reviews...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListReviewComments fetches the inline review comments on a pull request.
// GitHub returns these per pull request, not per review.
func (c *Client) ListReviewComments(ctx context.Context, owner, repo string, number int) ([]*gh.PullRequestComment, error) {
	opts := &gh.PullRequestListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: constants.PerPage},
	}

	var all []*gh.PullRequestComment
	for {
		comments, resp, err := c.client.PullRequests.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list review comments for #%d: %w", number, err)
		}
		all = append(all, comments...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListIssueComments fetches the conversation comments on a pull request.
func (c *Client) ListIssueComments(ctx context.Context, owner, repo string, number int) ([]*gh.IssueComment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: constants.PerPage},
	}

	var all []*gh.IssueComment
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for #%d: %w", number, err)
		}
		all = append(all, comments...)
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// SplitRepo splits "owner/repo", or a GitHub repository URL, into its parts.
func SplitRepo(fullName string) (owner, repo string, err error) {
	fullName = strings.TrimSpace(fullName)
	if o, r, ok := urlutil.RepoFromURL(fullName); ok {
		return o, r, nil
	}
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepo, fullName)
	}
	return parts[0], parts[1], nil
}
