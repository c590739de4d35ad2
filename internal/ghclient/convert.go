package ghclient

import (
	gh "github.com/google/go-github/v57/github"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
)

// assemble builds a model.PullRequest from the raw API objects.
//
// Review comments are matched to reviews by pull_request_review_id. Comments
// whose review is not among the fetched reviews are dropped; they are not
// promoted to top-level comments.
func assemble(pr *gh.PullRequest, reviews []*gh.PullRequestReview, reviewComments []*gh.PullRequestComment, issueComments []*gh.IssueComment) model.PullRequest {
	byReview := make(map[int64][]model.Comment, len(reviews))
	known := make(map[int64]bool, len(reviews))
	for _, r := range reviews {
		known[r.GetID()] = true
	}

	dropped := 0
	for _, c := range reviewComments {
		id := c.GetPullRequestReviewID()
		if !known[id] {
			dropped++
			continue
		}
		byReview[id] = append(byReview[id], model.Comment{
			ID:        c.GetID(),
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: c.GetCreatedAt().Time,
		})
	}
	if dropped > 0 {
		log.Debug("dropped review comments without a matching review", "number", pr.GetNumber(), "count", dropped)
	}

	out := model.PullRequest{
		ID:        pr.GetID(),
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		State:     model.PRState(pr.GetState()),
		URL:       pr.GetHTMLURL(),
		CreatedAt: pr.GetCreatedAt().Time,
		Reviews:   make([]model.Review, 0, len(reviews)),
		Comments:  make([]model.Comment, 0, len(issueComments)),
	}
	if pr.ClosedAt != nil {
		closedAt := pr.GetClosedAt().Time
		out.ClosedAt = &closedAt
	}

	for _, r := range reviews {
		comments := byReview[r.GetID()]
		if comments == nil {
			comments = []model.Comment{}
		}
		out.Reviews = append(out.Reviews, model.Review{
			ID:          r.GetID(),
			Reviewer:    r.GetUser().GetLogin(),
			State:       r.GetState(),
			Comments:    comments,
			SubmittedAt: r.GetSubmittedAt().Time,
		})
	}

	for _, c := range issueComments {
		out.Comments = append(out.Comments, model.Comment{
			ID:        c.GetID(),
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: c.GetCreatedAt().Time,
		})
	}

	return out
}
