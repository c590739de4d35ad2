package model

// ReportSummary holds aggregate counts for a report.
type ReportSummary struct {
	TotalPRs      int `json:"totalPRs"`
	TotalReviews  int `json:"totalReviews"`
	TotalComments int `json:"totalComments"` // review comments plus PR comments
}

// Summarize computes the aggregate counts for a set of pull requests.
func Summarize(prs []PullRequest) ReportSummary {
	s := ReportSummary{TotalPRs: len(prs)}
	for _, pr := range prs {
		s.TotalReviews += len(pr.Reviews)
		s.TotalComments += pr.ReviewCommentCount() + len(pr.Comments)
	}
	return s
}
