package model

import (
	"testing"
	"time"
)

func TestPullRequestIsClosed(t *testing.T) {
	closed := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		pr   PullRequest
		want bool
	}{
		{"no closure timestamp", PullRequest{State: PRStateOpen}, false},
		{"closure timestamp set", PullRequest{State: PRStateClosed, ClosedAt: &closed}, true},
		// State disagreeing with ClosedAt: ClosedAt wins
		{"closed state without timestamp", PullRequest{State: PRStateClosed}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pr.IsClosed(); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPullRequestCounts(t *testing.T) {
	pr := PullRequest{
		Reviews: []Review{
			{Reviewer: "alice", Comments: []Comment{{ID: 1}, {ID: 2}}},
			{Reviewer: "bob"},
			{Reviewer: "alice", Comments: []Comment{{ID: 3}}},
		},
		Comments: []Comment{{ID: 10}},
	}

	if got := pr.ReviewCommentCount(); got != 3 {
		t.Errorf("ReviewCommentCount() = %d, want 3", got)
	}

	reviewers := pr.Reviewers()
	want := []string{"alice", "bob", "alice"}
	if len(reviewers) != len(want) {
		t.Fatalf("Reviewers() = %v, want %v", reviewers, want)
	}
	for i := range want {
		if reviewers[i] != want[i] {
			t.Errorf("Reviewers()[%d] = %q, want %q", i, reviewers[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	prs := []PullRequest{
		{
			Reviews:  []Review{{Comments: []Comment{{ID: 1}}}},
			Comments: []Comment{{ID: 2}, {ID: 3}},
		},
		{
			Reviews: []Review{{}, {Comments: []Comment{{ID: 4}, {ID: 5}}}},
		},
		{},
	}

	got := Summarize(prs)
	want := ReportSummary{TotalPRs: 3, TotalReviews: 3, TotalComments: 5}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}

	if empty := Summarize(nil); empty != (ReportSummary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", empty)
	}
}
