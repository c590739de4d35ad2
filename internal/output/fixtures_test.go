package output

import (
	"time"

	"github.com/spiffcs/prreport/internal/model"
)

var testNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

// samplePRs returns one closed PR with two reviews and one open PR without
// reviews.
func samplePRs() []model.PullRequest {
	return []model.PullRequest{
		{
			ID:        1,
			Number:    7,
			Title:     "Add retry support",
			Author:    "alice",
			State:     model.PRStateClosed,
			URL:       "https://github.com/acme/widgets/pull/7",
			CreatedAt: ts("2024-05-01T09:00:00Z"),
			ClosedAt:  tsPtr("2024-05-11T12:00:00Z"),
			Reviews: []model.Review{
				{ID: 10, Reviewer: "bob", State: "COMMENTED", Comments: []model.Comment{{ID: 100, Author: "bob"}, {ID: 101, Author: "bob"}}},
				{ID: 11, Reviewer: "carol", State: "APPROVED", Comments: []model.Comment{}},
			},
			Comments: []model.Comment{{ID: 200, Author: "dave"}},
		},
		{
			ID:        2,
			Number:    8,
			Title:     "Fix | pipe in docs",
			Author:    "erin",
			State:     model.PRStateOpen,
			CreatedAt: ts("2024-06-01T10:00:00Z"),
		},
	}
}
