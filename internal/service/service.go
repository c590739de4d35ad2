// Package service wires the pull request fetcher to a report writer.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spiffcs/prreport/internal/filter"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
	"github.com/spiffcs/prreport/internal/output"
)

// PullRequestFetcher retrieves the fully assembled pull requests of a
// repository whose creation date falls in r.
type PullRequestFetcher interface {
	Fetch(ctx context.Context, repo string, r filter.Range) ([]model.PullRequest, error)
}

// ReportService fetches pull requests and hands them to a single writer.
type ReportService struct {
	fetcher PullRequestFetcher
	writer  output.ReportWriter
}

// New creates a ReportService.
func New(fetcher PullRequestFetcher, writer output.ReportWriter) *ReportService {
	return &ReportService{
		fetcher: fetcher,
		writer:  writer,
	}
}

// Generate fetches the pull requests of repo created within r and writes the
// report. Nothing is written when the fetch fails.
func (s *ReportService) Generate(ctx context.Context, repo string, r filter.Range) error {
	start := time.Now()
	prs, err := s.fetcher.Fetch(ctx, repo, r)
	if err != nil {
		return err
	}
	log.Info("fetched pull requests", "repo", repo, "range", r.String(), "count", len(prs), "duration", time.Since(start).Round(time.Millisecond))

	if err := s.writer.Write(prs); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
