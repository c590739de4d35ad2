package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spiffcs/prreport/internal/format"
	"github.com/spiffcs/prreport/internal/model"
)

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &TableWriter{Out: &buf, Now: testNow}

	if err := w.Write(samplePRs()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := format.StripAnsi(buf.String())

	for _, want := range []string{
		"Pull Request Report",
		"PR Title",
		"# Review Comments",
		"Add retry support",
		"bob, carol",
		"1 week, 3 days",
		"Still open",
		"None",
		"Total PRs: 2",
		"2 reviews, 3 comments",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	if strings.Index(out, "Add retry support") > strings.Index(out, "Fix | pipe in docs") {
		t.Error("rows should follow input order")
	}
}

func TestTableWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &TableWriter{Out: &buf, Now: testNow}

	if err := w.Write(nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := format.StripAnsi(buf.String())
	if !strings.Contains(out, "PR Title") {
		t.Errorf("empty report should still print headers:\n%s", out)
	}
	if !strings.Contains(out, "Total PRs: 0") {
		t.Errorf("empty report should print a zero total:\n%s", out)
	}
}

func TestTableWriterTruncatesTitles(t *testing.T) {
	longTitle := strings.Repeat("very long title ", 20)
	prs := []model.PullRequest{{
		Number:    1,
		Title:     longTitle,
		Author:    "alice",
		State:     model.PRStateOpen,
		CreatedAt: testNow,
	}}

	var buf bytes.Buffer
	w := &TableWriter{Out: &buf, Now: testNow, Width: 160}
	if err := w.Write(prs); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := format.StripAnsi(buf.String())

	if strings.Contains(out, longTitle) {
		t.Error("title should have been truncated")
	}
	if !strings.Contains(out, "...") {
		t.Error("truncated title should end with ellipsis")
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "very long") && format.DisplayWidth(line) > 160 {
			t.Errorf("row width %d exceeds 160: %q", format.DisplayWidth(line), line)
		}
	}
}

func TestTitleLimit(t *testing.T) {
	cells := [][]string{NewRow(samplePRs()[0], testNow).Strings()}

	if got := titleLimit(cells, 10); got != 20 {
		t.Errorf("titleLimit() with tiny width = %d, want minimum 20", got)
	}

	wide := titleLimit(cells, 400)
	narrow := titleLimit(cells, 300)
	if wide-narrow != 100 {
		t.Errorf("titleLimit() should shrink with width: wide=%d narrow=%d", wide, narrow)
	}
}
