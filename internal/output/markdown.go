package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/format"
	"github.com/spiffcs/prreport/internal/model"
)

// MarkdownWriter writes the report as a GitHub-flavoured Markdown table.
type MarkdownWriter struct {
	Out io.Writer
	Now time.Time
}

// Write renders prs as Markdown.
func (w *MarkdownWriter) Write(prs []model.PullRequest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", constants.ReportTitle)
	fmt.Fprintf(&b, "*Generated: %s*\n\n", w.Now.UTC().Format("2006-01-02 15:04"))

	b.WriteString("| " + strings.Join(Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(Headers)) + "\n")

	for _, r := range NewRows(prs, w.Now) {
		cells := r.Strings()
		title := format.EscapeMarkdownCell(cells[titleColumn])
		if r.URL != "" {
			title = fmt.Sprintf("[%s](%s)", title, r.URL)
		}
		cells[titleColumn] = title
		for i := 1; i < len(cells); i++ {
			cells[i] = format.EscapeMarkdownCell(cells[i])
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	s := model.Summarize(prs)
	fmt.Fprintf(&b, "\n**Total PRs:** %d (%d reviews, %d comments)\n", s.TotalPRs, s.TotalReviews, s.TotalComments)

	_, err := io.WriteString(w.Out, b.String())
	return err
}
