package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/format"
	"github.com/spiffcs/prreport/internal/model"
	"golang.org/x/term"
)

// Each column carries one space of padding on both sides and one border rune.
const (
	cellPadding     = 2
	borderPerColumn = 1
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableTitleCell   = tableCellStyle.Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	footerLabel = color.New(color.FgGreen, color.Bold)
)

// TableWriter prints the report as a console table followed by a total line.
type TableWriter struct {
	Out io.Writer
	Now time.Time
	// Width caps the rendered table width by truncating titles. Zero disables
	// truncation.
	Width int
}

// Write renders prs as a table.
func (w *TableWriter) Write(prs []model.PullRequest) error {
	rows := NewRows(prs, w.Now)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Strings()
	}
	if w.Width > 0 {
		limit := titleLimit(cells, w.Width)
		for _, c := range cells {
			c[titleColumn] = format.Truncate(c[titleColumn], limit)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == titleColumn:
				return tableTitleCell
			default:
				return tableCellStyle
			}
		}).
		Headers(Headers...).
		Rows(cells...)

	summary := model.Summarize(prs)
	if _, err := fmt.Fprintln(w.Out, tableTitleStyle.Render(constants.ReportTitle)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w.Out, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.Out, "%s %d\n%d reviews, %d comments\n",
		footerLabel.Sprint("Total PRs:"), summary.TotalPRs,
		summary.TotalReviews, summary.TotalComments)
	return err
}

// titleLimit returns how many columns the title may occupy so the table fits
// in width, never less than constants.MinTitleWidth.
func titleLimit(cells [][]string, width int) int {
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		widths[i] = format.DisplayWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if cw := format.DisplayWidth(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	used := borderPerColumn + len(Headers)*(cellPadding+borderPerColumn)
	for i, cw := range widths {
		if i != titleColumn {
			used += cw
		}
	}
	return max(width-used, constants.MinTitleWidth)
}

// TerminalWidth returns the width of f when it is a terminal, or zero.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
