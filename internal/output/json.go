package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spiffcs/prreport/internal/model"
)

// JSONWriter writes the report rows and summary as a JSON document.
type JSONWriter struct {
	Out    io.Writer
	Now    time.Time
	Pretty bool
}

// JSONOutput wraps the rows with their summary for JSON output
type JSONOutput struct {
	PullRequests []Row               `json:"pullRequests"`
	Summary      model.ReportSummary `json:"summary"`
}

// Write encodes prs.
func (w *JSONWriter) Write(prs []model.PullRequest) error {
	out := JSONOutput{
		PullRequests: NewRows(prs, w.Now),
		Summary:      model.Summarize(prs),
	}

	encoder := json.NewEncoder(w.Out)
	if w.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
