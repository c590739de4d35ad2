// Package output renders pull request reports to the console, spreadsheets
// and machine-readable formats.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/model"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatExcel    Format = "excel"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatMarkdown, FormatExcel:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: table, json, markdown, excel)", s)
	}
}

// ReportWriter consumes a list of pull requests and renders them somewhere.
// Implementations must not modify prs.
type ReportWriter interface {
	Write(prs []model.PullRequest) error
}

// ReportWriterFunc adapts a plain function to a ReportWriter.
type ReportWriterFunc func(prs []model.PullRequest) error

// Write calls f(prs).
func (f ReportWriterFunc) Write(prs []model.PullRequest) error {
	return f(prs)
}

type writerOptions struct {
	out      io.Writer
	now      time.Time
	filename string
	width    int
}

// WriterOption configures a writer created by NewWriter.
type WriterOption func(*writerOptions)

// WithOutput sets where rendered text goes. Defaults to os.Stdout.
func WithOutput(w io.Writer) WriterOption {
	return func(o *writerOptions) {
		o.out = w
	}
}

// WithNow fixes the reference time used for open pull requests.
func WithNow(now time.Time) WriterOption {
	return func(o *writerOptions) {
		o.now = now
	}
}

// WithFilename sets the spreadsheet path for the excel format.
func WithFilename(name string) WriterOption {
	return func(o *writerOptions) {
		if name != "" {
			o.filename = name
		}
	}
}

// WithWidth caps the console table width. Zero means no cap.
func WithWidth(width int) WriterOption {
	return func(o *writerOptions) {
		o.width = width
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(format Format, opts ...WriterOption) ReportWriter {
	o := writerOptions{
		out:      os.Stdout,
		filename: constants.DefaultFilename,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now.IsZero() {
		o.now = time.Now()
	}

	switch format {
	case FormatJSON:
		return &JSONWriter{Out: o.out, Now: o.now, Pretty: true}
	case FormatMarkdown:
		return &MarkdownWriter{Out: o.out, Now: o.now}
	case FormatExcel:
		return &ExcelWriter{Filename: o.filename, Now: o.now, Out: o.out}
	default:
		return &TableWriter{Out: o.out, Now: o.now, Width: o.width}
	}
}
