package cmd

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spiffcs/prreport/internal/constants"
)

// Options holds the command-line options for the prreport CLI.
type Options struct {
	Token     string
	Excel     bool
	Filename  string
	Since     string
	Until     string
	Format    string
	Workers   int
	Verbosity int
	TUI       *bool // nil = auto-detect, true = force TUI, false = disable TUI

	// Runtime dependencies, replaced in tests
	HTTPClient *http.Client
	Now        func() time.Time
	Stdout     io.Writer
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Filename: constants.DefaultFilename,
		Workers:  constants.DefaultWorkers,
		Now:      time.Now,
		Stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithToken sets the GitHub token, taking precedence over GITHUB_TOKEN.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithFormat sets the console output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithSince sets the inclusive lower creation-date bound.
func WithSince(since string) Option {
	return func(o *Options) {
		o.Since = since
	}
}

// WithUntil sets the inclusive upper creation-date bound.
func WithUntil(until string) Option {
	return func(o *Options) {
		o.Until = until
	}
}

// WithWorkers sets the number of pull requests fetched concurrently.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTUI controls TUI mode (nil = auto-detect, true = force, false = disable).
func WithTUI(tui *bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}

// WithHTTPClient sets the base HTTP client used for GitHub requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = c
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithStdout sets where reports and command output are written.
func WithStdout(w io.Writer) Option {
	return func(o *Options) {
		o.Stdout = w
	}
}
