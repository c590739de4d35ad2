package cmd

import (
	"fmt"
	"strconv"

	"github.com/spiffcs/prreport/internal/tui"
)

// autoBoolFlag is a boolean flag with a third "auto" state, stored as nil.
// Bare --tui means true.
type autoBoolFlag struct {
	target **bool
}

func newTUIFlag(opts *Options) *autoBoolFlag {
	return &autoBoolFlag{target: &opts.TUI}
}

func (f *autoBoolFlag) String() string {
	if *f.target == nil {
		return "auto"
	}
	return strconv.FormatBool(**f.target)
}

func (f *autoBoolFlag) Set(s string) error {
	if s == "auto" {
		*f.target = nil
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid value %q: use true, false or auto", s)
	}
	*f.target = &v
	return nil
}

func (f *autoBoolFlag) Type() string { return "bool" }

func (f *autoBoolFlag) IsBoolFlag() bool { return true }

// shouldUseTUI decides whether the progress display runs. Verbose logging
// wins over --tui so log lines stay readable; auto follows the report output.
func shouldUseTUI(opts *Options) bool {
	if opts.Verbosity > 0 {
		return false
	}
	if opts.TUI != nil {
		return *opts.TUI
	}
	return tui.ShouldUseTUI(opts.Stdout)
}
