package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spiffcs/prreport/config"
	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/filter"
	"github.com/spiffcs/prreport/internal/ghclient"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
	"github.com/spiffcs/prreport/internal/output"
	"github.com/spiffcs/prreport/internal/service"
	"github.com/spiffcs/prreport/internal/tui"
)

// reportRuntime bundles TUI-related state that's threaded through a report run.
type reportRuntime struct {
	useTUI  bool
	events  chan tui.Event
	tuiDone chan error
}

// startTUI runs the progress display on out if TUI mode is enabled. Ctrl+C
// in the display calls cancel.
func (rt *reportRuntime) startTUI(repo string, out io.Writer, cancel func()) {
	if !rt.useTUI {
		return
	}
	events := make(chan tui.Event, 100)
	rt.events = events
	rt.tuiDone = make(chan error, 1)
	go func() {
		rt.tuiDone <- tui.Run(events, out, tui.WithRepo(repo), tui.WithCancel(cancel))
	}()
}

// close closes the event channel and waits for the TUI to finish.
// Safe to call more than once.
func (rt *reportRuntime) close() {
	if rt.events == nil {
		return
	}
	close(rt.events)
	rt.events = nil
	if err := <-rt.tuiDone; err != nil {
		log.Debug("progress display failed", "error", err)
	}
}

// send forwards e to the TUI if it is running.
func (rt *reportRuntime) send(e tui.Event) {
	tui.Send(rt.events, e)
}

// reportSettings is the result of merging flags, environment and config.
type reportSettings struct {
	token    string
	repo     string
	rng      filter.Range
	format   output.Format
	filename string
	workers  int
	apiURL   string
	now      time.Time
}

func runReport(cmd *cobra.Command, args []string, opts *Options) error {
	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt)
	defer stop()

	settings, err := resolveSettings(cmd, args[0], opts)
	if err != nil {
		return err
	}

	rt := &reportRuntime{useTUI: shouldUseTUI(opts)}

	// Suppress logs during TUI to avoid interleaving with the display
	if rt.useTUI {
		log.Initialize(opts.Verbosity, io.Discard)
	} else {
		log.Initialize(opts.Verbosity, os.Stderr)
	}

	clientOpts := []ghclient.ClientOption{}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, ghclient.WithHTTPClient(opts.HTTPClient))
	}
	if settings.apiURL != "" {
		clientOpts = append(clientOpts, ghclient.WithBaseURL(settings.apiURL))
	}
	client, err := ghclient.NewClient(ctx, settings.token, clientOpts...)
	if err != nil {
		return err
	}

	log.Info("generating report", "repo", settings.repo, "range", settings.rng.String(), "format", settings.format, "workers", settings.workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt.startTUI(settings.repo, opts.Stdout, cancel)
	defer rt.close()

	failed := tui.TaskList
	fetcher := ghclient.NewFetcher(client,
		ghclient.WithWorkers(settings.workers),
		ghclient.WithListed(func(total int) {
			failed = tui.TaskFetch
			rt.send(tui.Event{Task: tui.TaskList, Status: tui.StatusComplete, Total: total})
			rt.send(tui.Event{Task: tui.TaskFetch, Status: tui.StatusRunning, Total: total})
		}),
		ghclient.WithProgress(progressReporter(rt)),
	)

	rt.send(tui.Event{Task: tui.TaskList, Status: tui.StatusRunning})

	writer := output.NewWriter(settings.format,
		output.WithOutput(opts.Stdout),
		output.WithNow(settings.now),
		output.WithFilename(settings.filename),
		output.WithWidth(tableWidth(opts.Stdout)),
	)

	// The TUI shares stdout with the report, so it must finish first.
	report := output.ReportWriterFunc(func(prs []model.PullRequest) error {
		if !rt.useTUI {
			log.ProgressDone()
		}
		rt.send(tui.Event{Task: tui.TaskFetch, Status: tui.StatusComplete, Completed: len(prs), Total: len(prs)})
		rt.send(tui.Event{Task: tui.TaskWrite, Status: tui.StatusComplete, Target: settings.target()})
		rt.close()
		return writer.Write(prs)
	})

	if err := service.New(fetcher, report).Generate(ctx, settings.repo, settings.rng); err != nil {
		rt.send(tui.Event{Task: failed, Status: tui.StatusError, Err: err})
		rt.close()
		return err
	}
	return nil
}

// target describes where the report goes, for the progress display.
func (s *reportSettings) target() string {
	if s.format == output.FormatExcel {
		return s.filename
	}
	return string(s.format)
}

// resolveSettings validates the invocation before anything touches the network.
// Flags win over config files, which win over defaults.
func resolveSettings(cmd *cobra.Command, repo string, opts *Options) (*reportSettings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token := opts.Token
	if token == "" {
		token = cfg.GetGitHubToken()
	}
	if token == "" {
		return nil, ghclient.ErrMissingToken
	}

	if _, _, err := ghclient.SplitRepo(repo); err != nil {
		return nil, err
	}

	now := opts.Now()
	rng, err := filter.NewRange(opts.Since, opts.Until, now)
	if err != nil {
		return nil, err
	}

	format := output.FormatExcel
	if !opts.Excel {
		name := opts.Format
		if name == "" {
			name = cfg.DefaultFormat
		}
		if format, err = output.ParseFormat(name); err != nil {
			return nil, err
		}
	}

	filename := opts.Filename
	if !cmd.Flags().Changed("filename") {
		filename = cfg.GetFilename()
	}

	workers := opts.Workers
	if !cmd.Flags().Changed("workers") {
		workers = cfg.GetWorkers()
	}
	if workers < 1 {
		return nil, fmt.Errorf("--workers must be at least 1, got %d", workers)
	}

	return &reportSettings{
		token:    token,
		repo:     repo,
		rng:      rng,
		format:   format,
		filename: filename,
		workers:  workers,
		apiURL:   cfg.APIURL,
		now:      now,
	}, nil
}

// progressReporter returns a fetch progress callback that feeds the TUI, or
// the progress log line when the TUI is off. Updates are throttled.
func progressReporter(rt *reportRuntime) ghclient.ProgressFunc {
	var lastLogPercent int64 = -1
	var lastTUIUpdate int64 // Unix nanoseconds
	tuiUpdateInterval := int64(constants.TUIUpdateInterval)

	return func(completed, total int) {
		if total == 0 {
			return
		}
		if rt.useTUI {
			now := time.Now().UnixNano()
			lastUpdate := atomic.LoadInt64(&lastTUIUpdate)
			if now-lastUpdate >= tuiUpdateInterval || completed == total {
				if atomic.CompareAndSwapInt64(&lastTUIUpdate, lastUpdate, now) {
					rt.send(tui.Event{Task: tui.TaskFetch, Status: tui.StatusRunning, Completed: completed, Total: total})
				}
			}
			return
		}

		percent := int64(completed*100) / int64(total)
		if percent != atomic.LoadInt64(&lastLogPercent) && percent%constants.LogThrottlePercent == 0 {
			atomic.StoreInt64(&lastLogPercent, percent)
			log.Progress("Fetching reviews and comments: %d/%d (%d%%)...", completed, total, percent)
		}
	}
}

// tableWidth returns the terminal width when w is a terminal, or zero.
func tableWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	return output.TerminalWidth(f)
}

// contextOrBackground guards against commands executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
