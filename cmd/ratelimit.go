package cmd

import (
	"fmt"
	"io"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
	"github.com/spiffcs/prreport/config"
	"github.com/spiffcs/prreport/internal/ghclient"
)

// NewCmdRateLimit creates the ratelimit command.
func NewCmdRateLimit(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratelimit",
		Short: "Check GitHub API rate limit status",
		Long:  `Display current GitHub API rate limit status including remaining quota and reset time.`,
	}
	cmd.AddCommand(NewCmdRateLimitStatus(opts))
	return cmd
}

// NewCmdRateLimitStatus creates the ratelimit status subcommand.
func NewCmdRateLimitStatus(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current rate limit status",
		Long: `Display the current GitHub API rate limit status for the core API.

A full report costs one request per page of pull requests plus three
requests per pull request.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRateLimitStatus(cmd, opts)
		},
	}
}

func runRateLimitStatus(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token := opts.Token
	if token == "" {
		token = cfg.GetGitHubToken()
	}

	clientOpts := []ghclient.ClientOption{}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, ghclient.WithHTTPClient(opts.HTTPClient))
	}
	if cfg.APIURL != "" {
		clientOpts = append(clientOpts, ghclient.WithBaseURL(cfg.APIURL))
	}

	ctx := contextOrBackground(cmd.Context())
	client, err := ghclient.NewClient(ctx, token, clientOpts...)
	if err != nil {
		return err
	}

	limits, err := client.RateLimits(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	now := opts.Now()
	fmt.Fprintln(out, "GitHub API Rate Limits:")
	fmt.Fprintln(out)
	printRate(out, "Core API:  ", limits.Core, now)
	printRate(out, "Search API:", limits.Search, now)
	printRate(out, "GraphQL:   ", limits.GraphQL, now)

	return nil
}

func printRate(out io.Writer, label string, rate *gh.Rate, now time.Time) {
	if rate == nil {
		return
	}
	resetIn := rate.Reset.Time.Sub(now).Round(time.Second)
	if resetIn < 0 {
		resetIn = 0
	}
	fmt.Fprintf(out, "%s %d/%d remaining (resets in %s)\n", label, rate.Remaining, rate.Limit, resetIn)
}
