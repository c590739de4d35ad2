package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New(opts ...Option) *cobra.Command {
	o := NewOptions(opts...)

	rootCmd := &cobra.Command{
		Use:   "prreport <owner/repo>",
		Short: "GitHub pull request activity report",
		Long: `Fetches every pull request of a repository together with its reviews,
review comments and conversation comments, and prints a report showing
how long each PR was open and how much review it received.

The GitHub token is read from --token or the GITHUB_TOKEN environment variable.`,
		Example: `  prreport acme/widgets
  prreport acme/widgets --since 2024-01-01 --until 2024-03-31
  prreport acme/widgets --since 30d -o markdown
  prreport acme/widgets --excel --filename q1.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, o)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addReportFlags(rootCmd, o)

	// Register subcommands
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit(o))

	return rootCmd
}

// addReportFlags adds the report flags to a command.
func addReportFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Token, "token", opts.Token, "GitHub token (default: $GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&opts.Excel, "excel", opts.Excel, "Save the report as an Excel workbook instead of printing it")
	cmd.Flags().StringVar(&opts.Filename, "filename", opts.Filename, "Workbook path used with --excel")
	cmd.Flags().StringVar(&opts.Since, "since", opts.Since, "Only PRs created on or after this date (YYYY-MM-DD, or relative like 2w, 30d, 6mo)")
	cmd.Flags().StringVar(&opts.Until, "until", opts.Until, "Only PRs created on or before this date (YYYY-MM-DD, or relative)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", opts.Format, "Output format (table, json, markdown)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", opts.Workers, "Number of pull requests fetched concurrently")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	// TUI flag with tri-state: nil = auto, true = force, false = disable
	cmd.Flags().Var(newTUIFlag(opts), "tui", "Enable/disable TUI progress (default: auto-detect)")
	cmd.Flags().Lookup("tui").NoOptDefVal = "true"
}
