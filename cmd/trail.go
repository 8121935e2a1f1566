package cmd

import (
	"os"

	"github.com/codetrail/codetrail/core"
	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/internal/logging"
	"github.com/codetrail/codetrail/internal/outwriter"
	"github.com/spf13/cobra"
)

// trailCmd runs the full collect-filter-analyze pipeline.
var trailCmd = &cobra.Command{
	Use:   "trail [path]",
	Short: "Collect and filter recent commits, with optional hotspot ranking.",
	Long: `Collect recent commits from one or more Git repositories, filter them
by author email, author name, or keyword, and print the matches.

With --hotspot, changed files are ranked by how often they appear in the
filtered commits, grouped by repository and top-level directory, and colored
by activity tier. With --report, the full patch/diff content of every match
is written to a timestamped file suitable for downstream review.

Filter criteria combine according to --mode:
- union: a commit matches if any single criterion matches
- intersection: a commit matches only if all given criteria match

Examples:
  # Everything from the last 30 days in the current repository
  codetrail trail

  # One author's commits across all repositories under ~/src
  codetrail trail ~/src --recursive --email alice@example.com

  # Commits touching authentication, with hotspot ranking
  codetrail trail --keyword auth --hotspot

  # Tight search: one author AND one keyword, exported as CSV
  codetrail trail --mode intersection --user alice --keyword fix \
    --output csv --output-file matches.csv

  # Full patch report for offline analysis
  codetrail trail --keyword migration --report`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		logger := logging.New(os.Stderr, cfg.Debug)
		source := contract.NewLocalGitClient()
		ow := outwriter.NewOutWriter()
		if err := core.Execute(rootCtx, cfg, source, ow, logger); err != nil {
			contract.LogFatal("Cannot run trail analysis", err)
		}
	},
}
