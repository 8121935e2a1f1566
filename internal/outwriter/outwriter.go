// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCommits prints the cooked commit table using the configured output format.
func (ow *OutWriter) WriteCommits(cooked *schema.CommitTable, cfg *contract.Config) error {
	return PrintCommitResults(cooked, cfg)
}

// WriteHotspots prints the grouped hotspot rows using the configured output format.
func (ow *OutWriter) WriteHotspots(rows []schema.HotspotRow, cfg *contract.Config) error {
	return PrintHotspotResults(rows, cfg)
}

// GetMaxTablePathWidth calculates the maximum width for file paths and commit
// summaries in table output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns plus borders and padding
	available := termWidth - 45
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
