package core

import (
	"context"
	"time"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/internal/outwriter"
	"github.com/codetrail/codetrail/schema"
)

// BuildCookedTable collects commits from every configured repository and
// filters them with the configured spec. Expected emptiness at either stage
// is logged, never returned as an error.
func BuildCookedTable(ctx context.Context, cfg *contract.Config, source contract.RepoSource, logger contract.Logger) *schema.CommitTable {
	logger.Infof("Collecting commits since %s (%d days back)",
		time.Now().AddDate(0, 0, -cfg.Days).Format("2006-01-02"), cfg.Days)

	result := Collect(ctx, cfg, source, logger)
	if len(result.Failures) > 0 {
		logger.Warnf("%d of %d repositories could not be read", len(result.Failures), result.Attempted)
	}
	if result.Table.IsEmpty() {
		logger.Warnf("No commits collected in the lookback window")
		return result.Table
	}

	logMode(cfg.Spec, logger)
	cooked := Cook(result.Table, cfg.Spec)
	logger.Infof("Processing complete, found %d matching commits", cooked.TotalCommits())
	if cooked.IsEmpty() {
		logger.Warnf("No commits survived filtering")
	}
	return cooked
}

// Execute runs the full pipeline: collect, filter, print the commit table,
// then optionally hotspot ranking and the patch report. Only report I/O
// failures propagate as errors.
func Execute(ctx context.Context, cfg *contract.Config, source contract.RepoSource, ow *outwriter.OutWriter, logger contract.Logger) error {
	cooked := BuildCookedTable(ctx, cfg, source, logger)

	if err := ow.WriteCommits(cooked, cfg); err != nil {
		return err
	}

	if cfg.Hotspot {
		rows := Hotspot(cooked)
		if len(rows) == 0 {
			logger.Warnf("No qualifying files in hotspot analysis")
		} else if err := ow.WriteHotspots(rows, cfg); err != nil {
			return err
		}
	} else {
		logger.Infof("Hotspot analysis disabled. Use --hotspot to enable.")
	}

	if cfg.Report {
		path, err := GenerateReport(cooked, cfg.Spec.Keywords, cfg.ReportDir, time.Now())
		if err != nil {
			return err
		}
		if path == "" {
			logger.Warnf("No processed commits available for report generation")
		} else {
			logger.Infof("Git patch/diff report generated: %s", path)
		}
	}

	return nil
}

// logMode spells out the active search mode and criteria, mirroring what the
// filter engine will do so surprising results can be diagnosed from the log.
func logMode(spec schema.FilterSpec, logger contract.Logger) {
	if spec.Mode == schema.IntersectionMode {
		logger.Infof("[Search Mode] Intersection - commit must match all specified conditions")
	} else {
		logger.Infof("[Search Mode] Union - commit included if it matches any condition")
	}
	logger.Debugf("  - Email conditions: %s", orNone(spec.Emails))
	logger.Debugf("  - User conditions: %s", orNone(spec.Usernames))
	logger.Debugf("  - Keyword conditions: %s", orNone(spec.Keywords))
}

// orNone joins criteria for log output.
func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
