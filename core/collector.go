// Package core has the pipeline stages: collection, filtering, hotspot
// ranking and report generation.
package core

import (
	"context"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/schema"
)

// RepoFailure records a repository whose source errored during collection.
type RepoFailure struct {
	Repo string
	Err  error
}

// CollectResult is the tagged outcome of a collection run. It lets callers
// distinguish "nothing configured" from "sources errored" without relying on
// logged side effects.
type CollectResult struct {
	Table     *schema.CommitTable
	Attempted int
	Failures  []RepoFailure
}

// Collect asks the repository source for every configured repository's
// commits within the lookback window and merges them into one ordered table.
// A source error on one repository is recorded and logged but does not block
// the others; with every repository failing the result is an empty table,
// not an error.
func Collect(ctx context.Context, cfg *contract.Config, source contract.RepoSource, logger contract.Logger) *CollectResult {
	result := &CollectResult{
		Table:     schema.NewCommitTable(),
		Attempted: len(cfg.RepoPaths),
	}

	for _, repoPath := range cfg.RepoPaths {
		name := tableKeyFor(result.Table, repoPath)
		set, err := source.GetAllCommits(ctx, repoPath, cfg.Days)
		if err != nil {
			logger.Errorf("Skipping repository %s: %v", name, err)
			result.Failures = append(result.Failures, RepoFailure{Repo: name, Err: err})
			continue
		}
		logger.Debugf("Collected %d commits from %s", set.Len(), name)
		result.Table.Put(name, set)
	}

	return result
}

// tableKeyFor picks a unique table key for a repository path. The directory
// base name is preferred; on collision the full path disambiguates.
func tableKeyFor(table *schema.CommitTable, repoPath string) string {
	name := contract.RepoName(repoPath)
	if _, taken := table.Get(name); taken {
		return repoPath
	}
	return name
}
