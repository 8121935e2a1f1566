// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/codetrail/codetrail/schema"
)

// RepoSource defines the operations needed to extract commit history from one
// repository. This allows the collector and filter logic to be tested without
// a real git executable.
type RepoSource interface {
	// GetAllCommits returns the ordered set of commits for the repository at
	// repoPath, no older than daysBack days from invocation time. Order must
	// be deterministic within a single invocation.
	GetAllCommits(ctx context.Context, repoPath string, daysBack int) (*schema.CommitSet, error)

	// ResolveRemoteURL returns the https base URL of the repository's origin
	// remote, or an empty string when no remote viewer link can be derived.
	ResolveRemoteURL(ctx context.Context, repoPath string) string
}

// Logger accepts leveled text messages. Implementations must never fail in a
// way that aborts the pipeline; a lost log line is not an error.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
