package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/codetrail/codetrail/schema"
)

// Markers injected into the git log pretty format so the parser can tell
// commit headers, message bodies and patch text apart in a single pass.
const (
	commitStartMarker = "--CODETRAIL-COMMIT--"
	messageEndMarker  = "--CODETRAIL-MSG-END--"
)

// commitDateFormat is the strftime layout passed to git for display dates.
const commitDateFormat = "%Y-%m-%d %H:%M:%S"

// LocalGitClient implements the RepoSource interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ RepoSource = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetAllCommits implements the RepoSource interface. It runs a single
// repository-wide git log with patches and parses headers, messages, changed
// files and diff text out of the delimited output.
func (c *LocalGitClient) GetAllCommits(ctx context.Context, repoPath string, daysBack int) (*schema.CommitSet, error) {
	since := time.Now().AddDate(0, 0, -daysBack)
	args := []string{
		"log",
		"--patch",
		"--since=" + since.Format(time.RFC3339),
		"--date=format:" + commitDateFormat,
		"--pretty=format:" + commitStartMarker + "%n%H|%an|%ae|%ad%n%B" + messageEndMarker,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}

	remoteURL := c.ResolveRemoteURL(ctx, repoPath)
	return parseCommitLog(out, remoteURL), nil
}

// ResolveRemoteURL implements the RepoSource interface. It derives an https
// base URL from the origin remote, or returns an empty string when the
// repository has no usable remote.
func (c *LocalGitClient) ResolveRemoteURL(ctx context.Context, repoPath string) string {
	out, err := c.Run(ctx, repoPath, "config", "--get", "remote.origin.url")
	if err != nil {
		return ""
	}
	return NormalizeRemoteURL(strings.TrimSpace(string(out)))
}

// NormalizeRemoteURL converts common git remote forms (ssh, scp-like) into a
// browsable https base URL without the trailing .git suffix.
func NormalizeRemoteURL(remote string) string {
	if remote == "" {
		return ""
	}
	remote = strings.TrimSuffix(remote, ".git")

	switch {
	case strings.HasPrefix(remote, "http://"), strings.HasPrefix(remote, "https://"):
		return remote
	case strings.HasPrefix(remote, "ssh://"):
		rest := strings.TrimPrefix(remote, "ssh://")
		rest = strings.TrimPrefix(rest, "git@")
		return "https://" + rest
	case strings.HasPrefix(remote, "git@"):
		// scp-like syntax: git@host:owner/repo
		rest := strings.TrimPrefix(remote, "git@")
		if idx := strings.Index(rest, ":"); idx >= 0 {
			rest = rest[:idx] + "/" + rest[idx+1:]
		}
		return "https://" + rest
	default:
		return ""
	}
}

// parseState tracks the section of git log output being consumed.
type parseState int

const (
	stateHeader parseState = iota
	stateMessage
	stateDiff
)

// parseCommitLog walks the delimited git log output line by line and emits an
// ordered commit set. Git emits commits newest first; that order is preserved.
func parseCommitLog(out []byte, remoteURL string) *schema.CommitSet {
	set := schema.NewCommitSet()
	lines := strings.Split(string(out), "\n")

	var (
		state    = stateDiff // Nothing buffered until the first marker
		current  schema.CommitRecord
		msgLines []string
		diffs    []string
		files    []string
		seenFile map[string]bool
		active   bool
	)

	flush := func() {
		if !active {
			return
		}
		current.Message = strings.TrimRight(strings.Join(msgLines, "\n"), "\n")
		current.Summary = schema.FirstLine(current.Message)
		current.DiffText = strings.Join(diffs, "\n")
		current.ChangedFiles = files
		if remoteURL != "" {
			current.URL = remoteURL + "/commit/" + current.Hash
		}
		set.Add(current)
		active = false
	}

	for _, line := range lines {
		if line == commitStartMarker {
			flush()
			current = schema.CommitRecord{}
			msgLines = nil
			diffs = nil
			files = nil
			seenFile = make(map[string]bool)
			state = stateHeader
			active = true
			continue
		}

		switch state {
		case stateHeader:
			parts := strings.SplitN(line, "|", 4)
			if len(parts) == 4 {
				current.Hash = parts[0]
				current.AuthorName = parts[1]
				current.AuthorEmail = parts[2]
				current.Date = parts[3]
			}
			state = stateMessage
		case stateMessage:
			if line == messageEndMarker {
				state = stateDiff
				continue
			}
			if rest, ok := strings.CutSuffix(line, messageEndMarker); ok {
				msgLines = append(msgLines, rest)
				state = stateDiff
				continue
			}
			msgLines = append(msgLines, line)
		case stateDiff:
			if !active {
				continue
			}
			if path, ok := parseDiffHeaderPath(line); ok && !seenFile[path] {
				seenFile[path] = true
				files = append(files, path)
			}
			diffs = append(diffs, line)
		}
	}
	flush()

	return set
}

// parseDiffHeaderPath extracts the post-image path from a "diff --git" header
// line. Best effort: quoted exotic paths are left as git printed them.
func parseDiffHeaderPath(line string) (string, bool) {
	if !strings.HasPrefix(line, "diff --git ") {
		return "", false
	}
	idx := strings.LastIndex(line, " b/")
	if idx < 0 {
		return "", false
	}
	path := line[idx+len(" b/"):]
	if path == "" {
		return "", false
	}
	return path, true
}
