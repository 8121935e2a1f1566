package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeRemoteURL tests conversion of git remote forms to https.
func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"https passthrough", "https://github.com/acme/app", "https://github.com/acme/app"},
		{"https strips dot git", "https://github.com/acme/app.git", "https://github.com/acme/app"},
		{"http passthrough", "http://git.internal/acme/app.git", "http://git.internal/acme/app"},
		{"ssh scheme", "ssh://git@github.com/acme/app.git", "https://github.com/acme/app"},
		{"scp-like", "git@github.com:acme/app.git", "https://github.com/acme/app"},
		{"scp-like without dot git", "git@gitlab.com:group/sub/app", "https://gitlab.com/group/sub/app"},
		{"empty", "", ""},
		{"unrecognized", "file:///srv/git/app.git", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRemoteURL(tt.remote))
		})
	}
}

// sampleLog mimics the delimited output of the repository-wide git log run.
// The first commit has a body and a patch; the second carries the message end
// marker glued to its last line, which git produces for messages without a
// trailing newline.
var sampleLog = strings.Join([]string{
	"--CODETRAIL-COMMIT--",
	"abc123|Alice Smith|alice@example.com|2026-08-01 10:00:00",
	"Add login flow",
	"",
	"With token checks.",
	"--CODETRAIL-MSG-END--",
	"diff --git a/src/auth.go b/src/auth.go",
	"index 111..222 100644",
	"--- a/src/auth.go",
	"+++ b/src/auth.go",
	"+token",
	"diff --git a/src/auth.go b/src/auth.go",
	"+dup header for same file",
	"diff --git a/docs/readme.md b/docs/readme.md",
	"+docs",
	"--CODETRAIL-COMMIT--",
	"def456|Bob Jones|bob@corp.com|2026-08-02 11:00:00",
	"Fix typo--CODETRAIL-MSG-END--",
}, "\n")

// TestParseCommitLog tests the single-pass git log parser.
func TestParseCommitLog(t *testing.T) {
	set := parseCommitLog([]byte(sampleLog), "https://github.com/acme/app")
	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"abc123", "def456"}, set.Hashes())

	first, ok := set.Get("abc123")
	require.True(t, ok)

	t.Run("header fields", func(t *testing.T) {
		assert.Equal(t, "Alice Smith", first.AuthorName)
		assert.Equal(t, "alice@example.com", first.AuthorEmail)
		assert.Equal(t, "2026-08-01 10:00:00", first.Date)
	})

	t.Run("message and summary", func(t *testing.T) {
		assert.Equal(t, "Add login flow\n\nWith token checks.", first.Message)
		assert.Equal(t, "Add login flow", first.Summary)
	})

	t.Run("changed files are deduplicated in patch order", func(t *testing.T) {
		assert.Equal(t, []string{"src/auth.go", "docs/readme.md"}, first.ChangedFiles)
	})

	t.Run("diff text spans the whole patch", func(t *testing.T) {
		assert.Contains(t, first.DiffText, "+token")
		assert.Contains(t, first.DiffText, "+docs")
	})

	t.Run("commit url synthesized from remote", func(t *testing.T) {
		assert.Equal(t, "https://github.com/acme/app/commit/abc123", first.URL)
	})

	second, ok := set.Get("def456")
	require.True(t, ok)

	t.Run("glued message end marker", func(t *testing.T) {
		assert.Equal(t, "Fix typo", second.Message)
		assert.Equal(t, "Fix typo", second.Summary)
		assert.Empty(t, second.DiffText)
		assert.Empty(t, second.ChangedFiles)
	})
}

// TestParseCommitLogNoRemote tests that URLs stay empty without a remote.
func TestParseCommitLogNoRemote(t *testing.T) {
	set := parseCommitLog([]byte(sampleLog), "")
	rec, ok := set.Get("abc123")
	require.True(t, ok)
	assert.Empty(t, rec.URL)
}

// TestParseCommitLogEmpty tests degenerate log output.
func TestParseCommitLogEmpty(t *testing.T) {
	assert.Equal(t, 0, parseCommitLog(nil, "").Len())
	assert.Equal(t, 0, parseCommitLog([]byte("\n\n"), "").Len())
}

// TestParseDiffHeaderPath tests post-image path extraction.
func TestParseDiffHeaderPath(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{"plain header", "diff --git a/src/auth.go b/src/auth.go", "src/auth.go", true},
		{"root file", "diff --git a/Makefile b/Makefile", "Makefile", true},
		{"not a header", "+++ b/src/auth.go", "", false},
		{"malformed header", "diff --git nonsense", "", false},
		{"empty path", "diff --git a/x b/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := parseDiffHeaderPath(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, path)
		})
	}
}
