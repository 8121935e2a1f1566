package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codetrail/codetrail/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRepoDir creates a directory with a .git entry under parent.
func makeRepoDir(t *testing.T, parent, name string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	return dir
}

// validInput returns a raw input that passes validation against repoPath.
func validInput(repoPath string) *ConfigRawInput {
	return &ConfigRawInput{
		PathStr: repoPath,
		Days:    30,
		Mode:    "union",
		Output:  "text",
		Color:   "yes",
	}
}

// TestProcessAndValidate tests the happy path end to end.
func TestProcessAndValidate(t *testing.T) {
	repo := makeRepoDir(t, t.TempDir(), "app")
	input := validInput(repo)
	input.Emails = []string{"alice@example.com"}
	input.Keywords = []string{"auth"}
	input.Hotspot = true

	cfg := &Config{}
	require.NoError(t, cfg.ProcessAndValidate(input))

	assert.Equal(t, []string{repo}, cfg.RepoPaths)
	assert.Equal(t, 30, cfg.Days)
	assert.Equal(t, schema.UnionMode, cfg.Spec.Mode)
	assert.Equal(t, []string{"alice@example.com"}, cfg.Spec.Emails)
	assert.True(t, cfg.Hotspot)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, ".", cfg.ReportDir)
}

// TestProcessAndValidateRejections tests scalar validation failures.
func TestProcessAndValidateRejections(t *testing.T) {
	repo := makeRepoDir(t, t.TempDir(), "app")

	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		want   string
	}{
		{"zero days", func(in *ConfigRawInput) { in.Days = 0 }, "days must be between"},
		{"negative days", func(in *ConfigRawInput) { in.Days = -5 }, "days must be between"},
		{"days beyond cap", func(in *ConfigRawInput) { in.Days = MaxLookbackDays + 1 }, "days must be between"},
		{"bad mode", func(in *ConfigRawInput) { in.Mode = "fuzzy" }, "invalid filter mode"},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output mode"},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }, "invalid color setting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(repo)
			tt.mutate(input)
			err := (&Config{}).ProcessAndValidate(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestResolveRepositoriesSingle tests non-recursive repository resolution.
func TestResolveRepositoriesSingle(t *testing.T) {
	parent := t.TempDir()

	t.Run("plain directory is rejected", func(t *testing.T) {
		input := validInput(parent)
		err := (&Config{}).ProcessAndValidate(input)
		assert.ErrorIs(t, err, ErrNoRepositories)
	})

	t.Run("git repository is accepted", func(t *testing.T) {
		repo := makeRepoDir(t, parent, "app")
		cfg := &Config{}
		require.NoError(t, cfg.ProcessAndValidate(validInput(repo)))
		assert.Equal(t, []string{repo}, cfg.RepoPaths)
	})
}

// TestResolveRepositoriesRecursive tests recursive repository discovery.
func TestResolveRepositoriesRecursive(t *testing.T) {
	root := t.TempDir()
	alpha := makeRepoDir(t, root, "alpha")
	makeRepoDir(t, filepath.Join(root, "group"), "beta")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0o755))
	// Nested repositories under an already-found repo are not scanned.
	makeRepoDir(t, alpha, "vendorled")

	input := validInput(root)
	input.Recursive = true
	cfg := &Config{}
	require.NoError(t, cfg.ProcessAndValidate(input))

	require.Len(t, cfg.RepoPaths, 2)
	assert.Contains(t, cfg.RepoPaths, alpha)
	assert.Contains(t, cfg.RepoPaths, filepath.Join(root, "group", "beta"))

	t.Run("no repositories anywhere", func(t *testing.T) {
		empty := t.TempDir()
		in := validInput(empty)
		in.Recursive = true
		err := (&Config{}).ProcessAndValidate(in)
		assert.ErrorIs(t, err, ErrNoRepositories)
	})
}

// TestConfigClone tests that clones share no slice storage.
func TestConfigClone(t *testing.T) {
	cfg := &Config{
		RepoPaths: []string{"/work/app"},
		Days:      30,
		Spec: schema.FilterSpec{
			Emails:    []string{"alice@example.com"},
			Usernames: []string{"Alice"},
			Keywords:  []string{"auth"},
			Mode:      schema.UnionMode,
		},
	}

	clone := cfg.Clone()
	clone.RepoPaths[0] = "/work/other"
	clone.Spec.Emails[0] = "mallory@evil.dev"
	clone.Days = 7

	assert.Equal(t, "/work/app", cfg.RepoPaths[0])
	assert.Equal(t, "alice@example.com", cfg.Spec.Emails[0])
	assert.Equal(t, 30, cfg.Days)
}

// TestRepoName tests table key derivation from repository paths.
func TestRepoName(t *testing.T) {
	assert.Equal(t, "app", RepoName("/work/app"))
	assert.Equal(t, "app", RepoName("work/app"))
}
