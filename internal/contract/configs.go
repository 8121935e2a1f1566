package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/codetrail/codetrail/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 30
	MaxLookbackDays     = 3650
)

// ErrNoRepositories indicates that no usable git repository could be resolved
// from the configured path. Callers should report it and halt before any
// collection starts.
var ErrNoRepositories = errors.New("no valid git repositories found")

// Config holds the runtime configuration for one pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPaths []string // Resolved git repository paths
	Days      int      // Lookback window in days
	Spec      schema.FilterSpec
	Hotspot   bool   // Run hotspot analysis after filtering
	Report    bool   // Write the patch/diff report file
	ReportDir string // Directory for the report file (default: cwd)
	Recursive bool

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Debug      bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	PathStr string

	Days       int      `mapstructure:"days"`
	Emails     []string `mapstructure:"email"`
	Users      []string `mapstructure:"user"`
	Keywords   []string `mapstructure:"keyword"`
	Mode       string   `mapstructure:"mode"`
	Hotspot    bool     `mapstructure:"hotspot"`
	Report     bool     `mapstructure:"report"`
	Recursive  bool     `mapstructure:"recursive"`
	ReportDir  string   `mapstructure:"report-dir"`
	Output     string   `mapstructure:"output"`
	OutputFile string   `mapstructure:"output-file"`
	Width      int      `mapstructure:"width"`
	Color      string   `mapstructure:"color"`
	Debug      bool     `mapstructure:"debug"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.RepoPaths = append([]string(nil), c.RepoPaths...)
	clone.Spec.Emails = append([]string(nil), c.Spec.Emails...)
	clone.Spec.Usernames = append([]string(nil), c.Spec.Usernames...)
	clone.Spec.Keywords = append([]string(nil), c.Spec.Keywords...)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Repository discovery happens here so
// that a run with no usable repositories fails before collection starts.
func (c *Config) ProcessAndValidate(input *ConfigRawInput) error {
	if err := validateSimpleInputs(c, input); err != nil {
		return err
	}
	return resolveRepositories(c, input)
}

// validateSimpleInputs checks scalar settings and copies them over.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Days <= 0 || input.Days > MaxLookbackDays {
		return fmt.Errorf("days must be between 1 and %d, got %d", MaxLookbackDays, input.Days)
	}
	cfg.Days = input.Days

	mode := schema.FilterMode(input.Mode)
	if _, ok := schema.ValidFilterModes[mode]; !ok {
		return fmt.Errorf("invalid filter mode: %q (expected union or intersection)", input.Mode)
	}
	cfg.Spec = schema.FilterSpec{
		Emails:    input.Emails,
		Usernames: input.Users,
		Keywords:  input.Keywords,
		Mode:      mode,
	}

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %q (expected text, csv or json)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.Hotspot = input.Hotspot
	cfg.Report = input.Report
	cfg.Recursive = input.Recursive
	cfg.Debug = input.Debug
	cfg.ReportDir = input.ReportDir
	if cfg.ReportDir == "" {
		cfg.ReportDir = "."
	}
	return nil
}

// resolveRepositories turns the configured path into a list of git repository
// paths. In recursive mode every subdirectory containing a .git entry counts;
// otherwise the path itself must be a repository.
func resolveRepositories(cfg *Config, input *ConfigRawInput) error {
	path := input.PathStr
	if path == "" {
		path = "."
	}

	if !cfg.Recursive {
		if !isGitRepo(path) {
			return fmt.Errorf("%w: %s is not a git repository (use --recursive to scan subdirectories)", ErrNoRepositories, path)
		}
		cfg.RepoPaths = []string{path}
		return nil
	}

	var repos []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Unreadable entries are skipped, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if isGitRepo(p) {
			repos = append(repos, p)
			return fs.SkipDir // Nested repositories under a repo are not scanned
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}
	if len(repos) == 0 {
		return fmt.Errorf("%w under %s", ErrNoRepositories, path)
	}
	cfg.RepoPaths = repos
	return nil
}

// isGitRepo reports whether the directory contains a .git entry.
func isGitRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// RepoName derives the table key for a repository path.
func RepoName(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return filepath.Base(repoPath)
	}
	return filepath.Base(abs)
}
