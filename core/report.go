package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codetrail/codetrail/schema"
)

const (
	reportFilePrefix    = "git_patch_report_"
	reportFileSuffix    = ".diff"
	reportStampLayout   = "20060102_150405"
	reportHeaderLayout  = "2006-01-02 15:04:05"
	repoBannerSeparator = "==============================================================================="
	commitSeparator     = "-------------------------------------------------------------------------------"
)

// analysisPrompt is the fixed analytical context embedded once per commit in
// the report, parameterized by repository name and the active keyword list.
// The report is meant to be fed to an LLM agent or reviewed by a human.
const analysisPrompt = `As an expert in the %[1]s project, analyze the Git commit message and diff related to '%[2]s'. Answer these questions:
1. What are the main changes in this commit for %[1]s.
2. What problems might these changes solve for %[1]s.
3. Extract key info from the commit message and explain how it describes the code submission for %[1]s.
4. Analyze the relationship between the submitted code and its description. Point out which code implements the goals in the commit message for %[1]s.
5. Evaluate the impact of this commit on the project. Which files or functionalities are affected for %[1]s.
6. Explain the context and significance of this commit. Does it address issues or implement new features for %[1]s.
7. Don't explain abbreviations.

The output should not include the above rules and requirements; it should be naturally integrated.
`

// GenerateReport writes the patch/diff report for the cooked table into dir
// and returns the written file path. The file name carries the run timestamp
// so successive runs never overwrite each other. An empty cooked table
// produces no file and an empty path; callers log the warning.
func GenerateReport(cooked *schema.CommitTable, keywords []string, dir string, now time.Time) (string, error) {
	if cooked == nil || cooked.IsEmpty() {
		return "", nil
	}

	outputFile := filepath.Join(dir, reportFilePrefix+now.Format(reportStampLayout)+reportFileSuffix)
	f, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	b.WriteString("# Git Patch/Diff Report\n")
	fmt.Fprintf(&b, "# Generated: %s\n\n", now.Format(reportHeaderLayout))

	for _, repo := range cooked.Repos() {
		set, _ := cooked.Get(repo)
		if set.Len() == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\nRepository: %s\n%s\n\n", repoBannerSeparator, repo, repoBannerSeparator)

		for _, rec := range set.Records() {
			writeCommitBlock(&b, repo, rec, keywords)
		}
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}
	return outputFile, nil
}

// writeCommitBlock renders one commit's section of the report.
func writeCommitBlock(b *strings.Builder, repo string, rec schema.CommitRecord, keywords []string) {
	fmt.Fprintf(b, "%s\n", commitSeparator)
	fmt.Fprintf(b, "Commit: %s\n", rec.Hash)
	fmt.Fprintf(b, "Author: %s <%s>\n", rec.AuthorName, rec.AuthorEmail)
	fmt.Fprintf(b, "Date: %s\n\n", rec.Date)

	b.WriteString("Commit Message:\n")
	fmt.Fprintf(b, "%s\n\n", rec.Message)

	b.WriteString("Analysis Context:\n")
	fmt.Fprintf(b, analysisPrompt, repo, strings.Join(keywords, ", "))
	b.WriteString("\n")

	if len(rec.ChangedFiles) > 0 {
		b.WriteString("Changed Files:\n")
		for _, path := range rec.ChangedFiles {
			fmt.Fprintf(b, "  - %s\n", path)
		}
		b.WriteString("\n")
	}

	if rec.DiffText != "" {
		b.WriteString("Git Patch/Diff:\n")
		b.WriteString(rec.DiffText)
		b.WriteString("\n\n")
	} else {
		b.WriteString("No diff information available for this commit\n\n")
	}

	if rec.URL != "" {
		fmt.Fprintf(b, "Commit URL: %s\n\n", rec.URL)
	}
}
