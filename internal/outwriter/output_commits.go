package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/codetrail/codetrail/internal/contract"
	"github.com/codetrail/codetrail/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// commitRow is the flat presentation of one cooked commit for CSV/JSON output.
type commitRow struct {
	Index      int    `json:"index"`
	Repository string `json:"repository"`
	Commit     string `json:"commit"`
	Summary    string `json:"summary"`
	Email      string `json:"email"`
	URL        string `json:"url,omitempty"`
	Date       string `json:"date"`
}

// PrintCommitResults outputs the cooked commit table, dispatching based on
// the output format configured.
func PrintCommitResults(cooked *schema.CommitTable, cfg *contract.Config) error {
	rows := flattenCommits(cooked)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForCommits(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForCommits(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printCommitTable(rows, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// flattenCommits turns the ordered table into presentation rows, numbering
// commits across repositories in table order.
func flattenCommits(cooked *schema.CommitTable) []commitRow {
	var rows []commitRow
	idx := 1
	for _, repo := range cooked.Repos() {
		set, _ := cooked.Get(repo)
		for _, rec := range set.Records() {
			rows = append(rows, commitRow{
				Index:      idx,
				Repository: repo,
				Commit:     schema.ShortHash(rec.Hash),
				Summary:    rec.Summary,
				Email:      rec.AuthorEmail,
				URL:        rec.URL,
				Date:       rec.Date,
			})
			idx++
		}
	}
	return rows
}

// printJSONResultsForCommits handles opening the file and calling the JSON writer.
func printJSONResultsForCommits(rows []commitRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON")
}

// printCSVResultsForCommits handles opening the file and calling the CSV writer.
func printCSVResultsForCommits(rows []commitRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"index", "repository", "commit", "summary", "email", "url", "date"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, r := range rows {
				rec := []string{
					strconv.Itoa(r.Index),
					r.Repository,
					r.Commit,
					r.Summary,
					r.Email,
					r.URL,
					r.Date,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// printCommitTable prints the cooked commits in the human-readable table
// format, using the tablewriter API.
func printCommitTable(rows []commitRow, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Repository", "Commit", "Summary", "Email", "URL", "Date"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Index),
			r.Repository,
			r.Commit,
			contract.TruncatePath(r.Summary, maxWidth),
			r.Email,
			r.URL,
			r.Date,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d matching commits\n", len(rows))
	return nil
}
