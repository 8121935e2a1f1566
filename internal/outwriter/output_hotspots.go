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

// groupSeparator fills separator rows between directory groups in the text table.
const groupSeparator = "--------"

// hotspotRowOut is the flat presentation of one hotspot row for CSV/JSON
// output. Separator rows are presentational and omitted from both formats.
type hotspotRowOut struct {
	Directory string `json:"directory,omitempty"`
	File      string `json:"file"`
	Changes   int    `json:"changes"`
	Tier      string `json:"tier"`
}

// PrintHotspotResults outputs the grouped hotspot ranking, dispatching based
// on the output format configured.
func PrintHotspotResults(rows []schema.HotspotRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForHotspots(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForHotspots(rows, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printHotspotTable(rows, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// flattenHotspots drops separator rows and attaches plain tier labels.
func flattenHotspots(rows []schema.HotspotRow) []hotspotRowOut {
	var out []hotspotRowOut
	for _, r := range rows {
		if r.Separator {
			continue
		}
		out = append(out, hotspotRowOut{
			Directory: r.GroupKey,
			File:      r.FilePath,
			Changes:   r.Count,
			Tier:      contract.TierLabel(r.Tier),
		})
	}
	return out
}

// printJSONResultsForHotspots handles opening the file and calling the JSON writer.
func printJSONResultsForHotspots(rows []schema.HotspotRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, flattenHotspots(rows))
	}, "Wrote JSON")
}

// printCSVResultsForHotspots handles opening the file and calling the CSV writer.
func printCSVResultsForHotspots(rows []schema.HotspotRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"directory", "file", "changes", "tier"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, r := range flattenHotspots(rows) {
				rec := []string{r.Directory, r.File, strconv.Itoa(r.Changes), r.Tier}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// printHotspotTable prints the grouped ranking in the custom hotspot format,
// with tier-based coloring and separator rows between directory groups.
func printHotspotTable(rows []schema.HotspotRow, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Directory", "File", "Changes"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	files := 0
	var data [][]string
	for _, r := range rows {
		if r.Separator {
			data = append(data, []string{groupSeparator, groupSeparator, groupSeparator})
			continue
		}
		files++
		data = append(data, []string{
			contract.ColorizeTier(r.GroupKey, r.Tier, cfg.UseColors),
			contract.ColorizeTier(contract.TruncatePath(r.FilePath, maxWidth), r.Tier, cfg.UseColors),
			contract.ColorizeTier(strconv.Itoa(r.Count), r.Tier, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d hotspot files across all tiers\n", files)
	return nil
}
