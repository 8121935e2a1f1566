package core

import (
	"sort"

	"github.com/codetrail/codetrail/schema"
)

// Hotspot counts file-change frequency over the cooked table, classifies
// counts into tiers relative to the maximum, and returns the grouped
// presentational rows. An empty slice means no file qualified for any tier.
//
// The owning repository of a path is the first repository seen touching it;
// later repositories touching the same path do not overwrite the owner.
func Hotspot(cooked *schema.CommitTable) []schema.HotspotRow {
	entries := tierEntries(cooked)
	if len(entries) == 0 {
		return nil
	}
	return groupRows(entries)
}

// tierEntries builds the tiered hotspot entries, ordered by descending count
// with first-seen order breaking ties. Files below the lowest tier threshold
// are dropped.
func tierEntries(cooked *schema.CommitTable) []schema.HotspotEntry {
	counts := make(map[string]int)
	owner := make(map[string]string)
	firstSeen := make(map[string]int)
	var order []string

	for _, repo := range cooked.Repos() {
		set, _ := cooked.Get(repo)
		for _, rec := range set.Records() {
			for _, path := range rec.ChangedFiles {
				if _, ok := counts[path]; !ok {
					owner[path] = repo
					firstSeen[path] = len(order)
					order = append(order, path)
				}
				counts[path]++
			}
		}
	}

	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}

	entries := make([]schema.HotspotEntry, 0, len(order))
	for _, path := range order {
		tier := schema.TierFor(counts[path], maxCount)
		if tier == schema.TierExcluded {
			continue
		}
		entries = append(entries, schema.HotspotEntry{
			FilePath: path,
			Count:    counts[path],
			Repo:     owner[path],
			Tier:     tier,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].FilePath] < firstSeen[entries[j].FilePath]
	})

	return entries
}

// groupRows groups tiered entries by "repo/topLevelDir", emits groups in
// lexical key order, and keeps the descending-by-count order within each
// group. The first row of a group carries the group key; continuation rows
// leave it blank, and a separator row divides adjacent groups.
func groupRows(entries []schema.HotspotEntry) []schema.HotspotRow {
	groups := make(map[string][]schema.HotspotEntry)
	var keys []string
	for _, e := range entries {
		key := schema.GroupKey(e.Repo, e.FilePath)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], e)
	}
	sort.Strings(keys)

	var rows []schema.HotspotRow
	for i, key := range keys {
		if i > 0 {
			rows = append(rows, schema.HotspotRow{Separator: true})
		}
		for j, e := range groups[key] {
			row := schema.HotspotRow{
				FilePath: e.FilePath,
				Count:    e.Count,
				Tier:     e.Tier,
			}
			if j == 0 {
				row.GroupKey = key
			}
			rows = append(rows, row)
		}
	}
	return rows
}
