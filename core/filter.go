package core

import (
	"slices"
	"strings"

	"github.com/codetrail/codetrail/schema"
)

// Cook reduces the raw commit table to the commits matching the filter spec.
// Per-repository insertion order is preserved, and repositories with zero
// surviving commits still appear as empty entries. The input table is never
// mutated; the cooked table is a disjoint structure sharing only the
// immutable records.
//
// With no criteria specified at all, every commit passes regardless of mode.
func Cook(raw *schema.CommitTable, spec schema.FilterSpec) *schema.CommitTable {
	cooked := schema.NewCommitTable()

	for _, repo := range raw.Repos() {
		set, _ := raw.Get(repo)
		cookedSet := schema.NewCommitSet()
		for _, rec := range set.Records() {
			if commitMatches(rec, spec) {
				cookedSet.Add(rec)
			}
		}
		cooked.Put(repo, cookedSet)
	}

	return cooked
}

// commitMatches applies the filter criteria to one commit.
func commitMatches(rec schema.CommitRecord, spec schema.FilterSpec) bool {
	if spec.IsEmpty() {
		return true
	}
	if spec.Mode == schema.IntersectionMode {
		return matchesAll(rec, spec)
	}
	return matchesAny(rec, spec)
}

// matchesAny implements union mode: a commit passes if it matches any
// non-empty criterion. Email and username use exact full-string equality;
// keywords use case-insensitive substring search over message plus diff
// text. Checks short-circuit in that order.
func matchesAny(rec schema.CommitRecord, spec schema.FilterSpec) bool {
	if slices.Contains(spec.Emails, rec.AuthorEmail) {
		return true
	}
	if slices.Contains(spec.Usernames, rec.AuthorName) {
		return true
	}
	if len(spec.Keywords) > 0 {
		text := strings.ToLower(rec.Message + rec.DiffText)
		for _, kw := range spec.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

// matchesAll implements intersection mode: every specified criterion must
// hold; an empty criterion list imposes no constraint. Unlike union mode,
// email and username checks use substring containment rather than equality.
// That asymmetry is deliberate and load-bearing: callers rely on being able
// to intersect on a domain fragment like "@corp.com".
func matchesAll(rec schema.CommitRecord, spec schema.FilterSpec) bool {
	for _, email := range spec.Emails {
		if !strings.Contains(rec.AuthorEmail, email) {
			return false
		}
	}
	for _, user := range spec.Usernames {
		if !strings.Contains(rec.AuthorName, user) {
			return false
		}
	}
	if len(spec.Keywords) > 0 {
		text := strings.ToLower(rec.Message + rec.DiffText)
		for _, kw := range spec.Keywords {
			if !strings.Contains(text, strings.ToLower(kw)) {
				return false
			}
		}
	}
	return true
}
