// Package schema has models, constants and helpers for all parts of codetrail.
package schema

// CommitRecord is the normalized representation of one commit as supplied
// by a repository source. Records are never mutated after creation; the
// pipeline only copies them between tables.
type CommitRecord struct {
	Hash         string   // Unique identifier within the owning repository
	AuthorName   string   // Author display name
	AuthorEmail  string   // Author email address
	Summary      string   // First line of the commit message
	Message      string   // Full commit message, possibly multi-line
	DiffText     string   // Full textual patch content, possibly empty
	ChangedFiles []string // Paths touched by the commit, in git order
	Date         string   // Commit date as a formatted string
	URL          string   // Optional link to the commit in a remote viewer
}

// CommitSet is an insertion-ordered mapping from commit hash to CommitRecord.
// Go maps do not preserve insertion order, so the order is tracked explicitly;
// filtering must yield a subsequence of the source order, never a reordering.
type CommitSet struct {
	hashes  []string
	records map[string]CommitRecord
}

// NewCommitSet creates an empty ordered commit set.
func NewCommitSet() *CommitSet {
	return &CommitSet{records: make(map[string]CommitRecord)}
}

// Add appends a record to the set. A hash already present is ignored,
// since hashes are unique within a repository.
func (s *CommitSet) Add(rec CommitRecord) {
	if _, ok := s.records[rec.Hash]; ok {
		return
	}
	s.hashes = append(s.hashes, rec.Hash)
	s.records[rec.Hash] = rec
}

// Get returns the record for a hash, if present.
func (s *CommitSet) Get(hash string) (CommitRecord, bool) {
	rec, ok := s.records[hash]
	return rec, ok
}

// Hashes returns commit hashes in insertion order.
func (s *CommitSet) Hashes() []string {
	return s.hashes
}

// Records returns all records in insertion order.
func (s *CommitSet) Records() []CommitRecord {
	out := make([]CommitRecord, 0, len(s.hashes))
	for _, h := range s.hashes {
		out = append(out, s.records[h])
	}
	return out
}

// Len returns the number of commits in the set.
func (s *CommitSet) Len() int {
	return len(s.hashes)
}

// CommitTable is an insertion-ordered mapping from repository name to its
// commit set. Repository order reflects collection order.
type CommitTable struct {
	names []string
	repos map[string]*CommitSet
}

// NewCommitTable creates an empty ordered commit table.
func NewCommitTable() *CommitTable {
	return &CommitTable{repos: make(map[string]*CommitSet)}
}

// Put stores a commit set under a repository name, replacing any prior set
// but keeping the original position if the name was already present.
func (t *CommitTable) Put(repo string, set *CommitSet) {
	if _, ok := t.repos[repo]; !ok {
		t.names = append(t.names, repo)
	}
	t.repos[repo] = set
}

// Get returns the commit set for a repository, if present.
func (t *CommitTable) Get(repo string) (*CommitSet, bool) {
	set, ok := t.repos[repo]
	return set, ok
}

// Repos returns repository names in insertion order.
func (t *CommitTable) Repos() []string {
	return t.names
}

// Len returns the number of repositories in the table.
func (t *CommitTable) Len() int {
	return len(t.names)
}

// TotalCommits returns the number of commits across all repositories.
func (t *CommitTable) TotalCommits() int {
	total := 0
	for _, set := range t.repos {
		total += set.Len()
	}
	return total
}

// IsEmpty reports whether the table holds no commits at all. Repositories
// with zero surviving commits still appear as entries, so Len alone is not
// enough to decide emptiness.
func (t *CommitTable) IsEmpty() bool {
	return t.TotalCommits() == 0
}

// FilterSpec describes the criteria applied by the filter engine.
// An empty criterion list imposes no constraint.
type FilterSpec struct {
	Emails    []string
	Usernames []string
	Keywords  []string
	Mode      FilterMode
}

// IsEmpty reports whether no criteria are specified at all, in which case
// every commit passes regardless of mode.
func (s FilterSpec) IsEmpty() bool {
	return len(s.Emails) == 0 && len(s.Usernames) == 0 && len(s.Keywords) == 0
}

// HotspotEntry is one file ranked by change frequency across the cooked set.
type HotspotEntry struct {
	FilePath string // Path as recorded in the commit
	Count    int    // Number of cooked commits touching the path
	Repo     string // First repository seen touching the path
	Tier     int    // Severity tier 1..5; TierExcluded means dropped
}

// HotspotRow is one presentational row of the grouped hotspot ranking.
// The first row of a group carries the group key; continuation rows leave it
// blank, and a separator row is emitted between groups.
type HotspotRow struct {
	GroupKey  string
	FilePath  string
	Count     int
	Tier      int
	Separator bool
}
