package core

import (
	"testing"

	"github.com/codetrail/codetrail/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addCommit is a shorthand for building commit records that only carry paths.
func addCommit(set *schema.CommitSet, hash string, paths ...string) {
	set.Add(schema.CommitRecord{Hash: hash, ChangedFiles: paths})
}

// TestHotspotRanking tests counting, tiering and grouping over one repo.
func TestHotspotRanking(t *testing.T) {
	set := schema.NewCommitSet()
	addCommit(set, "c1", "src/a.go", "docs/readme.md")
	addCommit(set, "c2", "src/a.go")
	addCommit(set, "c3", "src/a.go", "src/b.go")
	addCommit(set, "c4", "src/a.go", "util.sh")
	addCommit(set, "c5", "src/a.go", "src/b.go")
	addCommit(set, "c6", "src/a.go")

	cooked := schema.NewCommitTable()
	cooked.Put("app", set)

	rows := Hotspot(cooked)
	require.Len(t, rows, 6) // 4 files + 2 separators

	t.Run("groups appear in lexical key order", func(t *testing.T) {
		assert.Equal(t, "app/docs", rows[0].GroupKey)
		assert.True(t, rows[1].Separator)
		assert.Equal(t, "app/root", rows[2].GroupKey)
		assert.True(t, rows[3].Separator)
		assert.Equal(t, "app/src", rows[4].GroupKey)
	})

	t.Run("continuation rows leave the group key blank", func(t *testing.T) {
		assert.Equal(t, "", rows[5].GroupKey)
		assert.Equal(t, "src/b.go", rows[5].FilePath)
	})

	t.Run("counts and tiers reflect change frequency", func(t *testing.T) {
		assert.Equal(t, "src/a.go", rows[4].FilePath)
		assert.Equal(t, 6, rows[4].Count)
		assert.Equal(t, 5, rows[4].Tier)

		assert.Equal(t, 2, rows[5].Count)
		assert.Equal(t, 2, rows[5].Tier)

		assert.Equal(t, "docs/readme.md", rows[0].FilePath)
		assert.Equal(t, 1, rows[0].Count)
		assert.Equal(t, 1, rows[0].Tier)

		assert.Equal(t, "util.sh", rows[2].FilePath)
		assert.Equal(t, 1, rows[2].Count)
	})

	t.Run("within a group counts descend", func(t *testing.T) {
		prev := rows[4].Count
		assert.GreaterOrEqual(t, prev, rows[5].Count)
	})
}

// TestHotspotOwnership tests that the first repository seen owns the path.
func TestHotspotOwnership(t *testing.T) {
	first := schema.NewCommitSet()
	addCommit(first, "f1", "pkg/x.go")
	second := schema.NewCommitSet()
	addCommit(second, "s1", "pkg/x.go")

	cooked := schema.NewCommitTable()
	cooked.Put("alpha", first)
	cooked.Put("beta", second)

	rows := Hotspot(cooked)
	require.Len(t, rows, 1)
	assert.Equal(t, "alpha/pkg", rows[0].GroupKey)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 5, rows[0].Tier)
}

// TestHotspotExclusion tests that files below the lowest tier are dropped.
func TestHotspotExclusion(t *testing.T) {
	set := schema.NewCommitSet()
	// hot.go appears in all 12 commits; cold.go once, below 12/6.
	for i := 0; i < 12; i++ {
		hash := string(rune('a' + i))
		if i == 0 {
			addCommit(set, hash, "hot.go", "cold.go")
		} else {
			addCommit(set, hash, "hot.go")
		}
	}

	cooked := schema.NewCommitTable()
	cooked.Put("app", set)

	rows := Hotspot(cooked)
	require.Len(t, rows, 1)
	assert.Equal(t, "hot.go", rows[0].FilePath)
}

// TestHotspotEmpty tests degenerate inputs.
func TestHotspotEmpty(t *testing.T) {
	assert.Nil(t, Hotspot(schema.NewCommitTable()))

	t.Run("commits without changed files produce nothing", func(t *testing.T) {
		set := schema.NewCommitSet()
		set.Add(schema.CommitRecord{Hash: "m1", Message: "merge"})
		cooked := schema.NewCommitTable()
		cooked.Put("app", set)
		assert.Nil(t, Hotspot(cooked))
	})
}
