package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTierFor tests tier classification against the observed maximum.
func TestTierFor(t *testing.T) {
	t.Run("thresholds with max 12", func(t *testing.T) {
		assert.Equal(t, 5, TierFor(12, 12))
		assert.Equal(t, 5, TierFor(10, 12)) // 10 >= 12*5/6
		assert.Equal(t, 4, TierFor(9, 12))  // 9 >= 12*4/6
		assert.Equal(t, 3, TierFor(6, 12))
		assert.Equal(t, 2, TierFor(4, 12))
		assert.Equal(t, 1, TierFor(2, 12))
		assert.Equal(t, TierExcluded, TierFor(1, 12)) // below 12*1/6
	})

	t.Run("small maximum still tiers", func(t *testing.T) {
		assert.Equal(t, 5, TierFor(2, 2))
		assert.Equal(t, 3, TierFor(1, 2)) // 1 >= 2*3/6, not 2*4/6
	})

	t.Run("degenerate inputs excluded", func(t *testing.T) {
		assert.Equal(t, TierExcluded, TierFor(0, 0))
		assert.Equal(t, TierExcluded, TierFor(5, 0))
		assert.Equal(t, TierExcluded, TierFor(0, 5))
		assert.Equal(t, TierExcluded, TierFor(-1, 5))
	})

	t.Run("tier never decreases with count", func(t *testing.T) {
		maxCount := 30
		prev := TierExcluded
		for count := 0; count <= maxCount; count++ {
			tier := TierFor(count, maxCount)
			assert.GreaterOrEqual(t, tier, prev, "count %d", count)
			prev = tier
		}
		assert.Equal(t, TierMax, prev)
	})
}

// TestTopLevelDir tests top-level directory extraction.
func TestTopLevelDir(t *testing.T) {
	assert.Equal(t, "src", TopLevelDir("src/auth/login.go"))
	assert.Equal(t, "docs", TopLevelDir("docs/readme.md"))
	assert.Equal(t, RootGroupDir, TopLevelDir("Makefile"))
	assert.Equal(t, "", TopLevelDir("/absolute"))
}

// TestGroupKey tests hotspot group key construction.
func TestGroupKey(t *testing.T) {
	assert.Equal(t, "app/src", GroupKey("app", "src/auth/login.go"))
	assert.Equal(t, "app/root", GroupKey("app", "Makefile"))
}

// TestShortHash tests hash truncation for table display.
func TestShortHash(t *testing.T) {
	assert.Equal(t, "abc1234", ShortHash("abc1234def5678"))
	assert.Equal(t, "abc", ShortHash("abc"))
	assert.Equal(t, "", ShortHash(""))
}

// TestFirstLine tests summary extraction from commit messages.
func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Add login flow", FirstLine("Add login flow\n\nDetails here."))
	assert.Equal(t, "One liner", FirstLine("One liner"))
	assert.Equal(t, "Windows ending", FirstLine("Windows ending\r\nBody"))
	assert.Equal(t, "", FirstLine(""))
}
