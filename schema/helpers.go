package schema

import "strings"

// shortHashLen is the number of leading hash characters shown in tables.
const shortHashLen = 7

// TierFor classifies a change count into a severity tier relative to the
// maximum observed count. Thresholds are fractions of the maximum, checked
// from highest to lowest with first match winning:
//
//	tier 5: count >= max * 5/6
//	tier 4: count >= max * 4/6
//	tier 3: count >= max * 3/6
//	tier 2: count >= max * 2/6
//	tier 1: count >= max * 1/6
//
// Anything below the lowest threshold returns TierExcluded. Fractional
// thresholds of the observed maximum make the tiering adapt to repositories
// of very different activity levels without fixed cutoffs.
func TierFor(count, maxCount int) int {
	if maxCount <= 0 || count <= 0 {
		return TierExcluded
	}
	c := float64(count)
	m := float64(maxCount)
	for tier := TierMax; tier >= 1; tier-- {
		if c >= m*float64(tier)/6 {
			return tier
		}
	}
	return TierExcluded
}

// TopLevelDir returns the first path segment before the first separator,
// or RootGroupDir if the path has no separator.
func TopLevelDir(path string) string {
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return RootGroupDir
}

// GroupKey builds the hotspot grouping key for a repository and file path.
func GroupKey(repo, path string) string {
	return repo + "/" + TopLevelDir(path)
}

// ShortHash truncates a commit hash for table display.
func ShortHash(hash string) string {
	if len(hash) > shortHashLen {
		return hash[:shortHashLen]
	}
	return hash
}

// FirstLine returns the first line of a commit message, used as its summary
// when the source does not supply one separately.
func FirstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimRight(message[:idx], "\r")
	}
	return message
}
