package schema

// Custom string types for type safety.
type (
	// FilterMode represents the combination policy for filter criteria.
	FilterMode string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All filter modes supported.
const (
	UnionMode        FilterMode = "union" // default
	IntersectionMode FilterMode = "intersection"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// Hotspot tier bounds. Tiers run from TierMax (most changed) down to 1;
// TierExcluded marks files below the lowest threshold, which are dropped
// from the ranking entirely.
const (
	TierExcluded = 0
	TierMax      = 5
)

// RootGroupDir is the sentinel top-level directory for paths without a
// separator.
const RootGroupDir = "root"

// ValidFilterModes lists all valid filter modes.
var ValidFilterModes = map[FilterMode]struct{}{
	UnionMode:        {},
	IntersectionMode: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}
