package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/codetrail/codetrail/schema"
	"github.com/fatih/color"
)

// Color variables for hotspot tiers, hottest first. The palette follows the
// severity ramp used in the tables: magenta for the top tier down to
// hi-yellow for the lowest qualifying tier.
var (
	Tier5Color = color.New(color.FgMagenta, color.Bold)
	Tier4Color = color.New(color.FgRed, color.Bold)
	Tier3Color = color.New(color.FgRed)
	Tier2Color = color.New(color.FgYellow)
	Tier1Color = color.New(color.FgHiYellow)
)

// TierColor returns the display color for a tier, or nil for excluded files.
func TierColor(tier int) *color.Color {
	switch tier {
	case 5:
		return Tier5Color
	case 4:
		return Tier4Color
	case 3:
		return Tier3Color
	case 2:
		return Tier2Color
	case 1:
		return Tier1Color
	default:
		return nil
	}
}

// ColorizeTier wraps text in the tier's color for console output. Plain text
// comes back unchanged when colors are disabled or the tier is excluded.
func ColorizeTier(text string, tier int, useColors bool) string {
	if !useColors {
		return text
	}
	c := TierColor(tier)
	if c == nil {
		return text
	}
	return c.Sprint(text)
}

// TierLabel returns a short textual label for a tier, used where color is
// unavailable (CSV, JSON).
func TierLabel(tier int) string {
	if tier < 1 || tier > schema.TierMax {
		return "none"
	}
	return fmt.Sprintf("T%d", tier)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for "..." plus content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// LogFatal logs an error message to stderr and exits.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
