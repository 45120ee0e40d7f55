package workspace

import (
	"strings"
	"unicode"
)

// DefaultFileName derives a save file name from a workspace name:
// "House Chores" becomes "house-chores.json".
func DefaultFileName(workspaceName string) string {
	slug := toKebabCase(workspaceName)
	if slug == "" {
		slug = "workspace"
	}
	return slug + ".json"
}

// toKebabCase lowercases s, turns spaces and underscores into hyphens,
// drops other punctuation, and collapses repeated hyphens.
func toKebabCase(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('-')
		}
	}

	str := result.String()
	for strings.Contains(str, "--") {
		str = strings.ReplaceAll(str, "--", "-")
	}
	return strings.Trim(str, "-")
}
