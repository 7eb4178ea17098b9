package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a node name for fuzzy comparison: lower case,
// separators (_, -, space, '.', ':') removed.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', ':':
		return true
	default:
		return false
	}
}
