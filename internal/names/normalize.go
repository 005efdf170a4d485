// Package names holds the text normalization and similarity primitives used
// when matching fixtures across the two upstream feeds.
package names

import "strings"

// Normalize lower-cases the input, drops every character outside [a-z0-9 ],
// and collapses runs of whitespace. Empty input normalizes to "".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ApplyAliases normalizes the input and substitutes any token present in the
// alias table before rejoining. "man utd" becomes "man united".
func ApplyAliases(raw string) string {
	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}
	tokens := strings.Fields(normalized)
	for i, tok := range tokens {
		if alias, ok := tokenAliases[tok]; ok {
			tokens[i] = alias
		}
	}
	return strings.Join(tokens, " ")
}

// CanonicalTeam resolves a known team spelling to its canonical form. Unknown
// names pass through unchanged.
func CanonicalTeam(raw string) string {
	if canonical, ok := canonicalTeams[Normalize(raw)]; ok {
		return canonical
	}
	return raw
}

// CanonicalLeague resolves a known league spelling to its canonical form.
func CanonicalLeague(raw string) string {
	if canonical, ok := canonicalLeagues[Normalize(raw)]; ok {
		return canonical
	}
	return raw
}
