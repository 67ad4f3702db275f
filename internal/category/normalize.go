package category

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// normalizeKey prepares a label for alias matching: whitespace removed, a
// trailing 代 suffix dropped (電気代 and 電気 are the same label), and
// ASCII letters lower-cased.
func normalizeKey(s string) string {
	s = whitespacePattern.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, "代")
	return strings.ToLower(s)
}

// Normalize maps an arbitrary category string onto one canonical label, or
// onto a member of allowed when a non-empty allowed set is supplied. The
// steps run strictly in order:
//
//  1. blank input resolves Other
//  2. an allowed set containing the trimmed input verbatim returns it as-is
//  3. an exact canonical label resolves itself
//  4. alias-table substring scan over the normalized input, table order
//  5. broader keyword fallback rules, declaration order
//  6. Other
//
// Every resolution passes through pickAvailable, so the result is always a
// member of a non-empty allowed set. Normalize never fails.
func Normalize(input string, allowed []string) string {
	return NormalizeWith(input, allowed, nil)
}

// NormalizeWith is Normalize with user-supplied alias entries layered on top
// of the built-in table. Overlay entries are scanned first, so a user alias
// can shadow a built-in one; file order is the match order.
func NormalizeWith(input string, allowed []string, overlay []Alias) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return pickAvailable(Other, allowed)
	}

	for _, a := range allowed {
		if a == trimmed {
			return trimmed
		}
	}

	if IsCanonical(trimmed) {
		return pickAvailable(trimmed, allowed)
	}

	key := normalizeKey(trimmed)
	for _, entry := range overlay {
		if strings.Contains(key, normalizeKey(entry.Alias)) {
			return pickAvailable(entry.Category, allowed)
		}
	}
	for _, entry := range aliasTable {
		if strings.Contains(key, normalizeKey(entry.Alias)) {
			return pickAvailable(entry.Category, allowed)
		}
	}

	for _, rule := range fallbackRules {
		if rule.pattern.MatchString(key) {
			return pickAvailable(rule.category, allowed)
		}
	}

	return pickAvailable(Other, allowed)
}
