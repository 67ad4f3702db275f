// Package normalize cleans raw OCR output into candidate lines for the
// extraction pipeline. OCR text from photographed receipts arrives with
// full-width digits and symbols, stray whitespace, and empty lines; every
// downstream pattern assumes the ASCII-folded form produced here.
package normalize

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// symbolFolds maps full-width currency and punctuation characters to their
// ASCII equivalents. Digits are handled separately by rune arithmetic.
var symbolFolds = strings.NewReplacer(
	"￥", "¥",
	"：", ":",
	"；", ";",
	"／", "/",
	"＼", "\\",
	"．", ".",
	"，", ",",
	"－", "-",
	"＊", "*",
	"（", "(",
	"）", ")",
	"％", "%",
	"＠", "@",
	"　", " ",
)

// Lines splits raw OCR text into trimmed, non-empty, ASCII-folded lines.
// It never fails; unusable input yields an empty slice.
func Lines(raw string) []string {
	if raw == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = Fold(line)
		line = whitespaceRun.ReplaceAllString(line, " ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Fold converts full-width digits (U+FF10..U+FF19) and common full-width
// symbols to their ASCII equivalents.
func Fold(s string) string {
	s = symbolFolds.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '０' && r <= '９' {
			r = '0' + (r - '０')
		}
		b.WriteRune(r)
	}
	return b.String()
}
