// Package extract implements the field extraction strategies that run over
// normalized receipt lines: amount, line items, and purchase date. Each
// extractor produces a candidate set reduced by a fixed policy and never
// returns an error; missing fields are zero values.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"receiptcsv/receipt-csv/internal/storeformat"
)

// genericTotalPattern anchors on the usual total markers printed on Japanese
// receipts. It backs up the merchant-specific patterns.
var genericTotalPattern = regexp.MustCompile(`(?:合計|総計|計|小計|税込)\s*[:]?\s*[¥]?([0-9][0-9,]*)`)

// bareNumberPattern is the last-resort stage: any 2-5 digit token.
var bareNumberPattern = regexp.MustCompile(`[0-9][0-9,]*`)

const (
	// Plausible bounds for a bare numeric token standing in for a total.
	minBareTotal = 10
	maxBareTotal = 99999
)

// AmountResult carries the reduced total and whether it came from an explicit
// total pattern (as opposed to the bare-number scan).
type AmountResult struct {
	Total       int
	FromPattern bool
}

// Amount extracts the receipt total. Merchant-specific patterns and the
// generic anchored patterns accumulate candidates; the maximum candidate wins,
// reflecting the assumption that the printed total is the largest relevant
// figure on the slip. Only when both pattern stages come up empty does a scan
// for plausible bare numeric tokens run. No candidates at all means total 0.
func Amount(lines []string, format storeformat.Format) AmountResult {
	var candidates []int

	for _, pattern := range format.TotalPatterns {
		candidates = append(candidates, matchAmounts(lines, pattern)...)
	}
	candidates = append(candidates, matchAmounts(lines, genericTotalPattern)...)

	if len(candidates) > 0 {
		return AmountResult{Total: maxOf(candidates), FromPattern: true}
	}

	for _, line := range lines {
		for _, token := range bareNumberPattern.FindAllString(line, -1) {
			value, ok := parseAmount(token)
			if ok && value >= minBareTotal && value <= maxBareTotal {
				candidates = append(candidates, value)
			}
		}
	}
	if len(candidates) == 0 {
		return AmountResult{}
	}
	return AmountResult{Total: maxOf(candidates)}
}

func matchAmounts(lines []string, pattern *regexp.Regexp) []int {
	var values []int
	for _, line := range lines {
		matches := pattern.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		if value, ok := parseAmount(matches[1]); ok {
			values = append(values, value)
		}
	}
	return values
}

// parseAmount strips thousands separators and parses a positive integer.
func parseAmount(token string) (int, bool) {
	token = strings.ReplaceAll(token, ",", "")
	value, err := strconv.Atoi(token)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func maxOf(values []int) int {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
