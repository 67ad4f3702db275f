package extract

import (
	"regexp"
	"strings"

	"receiptcsv/receipt-csv/internal/models"
)

// MaxItemPrice bounds a plausible single line-item price (exclusive).
const MaxItemPrice = 50000

// priceOnlyPattern matches a line that is nothing but a price, the second
// half of an item whose name and price the OCR split across two lines.
var priceOnlyPattern = regexp.MustCompile(`^[¥]?([0-9][0-9,]*)円?$`)

// nameCleaner strips digits, currency symbols, and asterisks from a raw
// captured item name.
var nameCleaner = regexp.MustCompile(`[0-9,¥円*]+`)

// summaryWords are receipt bookkeeping lines that the item pattern would
// otherwise happily capture as purchases.
var summaryWords = []string{
	"合計", "小計", "総計", "税込", "税抜", "消費税", "内税", "外税",
	"お預り", "お預かり", "お釣り", "おつり", "現金", "クレジット",
	"ポイント", "割引", "値引", "領収", "レシート", "対象額",
}

// Items extracts line items from normalized receipt lines. Every line is
// first tried against the active item pattern; a two-line heuristic then
// recovers items whose name and price were split across adjacent lines.
// Candidates with an implausible price or an empty cleaned name are dropped,
// and the survivors are deduplicated by (name, price) in first-seen order.
func Items(lines []string, itemPattern *regexp.Regexp, maxPrice int) []models.ReceiptItem {
	if maxPrice <= 0 {
		maxPrice = MaxItemPrice
	}

	var items []models.ReceiptItem
	type key struct {
		name  string
		price int
	}
	seen := make(map[key]bool)

	add := func(rawName string, rawPrice string) {
		price, ok := parseAmount(rawPrice)
		if !ok || price >= maxPrice {
			return
		}
		name := CleanItemName(rawName)
		if name == "" || isSummaryLine(name) {
			return
		}
		k := key{name, price}
		if seen[k] {
			return
		}
		seen[k] = true
		items = append(items, models.ReceiptItem{Name: name, Price: price})
	}

	for i, line := range lines {
		if matches := itemPattern.FindStringSubmatch(line); len(matches) >= 3 {
			add(matches[1], matches[2])
			continue
		}

		// Two-line heuristic: a name-only line immediately followed by a
		// price-only line.
		if i+1 < len(lines) && isNameOnly(line) {
			if matches := priceOnlyPattern.FindStringSubmatch(lines[i+1]); len(matches) == 2 {
				add(line, matches[1])
			}
		}
	}

	return items
}

// CleanItemName strips digits, currency symbols, and asterisks from a raw
// item name and collapses the remaining whitespace.
func CleanItemName(raw string) string {
	cleaned := nameCleaner.ReplaceAllString(raw, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimSpace(cleaned)
}

func isNameOnly(line string) bool {
	if line == "" || strings.ContainsAny(line, "0123456789¥") {
		return false
	}
	return !isSummaryLine(line)
}

func isSummaryLine(name string) bool {
	for _, word := range summaryWords {
		if strings.Contains(name, word) {
			return true
		}
	}
	return false
}
