package receipt

import (
	"regexp"
	"strconv"
	"strings"

	"receiptcsv/receipt-csv/internal/extract"
	"receiptcsv/receipt-csv/internal/models"
)

// The legacy single-pass parser predates the store-format registry. It is
// deliberately naive: the first non-empty line is taken as the store name,
// and any line carrying a currency mark or a multi-digit run is treated as a
// potential item. It is kept as a fallback candidate because its greedy
// number scan sometimes recovers totals the pattern-driven parse misses on
// badly garbled OCR output.

var (
	legacyNumber = regexp.MustCompile(`[0-9][0-9,]+`)
	legacyDate   = regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`)
)

// Upper bound for any number the legacy scan will believe at all.
const legacyMaxPlausible = 1000000

func parseLegacy(lines []string) models.ParsedReceipt {
	var result models.ParsedReceipt
	if len(lines) == 0 {
		return result
	}

	result.StoreName = lines[0]

	maxSeen := 0
	for i, line := range lines {
		if m := legacyDate.FindStringSubmatch(line); m != nil {
			if result.Date == "" {
				month, _ := strconv.Atoi(m[2])
				day, _ := strconv.Atoi(m[3])
				if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
					result.Date = m[1] + "-" + pad2(month) + "-" + pad2(day)
				}
			}
			// Date digits would otherwise pollute the number scan.
			continue
		}

		if i == 0 || !looksLikeItemLine(line) {
			continue
		}

		numbers := legacyNumber.FindAllString(line, -1)
		if len(numbers) == 0 {
			continue
		}
		for _, token := range numbers {
			if value, err := strconv.Atoi(strings.ReplaceAll(token, ",", "")); err == nil {
				if value > maxSeen && value < legacyMaxPlausible {
					maxSeen = value
				}
			}
		}

		price, err := strconv.Atoi(strings.ReplaceAll(numbers[len(numbers)-1], ",", ""))
		if err != nil || price <= 0 || price >= extract.MaxItemPrice {
			continue
		}
		name := extract.CleanItemName(line)
		if name == "" {
			continue
		}
		result.Items = append(result.Items, models.ReceiptItem{Name: name, Price: price})
	}

	result.Total = maxSeen
	return result
}

func looksLikeItemLine(line string) bool {
	return strings.ContainsAny(line, "¥円") || legacyNumber.MatchString(line)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
