package receipt

import (
	"unicode/utf8"

	"receiptcsv/receipt-csv/internal/models"
)

// Deduction rules for the confidence score. Each fires independently and
// additively; the score starts at 100 and is clamped to [0, 100].
const (
	deductMissingTotal = 30
	deductHugeTotal    = 20
	deductMissingStore = 15
	deductNoItems      = 20
	deductShortText    = 25
	implausibleTotal   = 100000
	shortTextRuneCount = 50
)

// Assess inspects an assembled receipt together with the raw OCR text and
// produces a 0-100 confidence score plus human-readable issues and suggested
// remediations. It never fails; a hopeless parse is simply a low score.
func Assess(result models.ParsedReceipt, raw string) models.Assessment {
	score := 100
	var issues, suggestions []string

	deduct := func(points int, issue, suggestion string) {
		score -= points
		issues = append(issues, issue)
		suggestions = append(suggestions, suggestion)
	}

	if result.Total == 0 {
		deduct(deductMissingTotal,
			"total amount could not be determined",
			"retake the photo so the 合計 line is sharp and fully visible")
	}
	if result.Total > implausibleTotal {
		deduct(deductHugeTotal,
			"total amount is implausibly high",
			"verify the amount manually; a tax ID or phone number may have been read as the total")
	}
	if result.StoreName == "" {
		deduct(deductMissingStore,
			"store name could not be identified",
			"include the top of the receipt where the store name is printed")
	}
	if len(result.Items) == 0 {
		deduct(deductNoItems,
			"no line items were extracted",
			"flatten the receipt and avoid shadows across the item section")
	}
	if utf8.RuneCountInString(raw) < shortTextRuneCount {
		deduct(deductShortText,
			"OCR text is very short",
			"move closer so the whole receipt fills the frame")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return models.Assessment{
		Confidence:  score,
		Issues:      issues,
		Suggestions: suggestions,
	}
}
