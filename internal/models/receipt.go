// Package models provides the data structures used throughout the application.
package models

// ReceiptItem represents a single purchased item extracted from receipt text.
// Items are deduplicated by (Name, Price) identity during extraction.
type ReceiptItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// ParsedReceipt is the structured result of one receipt parse.
// Total is the merchant-declared total when one was found, otherwise the sum
// of the extracted items, otherwise the largest plausible numeric token in the
// text. Total == 0 is a valid low-confidence state, never an error.
type ParsedReceipt struct {
	StoreName string        `json:"store_name"`
	Total     int           `json:"total"`
	Items     []ReceiptItem `json:"items"`
	Date      string        `json:"date,omitempty"` // ISO date (YYYY-MM-DD), empty when absent
}

// ItemTotal returns the sum of all extracted item prices.
func (r ParsedReceipt) ItemTotal() int {
	sum := 0
	for _, item := range r.Items {
		sum += item.Price
	}
	return sum
}

// Assessment is the confidence report produced for one parsed receipt.
// Confidence is a 0-100 heuristic quality estimate derived from deduction
// rules, not a probability. Each deduction appends a human-readable issue
// and a suggested remediation.
type Assessment struct {
	Confidence  int      `json:"confidence"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Normalized returns the confidence as a value in [0, 1].
func (a Assessment) Normalized() float64 {
	return float64(a.Confidence) / 100.0
}
