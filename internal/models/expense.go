package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is the flat, serializable record handed to downstream
// consumers (CSV export, persistence collaborators). Amounts are integer yen.
type ExpenseRecord struct {
	Date       string `csv:"Date" json:"date"`
	StoreName  string `csv:"Store" json:"store_name"`
	Category   string `csv:"Category" json:"category"`
	Amount     int    `csv:"Amount" json:"amount"`
	Items      string `csv:"Items" json:"items"`
	Confidence int    `csv:"Confidence" json:"confidence"`
	SourceFile string `csv:"SourceFile,omitempty" json:"source_file,omitempty"`
}

// NewExpenseRecord flattens a parsed receipt plus its resolved category and
// confidence assessment into one exportable record.
func NewExpenseRecord(receipt ParsedReceipt, category string, assessment Assessment) ExpenseRecord {
	names := make([]string, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		names = append(names, item.Name)
	}
	return ExpenseRecord{
		Date:       receipt.Date,
		StoreName:  receipt.StoreName,
		Category:   category,
		Amount:     receipt.Total,
		Items:      strings.Join(names, "; "),
		Confidence: assessment.Confidence,
	}
}

// DecimalAmount returns the record amount as a decimal for aggregation.
func (e ExpenseRecord) DecimalAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(e.Amount))
}
