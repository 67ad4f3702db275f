package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// GrandTotalLabel is the category label of the trailing grand total row in
// summary files.
const GrandTotalLabel = "合計"

// CategorySummary is one per-category aggregation row.
type CategorySummary struct {
	Category string          `csv:"Category"`
	Count    int             `csv:"Count"`
	Total    decimal.Decimal `csv:"Total"`
}

// Summarize aggregates expense records into per-category totals, sorted by
// descending total then category name for a stable output order.
func Summarize(records []models.ExpenseRecord) []CategorySummary {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, record := range records {
		totals[record.Category] = totals[record.Category].Add(record.DecimalAmount())
		counts[record.Category]++
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for name, total := range totals {
		summaries = append(summaries, CategorySummary{
			Category: name,
			Count:    counts[name],
			Total:    total,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Total.GreaterThan(summaries[j].Total)
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// GrandTotal sums every record amount.
func GrandTotal(records []models.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.DecimalAmount())
	}
	return total
}

// WriteSummaryToCSV aggregates records and writes the per-category summary,
// with a trailing grand total row, to a CSV file using the configured
// delimiter. The output directory is created when missing.
func WriteSummaryToCSV(records []models.ExpenseRecord, csvFile string) error {
	rows := Summarize(records)
	rows = append(rows, CategorySummary{
		Category: GrandTotalLabel,
		Count:    len(records),
		Total:    GrandTotal(records),
	})

	log.Info("Writing category summary to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
