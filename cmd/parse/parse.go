// Package parse handles single-receipt parsing commands
package parse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"receiptcsv/receipt-csv/cmd/root"
	"receiptcsv/receipt-csv/internal/category"
	"receiptcsv/receipt-csv/internal/export"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one OCR receipt text file into a structured expense record",
	Long: `Parse reads raw OCR text from a file, extracts store name, total,
line items, and date, scores the extraction confidence, resolves the expense
category, and optionally appends the record to a CSV file.

Example:
  receipt-csv parse -i receipt.txt -o expenses.csv`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	log := root.App.Logger()
	log.Info("Parsing receipt text",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input})

	raw, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	parsed, assessment := root.App.Parser().Parse(string(raw))
	resolved := ResolveCategory(cmd, parsed)

	record := models.NewExpenseRecord(parsed, resolved, assessment)
	record.SourceFile = root.SharedFlags.Input

	log.Info("Parsed receipt",
		logging.Field{Key: logging.FieldStore, Value: parsed.StoreName},
		logging.Field{Key: logging.FieldTotal, Value: parsed.Total},
		logging.Field{Key: logging.FieldCount, Value: len(parsed.Items)},
		logging.Field{Key: logging.FieldCategory, Value: resolved},
		logging.Field{Key: logging.FieldConfidence, Value: assessment.Confidence})
	for _, issue := range assessment.Issues {
		log.Warn("Extraction issue", logging.Field{Key: "issue", Value: issue})
	}

	if root.SharedFlags.Output == "" {
		fmt.Printf("Store:      %s\n", record.StoreName)
		fmt.Printf("Date:       %s\n", record.Date)
		fmt.Printf("Total:      %d\n", record.Amount)
		fmt.Printf("Items:      %s\n", record.Items)
		fmt.Printf("Category:   %s\n", record.Category)
		fmt.Printf("Confidence: %d\n", record.Confidence)
		return nil
	}

	return export.WriteExpensesToCSV([]models.ExpenseRecord{record}, root.SharedFlags.Output)
}

// ResolveCategory resolves the expense category for a parsed receipt.
// The tiered classifier runs on the store name first; a null or
// below-threshold result falls through to the deterministic layers: the
// store-name keyword normalizer, then a majority vote over the auto-
// categorized line items, then the configured fallback category.
func ResolveCategory(cmd *cobra.Command, parsed models.ParsedReceipt) string {
	result := root.App.Classifier().Classify(cmd.Context(), root.UserID, parsed.StoreName)
	if !result.IsZero() && result.Confidence >= root.Cfg.Categorization.ConfidenceThreshold {
		return result.Category
	}

	if resolved := category.Normalize(parsed.StoreName, nil); resolved != category.Other {
		return resolved
	}

	if itemCategory := majorityItemCategory(parsed); itemCategory != "" {
		return itemCategory
	}

	return root.Cfg.AI.FallbackCategory
}

// majorityItemCategory auto-categorizes each line item and returns the most
// frequent concrete category, or "" when no item resolves past the default.
func majorityItemCategory(parsed models.ParsedReceipt) string {
	counts := make(map[string]int)
	for _, item := range parsed.Items {
		c := category.CategorizeItem(item.Name, parsed.StoreName)
		if c != category.Other {
			counts[c]++
		}
	}

	best := ""
	for c, n := range counts {
		if n > counts[best] {
			best = c
		}
	}
	return best
}
