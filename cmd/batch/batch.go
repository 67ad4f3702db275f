// Package batch handles batch processing of receipt text files
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"receiptcsv/receipt-csv/cmd/parse"
	"receiptcsv/receipt-csv/cmd/root"
	"receiptcsv/receipt-csv/internal/export"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process receipt text files from a directory",
	Long: `Batch processes every .txt file in the input directory, parses each
as OCR receipt text, resolves categories, and writes one combined expenses.csv
plus a per-category summary.csv to the output directory. Files that fail are
skipped and reported; the batch continues.

With --from-csv, a previously exported expenses CSV is re-summarized instead
of parsing receipt files.

Examples:
  receipt-csv batch --input-dir receipts/ --output-dir out/
  receipt-csv batch --from-csv out/expenses.csv --output-dir out/`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.InputDir, "input-dir", "", "Directory containing receipt .txt files")
	Cmd.Flags().StringVar(&root.OutputDir, "output-dir", "", "Directory for the generated CSV files")
	Cmd.Flags().StringVar(&root.FromCSV, "from-csv", "", "Re-summarize a previously exported expenses CSV instead of parsing receipts")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	log := root.App.Logger()

	if root.FromCSV != "" {
		return summarizeExisting(root.FromCSV, root.OutputDir)
	}
	if root.InputDir == "" {
		return fmt.Errorf("either --input-dir or --from-csv is required")
	}

	log.Info("Batch processing receipts",
		logging.Field{Key: "input_dir", Value: root.InputDir},
		logging.Field{Key: "output_dir", Value: root.OutputDir})

	entries, err := os.ReadDir(root.InputDir)
	if err != nil {
		return fmt.Errorf("error reading input directory: %w", err)
	}

	var records []models.ExpenseRecord
	var failed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}

		path := filepath.Join(root.InputDir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).Error("Failed to read receipt file",
				logging.Field{Key: logging.FieldFile, Value: path})
			failed++
			continue
		}

		parsed, assessment := root.App.Parser().Parse(string(raw))
		category := parse.ResolveCategory(cmd, parsed)

		record := models.NewExpenseRecord(parsed, category, assessment)
		record.SourceFile = entry.Name()
		records = append(records, record)

		log.Info("Processed receipt",
			logging.Field{Key: logging.FieldFile, Value: entry.Name()},
			logging.Field{Key: logging.FieldStore, Value: parsed.StoreName},
			logging.Field{Key: logging.FieldTotal, Value: parsed.Total},
			logging.Field{Key: logging.FieldConfidence, Value: assessment.Confidence})
	}

	if len(records) == 0 {
		return fmt.Errorf("no receipt text files processed in %s", root.InputDir)
	}

	expensesFile := filepath.Join(root.OutputDir, "expenses.csv")
	if err := export.WriteExpensesToCSV(records, expensesFile); err != nil {
		return err
	}

	if err := export.WriteSummaryToCSV(records, filepath.Join(root.OutputDir, "summary.csv")); err != nil {
		return err
	}

	log.Info("Batch processing complete",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "failed", Value: failed},
		logging.Field{Key: logging.FieldTotal, Value: export.GrandTotal(records).String()})
	root.App.Classifier().Stats().LogSummary(log)
	return nil
}

// summarizeExisting re-aggregates an earlier expenses export into a fresh
// summary.csv without re-parsing any receipt files.
func summarizeExisting(csvPath, outDir string) error {
	records, err := export.ReadExpensesFromCSV(csvPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no expense records found in %s", csvPath)
	}
	return export.WriteSummaryToCSV(records, filepath.Join(outDir, "summary.csv"))
}
