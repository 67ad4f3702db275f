// Package export writes expense records to CSV files and aggregates them
// into per-category summaries.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via the csv.delimiter
// setting.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadExpensesFromCSV reads a previously exported CSV file back into
// expense records so an earlier export can be re-summarized.
func ReadExpensesFromCSV(filePath string) ([]models.ExpenseRecord, error) {
	log.Info("Reading expense CSV file",
		logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var records []models.ExpenseRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Read expense records",
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// WriteExpensesToCSV writes expense records to a CSV file. The output
// directory is created when missing.
func WriteExpensesToCSV(records []models.ExpenseRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil expense records to CSV")
	}

	log.Info("Writing expense records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

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

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote expense records",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}
