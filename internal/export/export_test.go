package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"receiptcsv/receipt-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		{Date: "2025-06-01", StoreName: "セブン-イレブン", Category: "食費", Amount: 270, Items: "おにぎり; お茶", Confidence: 100},
		{Date: "2025-06-02", StoreName: "マツモトキヨシ", Category: "医療費", Amount: 1280, Items: "風邪薬", Confidence: 85},
		{Date: "2025-06-03", StoreName: "ローソン", Category: "食費", Amount: 450, Items: "弁当", Confidence: 90},
	}
}

func TestWriteAndReadExpensesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "expenses.csv")

	require.NoError(t, WriteExpensesToCSV(sampleRecords(), path))

	records, err := ReadExpensesFromCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "セブン-イレブン", records[0].StoreName)
	assert.Equal(t, 270, records[0].Amount)
	assert.Equal(t, "食費", records[0].Category)
}

func TestWriteExpensesToCSV_NilRecords(t *testing.T) {
	err := WriteExpensesToCSV(nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.Error(t, err)
}

func TestWriteExpensesToCSV_EmptyWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteExpensesToCSV([]models.ExpenseRecord{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date"))
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleRecords())

	require.Len(t, summaries, 2)
	assert.Equal(t, "医療費", summaries[0].Category)
	assert.Equal(t, 1, summaries[0].Count)
	assert.Equal(t, "1280", summaries[0].Total.String())
	assert.Equal(t, "食費", summaries[1].Category)
	assert.Equal(t, 2, summaries[1].Count)
	assert.Equal(t, "720", summaries[1].Total.String())
}

func TestWriteSummaryToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.csv")

	require.NoError(t, WriteSummaryToCSV(sampleRecords(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Category,Count,Total", lines[0])
	assert.Equal(t, "医療費,1,1280", lines[1])
	assert.Equal(t, "食費,2,720", lines[2])
	assert.Equal(t, "合計,3,2000", lines[3])
}

func TestWriteSummaryToCSV_RespectsDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummaryToCSV(sampleRecords(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Category;Count;Total"))
}

func TestGrandTotal(t *testing.T) {
	assert.Equal(t, "2000", GrandTotal(sampleRecords()).String())
	assert.True(t, GrandTotal(nil).IsZero())
}
