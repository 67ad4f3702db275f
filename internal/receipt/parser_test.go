package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
	"receiptcsv/receipt-csv/internal/normalize"
	"receiptcsv/receipt-csv/internal/storeformat"
)

func newTestParser() *Parser {
	return NewParser(storeformat.NewRegistry(), &logging.MockLogger{})
}

func TestParse_SevenElevenExample(t *testing.T) {
	raw := "セブン-イレブン\nおにぎり ¥150\nお茶 ¥120\n合計 ¥270"

	result, _ := newTestParser().Parse(raw)
	assert.Equal(t, "セブン-イレブン", result.StoreName)
	assert.Equal(t, 270, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, models.ReceiptItem{Name: "おにぎり", Price: 150}, result.Items[0])
	assert.Equal(t, models.ReceiptItem{Name: "お茶", Price: 120}, result.Items[1])
}

func TestParse_FullWidthInput(t *testing.T) {
	raw := "ファミリーマート 新宿三丁目店\nパン　￥２１０\n合計　￥２１０\n２０２４／０１／１５\nまたのご来店をお待ちしております"

	result, assessment := newTestParser().Parse(raw)
	assert.Equal(t, "ファミリーマート", result.StoreName)
	assert.Equal(t, 210, result.Total)
	assert.Equal(t, "2024-01-15", result.Date)
	assert.Equal(t, 100, assessment.Confidence)
}

func TestParse_TotalFallsBackToItemSum(t *testing.T) {
	// No recognizable total line, but items were extracted: total is their sum.
	raw := "ローソン 渋谷店\nコーヒー ¥380\nケーキ ¥450\nまたお越しくださいませ"

	result, _ := newTestParser().Parse(raw)
	assert.Equal(t, 830, result.Total)
}

func TestParse_EmptyInput(t *testing.T) {
	result, assessment := newTestParser().Parse("")
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.StoreName)
	assert.Empty(t, result.Items)
	assert.Less(t, assessment.Confidence, 50)
}

func TestParse_LegacyFallbackOverridesOnLargerTotal(t *testing.T) {
	// Garbled text: no store signature, no total marker, no parsable item
	// line for the primary parser, and the only numeric token is too large
	// for the bare-number stage. The legacy scan still believes it, so the
	// primary parse scores low and the legacy result wins wholesale.
	raw := "xxxx\n999999 yyy zz"

	result, assessment := newTestParser().Parse(raw)
	assert.Less(t, assessment.Confidence, 50)
	assert.Equal(t, "xxxx", result.StoreName, "legacy result replaces primary wholesale")
	assert.Equal(t, 999999, result.Total)
}

func TestParse_AssessmentDescribesPrimaryParse(t *testing.T) {
	raw := "xxxx\n999999 yyy zz"

	_, assessment := newTestParser().Parse(raw)
	// The originally computed confidence metadata is preserved even though
	// the fallback replaced the receipt fields.
	assert.NotEmpty(t, assessment.Issues)
}

func TestParseLegacy(t *testing.T) {
	lines := normalize.Lines("個人商店\nりんご ¥100\nみかん 80円\n2024/03/09")

	result := parseLegacy(lines)
	assert.Equal(t, "個人商店", result.StoreName)
	assert.Equal(t, "2024-03-09", result.Date)
	assert.Equal(t, 100, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "りんご", result.Items[0].Name)
}
