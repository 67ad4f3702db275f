package parse

import (
	"testing"

	"receiptcsv/receipt-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMajorityItemCategory(t *testing.T) {
	parsed := models.ParsedReceipt{
		StoreName: "西友",
		Items: []models.ReceiptItem{
			{Name: "おにぎり", Price: 150},
			{Name: "お茶", Price: 120},
			{Name: "ティッシュ", Price: 300},
		},
	}
	assert.Equal(t, "食費", majorityItemCategory(parsed))
}

func TestMajorityItemCategory_NoResolvableItems(t *testing.T) {
	parsed := models.ParsedReceipt{
		Items: []models.ReceiptItem{
			{Name: "謎の商品", Price: 100},
		},
	}
	assert.Equal(t, "", majorityItemCategory(parsed))
}
