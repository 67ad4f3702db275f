package classifier

import (
	"testing"
	"time"

	"receiptcsv/receipt-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResultCache_HitWithinTTL(t *testing.T) {
	cache := NewResultCache(15 * time.Minute)
	result := models.ClassificationResult{Category: "食費", Confidence: 0.8}

	cache.Put("user1", "ランチ", result)

	got, ok := cache.Get("user1", "ランチ")
	assert.True(t, ok)
	assert.Equal(t, result, got)
}

func TestResultCache_KeyNormalization(t *testing.T) {
	cache := NewResultCache(15 * time.Minute)
	cache.Put("user1", "  Lunch  ", models.ClassificationResult{Category: "食費", Confidence: 0.8})

	_, ok := cache.Get("user1", "lunch")
	assert.True(t, ok, "case and surrounding whitespace must not split entries")
}

func TestResultCache_ExpiryIsLazy(t *testing.T) {
	cache := NewResultCache(15 * time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache.now = func() time.Time { return now }

	cache.Put("user1", "ランチ", models.ClassificationResult{Category: "食費", Confidence: 0.8})

	now = base.Add(14 * time.Minute)
	_, ok := cache.Get("user1", "ランチ")
	assert.True(t, ok)

	now = base.Add(16 * time.Minute)
	_, ok = cache.Get("user1", "ランチ")
	assert.False(t, ok, "entries past the TTL are misses")
}

func TestResultCache_UserIsolation(t *testing.T) {
	cache := NewResultCache(15 * time.Minute)
	cache.Put("user1", "ランチ", models.ClassificationResult{Category: "食費", Confidence: 0.8})

	_, ok := cache.Get("user2", "ランチ")
	assert.False(t, ok)
}

func TestResultCache_Clear(t *testing.T) {
	cache := NewResultCache(15 * time.Minute)
	cache.Put("user1", "ランチ", models.ClassificationResult{Category: "食費", Confidence: 0.8})

	cache.Clear()

	_, ok := cache.Get("user1", "ランチ")
	assert.False(t, ok)
}

func TestCategoryListCache_TTL(t *testing.T) {
	cache := NewCategoryListCache(30 * time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache.now = func() time.Time { return now }

	cache.Put("user1", []string{"食費", "その他"})

	got, ok := cache.Get("user1")
	assert.True(t, ok)
	assert.Equal(t, []string{"食費", "その他"}, got)

	now = base.Add(31 * time.Minute)
	_, ok = cache.Get("user1")
	assert.False(t, ok)
}
