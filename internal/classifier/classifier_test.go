package classifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"receiptcsv/receipt-csv/internal/category"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAIClient struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (m *mockAIClient) GenerateClassification(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockAIClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCategorySource struct {
	categories []string
	err        error
	calls      int
}

func (m *mockCategorySource) Categories(ctx context.Context, userID string) ([]string, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func newTestClassifier(ai AIClient, source CategorySource) *Classifier {
	return New(ai, source,
		NewResultCache(15*time.Minute),
		NewCategoryListCache(30*time.Minute),
		5*time.Second,
		logging.NewMockLogger(),
	)
}

func TestClassify_LocalKeywordHit(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9}`}
	c := newTestClassifier(ai, &mockCategorySource{})

	result := c.Classify(context.Background(), "user1", "ランチ")

	assert.Equal(t, "食費", result.Category)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, "fast local keyword matching", result.Reasoning)
	assert.Equal(t, 0, ai.callCount(), "local hit must not reach the external tier")
}

func TestClassify_LocalHitIsCachedAndIdempotent(t *testing.T) {
	ai := &mockAIClient{}
	c := newTestClassifier(ai, &mockCategorySource{})

	first := c.Classify(context.Background(), "user1", "タクシー")
	second := c.Classify(context.Background(), "user1", "タクシー")

	assert.Equal(t, first, second)
	assert.Equal(t, "交通費", first.Category)
	assert.Equal(t, 0, ai.callCount())

	total, successful, _, _ := c.Stats().Snapshot()
	assert.Equal(t, 1, total, "cache hit must not count as a second attempt")
	assert.Equal(t, 1, successful)
}

func TestClassify_ExternalSuccess(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9,"reasoning":"concert ticket"}`}
	source := &mockCategorySource{categories: []string{"食費", "娯楽", "その他"}}
	c := newTestClassifier(ai, source)

	result := c.Classify(context.Background(), "user1", "チケット購入")

	assert.Equal(t, "娯楽", result.Category)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, 1, ai.callCount())
}

func TestClassify_ExternalResultIsCached(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9}`}
	source := &mockCategorySource{categories: []string{"娯楽", "その他"}}
	c := newTestClassifier(ai, source)

	first := c.Classify(context.Background(), "user1", "謎の買い物")
	second := c.Classify(context.Background(), "user1", "  謎の買い物  ")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, ai.callCount(), "second call must be served from the cache")
}

func TestClassify_FencedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain fence", "```\n{\"category\":\"娯楽\",\"confidence\":0.7}\n```"},
		{"json fence", "```json\n{\"category\":\"娯楽\",\"confidence\":0.7}\n```"},
		{"no fence", `{"category":"娯楽","confidence":0.7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &mockAIClient{response: tt.response}
			source := &mockCategorySource{categories: []string{"娯楽", "その他"}}
			c := newTestClassifier(ai, source)

			result := c.Classify(context.Background(), "user1", "謎の買い物")
			assert.Equal(t, "娯楽", result.Category)
		})
	}
}

func TestClassify_ExternalFailureYieldsNullResult(t *testing.T) {
	ai := &mockAIClient{err: errors.New("upstream unavailable")}
	c := newTestClassifier(ai, &mockCategorySource{categories: []string{"食費"}})

	result := c.Classify(context.Background(), "user1", "謎の買い物")

	assert.True(t, result.IsZero())
	total, _, fallback, _ := c.Stats().Snapshot()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, fallback)
}

func TestClassify_UnparseableResponseYieldsNullResult(t *testing.T) {
	ai := &mockAIClient{response: "I think this is probably food related."}
	c := newTestClassifier(ai, &mockCategorySource{categories: []string{"食費"}})

	result := c.Classify(context.Background(), "user1", "謎の買い物")
	assert.True(t, result.IsZero())
}

func TestClassify_EmptyCategoryIsDiscarded(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"","confidence":0.9}`}
	c := newTestClassifier(ai, &mockCategorySource{categories: []string{"食費"}})

	result := c.Classify(context.Background(), "user1", "謎の買い物")
	assert.True(t, result.IsZero())
}

func TestClassify_CategorySourceFailureFallsBackToDefaults(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9}`}
	source := &mockCategorySource{err: errors.New("store down")}
	c := newTestClassifier(ai, source)

	result := c.Classify(context.Background(), "user1", "謎の買い物")
	assert.Equal(t, "娯楽", result.Category)
}

func TestClassify_CategoryListIsCachedPerUser(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9}`}
	source := &mockCategorySource{categories: []string{"娯楽", "その他"}}
	c := newTestClassifier(ai, source)

	c.Classify(context.Background(), "user1", "謎の買い物A")
	c.Classify(context.Background(), "user1", "謎の買い物B")

	assert.Equal(t, 1, source.calls, "second classification must reuse the cached list")
}

func TestClassify_ResultNormalizedIntoAllowedSet(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"food","confidence":0.9}`}
	source := &mockCategorySource{categories: []string{"食費", "その他"}}
	c := newTestClassifier(ai, source)

	result := c.Classify(context.Background(), "user1", "謎の買い物")
	assert.Equal(t, "食費", result.Category)
}

func TestClassify_ConfidenceClamped(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":3.5}`}
	source := &mockCategorySource{categories: []string{"娯楽"}}
	c := newTestClassifier(ai, source)

	result := c.Classify(context.Background(), "user1", "謎の買い物")
	assert.Equal(t, 1.0, result.Confidence)
}

func TestClassify_KeywordOverlayServesLocally(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"娯楽","confidence":0.9}`}
	overlay := []models.CategoryConfig{
		{Name: "推し活", Keywords: []string{"チェキ", "グッズ"}},
	}
	c := New(ai, &mockCategorySource{},
		NewResultCache(15*time.Minute),
		NewCategoryListCache(30*time.Minute),
		5*time.Second,
		logging.NewMockLogger(),
		WithKeywordOverlay(overlay),
	)

	result := c.Classify(context.Background(), "user1", "推しのグッズ購入")

	assert.Equal(t, "推し活", result.Category)
	assert.Equal(t, 0.8, result.Confidence)
	assert.Equal(t, 0, ai.callCount(), "overlay keyword hit must not reach the external tier")
}

func TestClassify_AliasOverlayNormalizesExternalResult(t *testing.T) {
	ai := &mockAIClient{response: `{"category":"ガチャ","confidence":0.9}`}
	source := &mockCategorySource{categories: []string{"娯楽", "その他"}}
	c := New(ai, source,
		NewResultCache(15*time.Minute),
		NewCategoryListCache(30*time.Minute),
		5*time.Second,
		logging.NewMockLogger(),
		WithAliasOverlay([]category.Alias{{Alias: "ガチャ", Category: "娯楽"}}),
	)

	result := c.Classify(context.Background(), "user1", "謎の買い物")

	assert.Equal(t, "娯楽", result.Category)
	assert.Equal(t, 1, ai.callCount())
}

func TestParseClassificationResponse_Invalid(t *testing.T) {
	_, err := parseClassificationResponse("not json at all")
	require.Error(t, err)
}
