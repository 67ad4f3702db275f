// Package classifier resolves a short expense description to an expense
// category through a tiered pipeline:
//  1. Per-(user, description) result cache with a fixed time-to-live
//  2. Fast local keyword matching, which absorbs most traffic at no cost
//  3. External semantic classification under a hard timeout, with the
//     response normalized against the user's allowed category names
//
// A failing external tier yields a null result, never an error; callers
// layer their own confidence threshold and default-category policy on top.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"receiptcsv/receipt-csv/internal/category"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"

	"github.com/sony/gobreaker/v2"
)

const (
	localConfidence = 0.8
	localReasoning  = "fast local keyword matching"

	breakerOpenTimeout         = 30 * time.Second
	breakerConsecutiveFailures = 5
)

// localKeywords is the curated fast-path table. Entries are scanned in
// order; the first category with a substring match against the lowercased
// description wins. Keep it small: it exists to keep common phrases off the
// external API, not to be exhaustive.
var localKeywords = []struct {
	category string
	keywords []string
}{
	{"食費", []string{"ランチ", "ディナー", "朝食", "昼食", "夕食", "弁当", "カフェ", "レストラン", "居酒屋", "コンビニ", "スーパー", "外食", "食事"}},
	{"日用品", []string{"ティッシュ", "洗剤", "シャンプー", "日用品", "雑貨"}},
	{"交通費", []string{"電車", "バス", "タクシー", "ガソリン", "定期券", "高速", "駐車場"}},
	{"娯楽", []string{"映画", "カラオケ", "ゲーム", "ライブ", "コンサート"}},
	{"医療費", []string{"病院", "薬局", "クリニック", "歯医者", "診察"}},
	{"水道光熱費", []string{"電気代", "ガス代", "水道代", "光熱費"}},
	{"通信費", []string{"携帯代", "スマホ代", "通信費", "wifi"}},
	{"サブスク", []string{"netflix", "spotify", "サブスク"}},
}

// Classifier orchestrates the tiered classification pipeline. All
// collaborators are injected; the caches carry their own TTLs.
type Classifier struct {
	ai             AIClient
	source         CategorySource
	cache          *ResultCache
	listCache      *CategoryListCache
	breaker        *gobreaker.CircuitBreaker[string]
	timeout        time.Duration
	stats          *models.ClassificationStats
	logger         logging.Logger
	aliasOverlay   []category.Alias
	keywordOverlay []models.CategoryConfig
}

// Option customizes a Classifier at construction time.
type Option func(*Classifier)

// WithAliasOverlay layers user-defined alias entries on top of the built-in
// table when normalizing external results. File order is the match order.
func WithAliasOverlay(aliases []category.Alias) Option {
	return func(c *Classifier) {
		c.aliasOverlay = aliases
	}
}

// WithKeywordOverlay layers user-defined per-category keywords onto the local
// fast path. Overlay entries are scanned before the built-in table.
func WithKeywordOverlay(configs []models.CategoryConfig) Option {
	return func(c *Classifier) {
		c.keywordOverlay = configs
	}
}

// New creates a Classifier. The timeout bounds each external call; the
// circuit breaker opens after repeated consecutive failures so a degraded
// upstream stops costing a full timeout per request.
func New(ai AIClient, source CategorySource, cache *ResultCache, listCache *CategoryListCache, timeout time.Duration, logger logging.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Classifier{
		ai:        ai,
		source:    source,
		cache:     cache,
		listCache: listCache,
		timeout:   timeout,
		stats:     models.NewClassificationStats(),
		logger:    logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "classification",
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state change",
				logging.Field{Key: logging.FieldOperation, Value: name},
				logging.Field{Key: "from", Value: from.String()},
				logging.Field{Key: "to", Value: to.String()},
			)
		},
	})

	return c
}

// Stats exposes the process-lifetime counters.
func (c *Classifier) Stats() *models.ClassificationStats {
	return c.stats
}

// Classify resolves a description to a category for one user. It never
// returns an error: any external failure, timeout, or unparseable response
// degrades to a zero result that callers treat as "no opinion".
func (c *Classifier) Classify(ctx context.Context, userID, description string) models.ClassificationResult {
	if cached, ok := c.cache.Get(userID, description); ok {
		c.logger.Debug("Classification cache hit",
			logging.Field{Key: logging.FieldUserID, Value: userID},
			logging.Field{Key: logging.FieldDescription, Value: description},
		)
		return cached
	}

	if result, ok := c.classifyLocal(description); ok {
		c.logger.Debug("Local keyword classification hit",
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: logging.FieldCategory, Value: result.Category},
			logging.Field{Key: logging.FieldTier, Value: "local"},
		)
		c.stats.RecordSuccess(result.Confidence)
		c.cache.Put(userID, description, result)
		return result
	}

	result := c.classifyExternal(ctx, userID, description)
	if result.IsZero() {
		c.stats.RecordFallback()
		return result
	}

	c.stats.RecordSuccess(result.Confidence)
	c.cache.Put(userID, description, result)
	return result
}

// classifyLocal scans the user keyword overlay, then the curated built-in
// table. First match wins with a fixed high confidence; no external call
// follows a hit.
func (c *Classifier) classifyLocal(description string) (models.ClassificationResult, bool) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return models.ClassificationResult{}, false
	}
	for _, entry := range c.keywordOverlay {
		for _, kw := range entry.Keywords {
			if strings.Contains(desc, strings.ToLower(kw)) {
				return models.ClassificationResult{
					Category:   entry.Name,
					Confidence: localConfidence,
					Reasoning:  localReasoning,
				}, true
			}
		}
	}
	for _, entry := range localKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(desc, strings.ToLower(kw)) {
				return models.ClassificationResult{
					Category:   entry.category,
					Confidence: localConfidence,
					Reasoning:  localReasoning,
				}, true
			}
		}
	}
	return models.ClassificationResult{}, false
}

func (c *Classifier) classifyExternal(ctx context.Context, userID, description string) models.ClassificationResult {
	available := c.availableCategories(ctx, userID)
	prompt := buildPrompt(description, available)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.breaker.Execute(func() (string, error) {
		return c.ai.GenerateClassification(callCtx, prompt)
	})
	if err != nil {
		c.logger.WithError(err).Warn("External classification failed",
			logging.Field{Key: logging.FieldUserID, Value: userID},
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: logging.FieldTier, Value: "external"},
		)
		return models.ClassificationResult{}
	}

	result, err := parseClassificationResponse(raw)
	if err != nil {
		c.logger.WithError(err).Warn("Unparseable classification response",
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: "raw_response", Value: raw},
		)
		return models.ClassificationResult{}
	}

	if result.IsZero() {
		return models.ClassificationResult{}
	}

	result.Category = category.NormalizeWith(result.Category, available, c.aliasOverlay)
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}
	return result
}

// availableCategories resolves the user's allowed category names through the
// list cache, then the category source, then the built-in defaults.
func (c *Classifier) availableCategories(ctx context.Context, userID string) []string {
	if cached, ok := c.listCache.Get(userID); ok {
		return cached
	}

	categories, err := c.source.Categories(ctx, userID)
	if err != nil || len(categories) == 0 {
		if err != nil {
			c.logger.WithError(err).Warn("Category source unavailable, using defaults",
				logging.Field{Key: logging.FieldUserID, Value: userID},
			)
		}
		return category.DefaultSet()
	}

	c.listCache.Put(userID, categories)
	return categories
}

func buildPrompt(description string, available []string) string {
	return fmt.Sprintf(`あなたは家計簿アプリの支出カテゴリ分類器です。
次の支出内容を、以下のカテゴリのいずれか1つに分類してください。

カテゴリ一覧: %s

支出内容: %s

必ず次のJSON形式のみで回答してください。
{"category": "選んだカテゴリ名", "confidence": 0.0から1.0の数値, "reasoning": "短い理由"}`,
		strings.Join(available, ", "),
		description,
	)
}

// parseClassificationResponse extracts a ClassificationResult from the raw
// response text, tolerating a fenced code block (plain or language-tagged)
// around the JSON object.
func parseClassificationResponse(raw string) (models.ClassificationResult, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var result models.ClassificationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return models.ClassificationResult{}, fmt.Errorf("invalid classification response: %w", err)
	}
	return result, nil
}
