package classifier

import (
	"strings"
	"sync"
	"time"

	"receiptcsv/receipt-csv/internal/models"
)

// cacheKey identifies one classification request. Descriptions are folded to
// their lowercase trimmed form so repeated requests that differ only in case
// or surrounding whitespace share an entry.
type cacheKey struct {
	userID      string
	description string
}

type cacheEntry struct {
	result   models.ClassificationResult
	storedAt time.Time
}

// ResultCache holds classification results per (user, description) with a
// fixed time-to-live. Expired entries are treated as misses on lookup and
// overwritten on the next store; there is no background eviction.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[cacheKey]cacheEntry
}

// NewResultCache creates a cache with the given entry lifetime.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[cacheKey]cacheEntry),
	}
}

func normalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Get returns the cached result for the key when present and still fresh.
func (c *ResultCache) Get(userID, description string) (models.ClassificationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID: userID, description: normalizeDescription(description)}
	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.storedAt) > c.ttl {
		return models.ClassificationResult{}, false
	}
	return entry.result, true
}

// Put stores a result for the key, stamping it with the current time.
func (c *ResultCache) Put(userID, description string, result models.ClassificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID: userID, description: normalizeDescription(description)}
	c.entries[key] = cacheEntry{result: result, storedAt: c.now()}
}

// Clear drops every entry.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

type listEntry struct {
	categories []string
	storedAt   time.Time
}

// CategoryListCache holds each user's fetched category names so a burst of
// classifications does not re-fetch the list per request. Same lazy-expiry
// semantics as ResultCache.
type CategoryListCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]listEntry
}

// NewCategoryListCache creates a cache with the given entry lifetime.
func NewCategoryListCache(ttl time.Duration) *CategoryListCache {
	return &CategoryListCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]listEntry),
	}
}

// Get returns the cached category list for the user when still fresh.
func (c *CategoryListCache) Get(userID string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[userID]
	if !ok || c.now().Sub(entry.storedAt) > c.ttl {
		return nil, false
	}
	return entry.categories, true
}

// Put stores the user's category list.
func (c *CategoryListCache) Put(userID string, categories []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = listEntry{categories: categories, storedAt: c.now()}
}

// Clear drops every entry.
func (c *CategoryListCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]listEntry)
}
