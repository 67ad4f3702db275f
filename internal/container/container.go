// Package container provides dependency injection for the receipt-csv
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"receiptcsv/receipt-csv/internal/category"
	"receiptcsv/receipt-csv/internal/classifier"
	"receiptcsv/receipt-csv/internal/config"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
	"receiptcsv/receipt-csv/internal/receipt"
	"receiptcsv/receipt-csv/internal/store"
	"receiptcsv/receipt-csv/internal/storeformat"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getter methods only.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.CategoryStore
	registry   *storeformat.Registry
	parser     *receipt.Parser
	classifier *classifier.Classifier
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	categoryStore := store.NewCategoryStore(
		cfg.Data.CategoriesFile,
		cfg.Data.AliasesFile,
		cfg.Data.StoreFormatsFile,
		logger,
	)

	registry := buildRegistry(categoryStore, logger)

	parser := receipt.NewParser(registry, logger,
		receipt.WithItemPriceLimit(cfg.Parser.MaxItemPrice),
		receipt.WithYearWindow(cfg.Parser.MinYear, cfg.Parser.MaxYear),
	)

	var aiClient classifier.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiClient = classifier.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, logger)
		logger.Info("AI classification enabled",
			logging.Field{Key: "model", Value: cfg.AI.Model})
	} else {
		aiClient = disabledAIClient{}
		logger.Info("AI classification disabled")
	}

	tiered := classifier.New(
		aiClient,
		&storeCategorySource{store: categoryStore},
		classifier.NewResultCache(time.Duration(cfg.Cache.ClassificationTTLMinutes)*time.Minute),
		classifier.NewCategoryListCache(time.Duration(cfg.Cache.CategoryListTTLMinutes)*time.Minute),
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
		logger,
		classifier.WithAliasOverlay(loadAliasOverlay(categoryStore, logger)),
		classifier.WithKeywordOverlay(loadKeywordOverlay(categoryStore, logger)),
	)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      categoryStore,
		registry:   registry,
		parser:     parser,
		classifier: tiered,
	}, nil
}

// buildRegistry layers any user-supplied store format overlays on top of the
// built-in registry entries. Overlay load failures degrade to built-ins.
func buildRegistry(categoryStore *store.CategoryStore, logger logging.Logger) *storeformat.Registry {
	overlay, err := categoryStore.LoadStoreFormats()
	if err != nil {
		logger.WithError(err).Warn("Failed to load store format overlays, using built-ins")
		return storeformat.NewRegistry()
	}
	if len(overlay) == 0 {
		return storeformat.NewRegistry()
	}
	return storeformat.NewRegistryWithOverlay(overlay)
}

// loadAliasOverlay reads user-defined alias entries for the classifier's
// normalization step. Load failures degrade to the built-in table alone.
func loadAliasOverlay(categoryStore *store.CategoryStore, logger logging.Logger) []category.Alias {
	configs, err := categoryStore.LoadAliases()
	if err != nil {
		logger.WithError(err).Warn("Failed to load alias overlays, using built-ins")
		return nil
	}
	overlay := make([]category.Alias, 0, len(configs))
	for _, a := range configs {
		overlay = append(overlay, category.Alias{Alias: a.Alias, Category: a.Category})
	}
	return overlay
}

// loadKeywordOverlay reads user-defined per-category keywords for the
// classifier's local fast path. Load failures degrade to the built-in table.
func loadKeywordOverlay(categoryStore *store.CategoryStore, logger logging.Logger) []models.CategoryConfig {
	configs, err := categoryStore.LoadCategories()
	if err != nil {
		logger.WithError(err).Warn("Failed to load category keyword overlays, using built-ins")
		return nil
	}
	return configs
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the category data store.
func (c *Container) Store() *store.CategoryStore { return c.store }

// Registry returns the store format registry.
func (c *Container) Registry() *storeformat.Registry { return c.registry }

// Parser returns the receipt parser.
func (c *Container) Parser() *receipt.Parser { return c.parser }

// Classifier returns the tiered category classifier.
func (c *Container) Classifier() *classifier.Classifier { return c.classifier }

// storeCategorySource adapts the CategoryStore to the classifier's
// CategorySource interface. Category names come from the user-editable
// categories file; the classifier substitutes its built-in defaults when the
// list is empty or the load fails.
type storeCategorySource struct {
	store *store.CategoryStore
}

func (s *storeCategorySource) Categories(ctx context.Context, userID string) ([]string, error) {
	configs, err := s.store.LoadCategories()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		names = append(names, c.Name)
	}
	return names, nil
}

// disabledAIClient stands in when AI classification is turned off, failing
// every external call so the classifier degrades to its null result.
type disabledAIClient struct{}

func (disabledAIClient) GenerateClassification(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("ai classification is disabled")
}
