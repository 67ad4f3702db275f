// Package receipt composes the store-format registry and the field extractors
// into one structured parse of raw OCR receipt text, scores the result, and
// falls back to a simpler single-pass parse when the primary result scores
// poorly. Parsing is synchronous, CPU-bound, and never returns an error: bad
// input surfaces as a low confidence score with actionable issues.
package receipt

import (
	"receiptcsv/receipt-csv/internal/extract"
	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
	"receiptcsv/receipt-csv/internal/normalize"
	"receiptcsv/receipt-csv/internal/storeformat"
)

// fallbackThreshold is the normalized confidence below which the legacy
// parser's result is considered as a replacement.
const fallbackThreshold = 0.5

// Parser assembles parsed receipts from raw OCR text.
type Parser struct {
	registry     *storeformat.Registry
	logger       logging.Logger
	maxItemPrice int
	minYear      int
	maxYear      int
}

// Option configures a Parser.
type Option func(*Parser)

// WithItemPriceLimit overrides the plausible single-item price bound.
func WithItemPriceLimit(max int) Option {
	return func(p *Parser) { p.maxItemPrice = max }
}

// WithYearWindow overrides the acceptable receipt-year window.
func WithYearWindow(min, max int) Option {
	return func(p *Parser) {
		p.minYear = min
		p.maxYear = max
	}
}

// NewParser creates a Parser over the given format registry.
func NewParser(registry *storeformat.Registry, logger logging.Logger, opts ...Option) *Parser {
	if registry == nil {
		registry = storeformat.NewRegistry()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	p := &Parser{
		registry:     registry,
		logger:       logger,
		maxItemPrice: extract.MaxItemPrice,
		minYear:      extract.DefaultMinYear,
		maxYear:      extract.DefaultMaxYear,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts raw OCR text into a structured receipt plus a confidence
// assessment. When the primary parse scores below the fallback threshold and
// the legacy single-pass parse recovered a strictly larger total, the legacy
// result replaces the primary wholesale. The replacement is all-or-nothing:
// no field-by-field merging, a deliberate bias toward not under-reporting
// spend. The returned assessment always describes the primary parse.
func (p *Parser) Parse(raw string) (models.ParsedReceipt, models.Assessment) {
	lines := normalize.Lines(raw)
	format := p.registry.Detect(lines)

	amount := extract.Amount(lines, format)
	items := extract.Items(lines, format.ItemPattern, p.maxItemPrice)

	result := models.ParsedReceipt{
		StoreName: format.Name,
		Items:     items,
		Date:      extract.Date(lines, p.minYear, p.maxYear),
	}

	// Total preference order: merchant-declared total, then the sum of the
	// extracted items, then the bare-number scan.
	switch {
	case amount.FromPattern:
		result.Total = amount.Total
	case result.ItemTotal() > 0:
		result.Total = result.ItemTotal()
	default:
		result.Total = amount.Total
	}

	assessment := Assess(result, raw)

	if assessment.Normalized() < fallbackThreshold {
		fallback := parseLegacy(lines)
		if fallback.Total > result.Total {
			p.logger.WithFields(
				logging.Field{Key: logging.FieldConfidence, Value: assessment.Confidence},
				logging.Field{Key: "primary_total", Value: result.Total},
				logging.Field{Key: "fallback_total", Value: fallback.Total},
			).Debug("Low confidence parse replaced by legacy fallback result")
			result = fallback
		}
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldStore, Value: result.StoreName},
		logging.Field{Key: logging.FieldTotal, Value: result.Total},
		logging.Field{Key: logging.FieldCount, Value: len(result.Items)},
		logging.Field{Key: logging.FieldConfidence, Value: assessment.Confidence},
	).Debug("Parsed receipt text")

	return result, assessment
}
