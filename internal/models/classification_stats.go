// Package models provides the data structures used throughout the application.
package models

import (
	"sync"

	"receiptcsv/receipt-csv/internal/logging"
)

// ClassificationStats tracks process-lifetime statistics for category
// classification. The counters exist for operational visibility only and
// carry no persistence guarantee across restarts.
type ClassificationStats struct {
	mu             sync.Mutex
	Total          int     // Total number of classification attempts
	Successful     int     // Attempts that produced a concrete category
	Fallback       int     // Attempts that fell through to a null/default result
	MeanConfidence float64 // Running mean confidence over successful attempts
}

// NewClassificationStats creates a new ClassificationStats instance
func NewClassificationStats() *ClassificationStats {
	return &ClassificationStats{}
}

// RecordSuccess counts one successful attempt and folds its confidence into
// the running mean incrementally.
func (cs *ClassificationStats) RecordSuccess(confidence float64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.Total++
	cs.Successful++
	cs.MeanConfidence += (confidence - cs.MeanConfidence) / float64(cs.Successful)
}

// RecordFallback counts one attempt that produced no concrete category.
func (cs *ClassificationStats) RecordFallback() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.Total++
	cs.Fallback++
}

// Snapshot returns a copy of the current counters.
func (cs *ClassificationStats) Snapshot() (total, successful, fallback int, meanConfidence float64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.Total, cs.Successful, cs.Fallback, cs.MeanConfidence
}

// GetSuccessRate calculates the success rate as a percentage
func (cs *ClassificationStats) GetSuccessRate() float64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Successful) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of classification statistics
func (cs *ClassificationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	total, successful, fallback, mean := cs.Snapshot()
	logger.Info("Classification summary",
		logging.Field{Key: "total_attempts", Value: total},
		logging.Field{Key: "successful", Value: successful},
		logging.Field{Key: "fallback", Value: fallback},
		logging.Field{Key: "mean_confidence", Value: mean},
		logging.Field{Key: "success_rate", Value: cs.GetSuccessRate()},
	)
}
