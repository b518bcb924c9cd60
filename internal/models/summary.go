package models

import (
	"dmeyer/txn-classify/internal/logging"
)

// ClassificationSummary aggregates classification results over a run.
type ClassificationSummary struct {
	Total             int
	Categorized       int
	Uncategorized     int
	AverageConfidence float64
	CategoryBreakdown map[string]int
	MethodBreakdown   map[string]int
}

// LogSummary logs the classification summary.
func (s ClassificationSummary) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Classification summary",
		logging.Field{Key: "total_transactions", Value: s.Total},
		logging.Field{Key: "categorized", Value: s.Categorized},
		logging.Field{Key: "uncategorized", Value: s.Uncategorized},
		logging.Field{Key: "average_confidence", Value: s.AverageConfidence},
	)
}

// ValidationSummary aggregates validation findings over a run.
type ValidationSummary struct {
	TotalErrors int
	ErrorKinds  map[string]int
}

// LogSummary logs the validation summary.
func (s ValidationSummary) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Validation summary",
		logging.Field{Key: "total_errors", Value: s.TotalErrors},
		logging.Field{Key: "error_kinds", Value: len(s.ErrorKinds)},
	)
}
