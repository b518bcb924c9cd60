// Package pipeline orchestrates a processing run: validate each row,
// normalize it, classify it, and build run summaries. A failure on any
// single row is recorded against that row and never aborts the run.
package pipeline

import (
	"context"

	"dmeyer/txn-classify/internal/classifier"
	"dmeyer/txn-classify/internal/cleaner"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/validator"
)

// Pipeline wires the cleaner, classification cascade, and validation
// checks into a single per-row flow.
type Pipeline struct {
	cleaner    *cleaner.Cleaner
	classifier *classifier.Engine
	validator  *validator.Engine
	logger     logging.Logger
}

// Result carries the outcome of a full run.
type Result struct {
	Rows           []models.Transaction
	Classification models.ClassificationSummary
	Validation     models.ValidationSummary
	Findings       []models.ValidationFinding
}

// New creates a pipeline from its three stages.
func New(cl *cleaner.Cleaner, cls *classifier.Engine, val *validator.Engine, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{cleaner: cl, classifier: cls, validator: val, logger: logger}
}

// Process runs every row through validation, cleaning, and classification.
// Rows are mutated in place; the returned result aliases the input slice.
func (p *Pipeline) Process(ctx context.Context, rows []models.Transaction) (*Result, error) {
	p.validator.Reset()

	summary := models.ClassificationSummary{
		CategoryBreakdown: make(map[string]int),
		MethodBreakdown:   make(map[string]int),
	}
	var confidenceTotal float64

	for i := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := &rows[i]

		p.validator.ValidateRow(i, row)
		p.cleaner.CleanRow(row)

		classification := p.classifier.Classify(ctx, row.Description)
		row.Category = classification.Category
		row.ClassificationMethod = classification.Method
		row.ConfidenceScore = classification.Confidence

		summary.Total++
		summary.CategoryBreakdown[classification.Category]++
		summary.MethodBreakdown[classification.Method]++
		if classification.Category == models.CategoryUncategorized {
			summary.Uncategorized++
		} else {
			summary.Categorized++
			confidenceTotal += classification.Confidence
		}
	}

	if summary.Categorized > 0 {
		summary.AverageConfidence = confidenceTotal / float64(summary.Categorized)
	}

	validation := p.validator.Summary()
	summary.LogSummary(p.logger)
	validation.LogSummary(p.logger)

	return &Result{
		Rows:           rows,
		Classification: summary,
		Validation:     validation,
		Findings:       p.validator.Findings(),
	}, nil
}
