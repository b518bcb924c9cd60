package validator

import (
	"strings"
	"sync"

	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
)

// Engine runs every check against each row and accumulates all findings.
// Unlike the classification cascade, validation never short-circuits: a
// row with a missing date and an oversized amount reports both.
type Engine struct {
	checks []Check
	logger logging.Logger

	mu       sync.Mutex
	findings []models.ValidationFinding
}

// NewEngine builds the standard check sequence from the loaded settings.
func NewEngine(rules RuleSource, cfg *config.Config, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	checks := []Check{
		NewPresenceCheck(),
		NewMerchantRangeCheck(rules),
		NewCategoryThresholdCheck(rules, cfg.CategoryThresholds),
		NewGlobalLimitCheck(cfg.GlobalLimits.MinAmountThreshold, cfg.GlobalLimits.MaxAmountThreshold, cfg.GlobalLimits.ZeroAmountFlag),
		NewOutlierCheck(rules, cfg.CategoryThresholds, cfg.SanityCheck.Enabled, cfg.SanityCheck.OutlierMultiplier, cfg.SanityCheck.YearlyMultiplier),
		NewDateCheck(cfg.GlobalLimits.DateRangeYears),
	}
	return NewEngineWithChecks(checks, logger)
}

// NewEngineWithChecks builds an engine from an explicit check sequence.
func NewEngineWithChecks(checks []Check, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{checks: checks, logger: logger}
}

// ValidateRow runs every check against the row, annotates it with the
// joined messages and kinds, and records the finding for the run summary.
// It reports whether the row passed cleanly.
func (e *Engine) ValidateRow(rowIndex int, row *models.Transaction) bool {
	var messages []string
	var kinds []string

	for _, check := range e.checks {
		for _, finding := range check.Check(row) {
			messages = append(messages, finding.Message)
			kinds = append(kinds, finding.Kind)
			e.logger.WithFields(
				logging.Field{Key: logging.FieldCheck, Value: check.Name()},
				logging.Field{Key: logging.FieldKind, Value: finding.Kind},
				logging.Field{Key: logging.FieldRowIndex, Value: rowIndex},
			).Debug(finding.Message)
		}
	}

	if len(messages) == 0 {
		row.ValidationError = ""
		row.ErrorType = ""
		return true
	}

	row.ValidationError = strings.Join(messages, "; ")
	row.ErrorType = strings.Join(kinds, "; ")

	e.mu.Lock()
	e.findings = append(e.findings, models.ValidationFinding{
		RowIndex: rowIndex,
		Messages: messages,
		Kinds:    kinds,
		Row:      *row,
	})
	e.mu.Unlock()
	return false
}

// Findings returns a copy of the findings accumulated so far.
func (e *Engine) Findings() []models.ValidationFinding {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.ValidationFinding, len(e.findings))
	copy(out, e.findings)
	return out
}

// Summary aggregates the accumulated findings by kind.
func (e *Engine) Summary() models.ValidationSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	summary := models.ValidationSummary{ErrorKinds: make(map[string]int)}
	for _, finding := range e.findings {
		summary.TotalErrors++
		for _, kind := range finding.Kinds {
			summary.ErrorKinds[kind]++
		}
	}
	return summary
}

// Reset clears the accumulated findings so the engine can serve a new run.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.findings = nil
}
