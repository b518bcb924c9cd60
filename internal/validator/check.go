// Package validator flags implausible transaction rows through an ordered,
// accumulating cascade of checks: field presence, merchant amount ranges,
// category thresholds, dynamically scaled global limits, outlier detection,
// and date validity. Validation only annotates; rows are never rejected.
package validator

import (
	"dmeyer/txn-classify/internal/models"
)

// Check is one tier of the validation cascade. Unlike classification the
// cascade is not first-match-wins: every applicable check runs and all
// findings accumulate.
type Check interface {
	// Check inspects one row and returns zero or more findings.
	Check(row *models.Transaction) []models.Finding

	// Name returns the name of this check for logging and debugging.
	Name() string
}

// RuleSource is the view of the config store the checks need.
type RuleSource interface {
	MatchMerchantRule(description string) (string, models.MerchantRule, bool)
}
