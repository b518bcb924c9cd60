package validator

import (
	"fmt"

	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryThresholdCheck resolves a category for the row via the merchant
// rule table (not the classification cascade) and compares the amount
// against that category's configured threshold, when one exists.
type CategoryThresholdCheck struct {
	rules      RuleSource
	thresholds map[string]config.CategoryThreshold
}

// NewCategoryThresholdCheck creates the category-threshold tier.
func NewCategoryThresholdCheck(rules RuleSource, thresholds map[string]config.CategoryThreshold) *CategoryThresholdCheck {
	return &CategoryThresholdCheck{rules: rules, thresholds: thresholds}
}

// Name returns the name of this check for logging and debugging.
func (c *CategoryThresholdCheck) Name() string {
	return "CategoryThreshold"
}

// Check flags amounts outside the resolved category's threshold.
func (c *CategoryThresholdCheck) Check(row *models.Transaction) []models.Finding {
	amount, err := row.AmountValue()
	if err != nil {
		return nil
	}

	_, rule, found := c.rules.MatchMerchantRule(row.Description)
	if !found || rule.Category == "" {
		return nil
	}
	threshold, ok := c.thresholds[rule.Category]
	if !ok {
		return nil
	}

	var findings []models.Finding
	maxAmount := decimal.NewFromFloat(threshold.MaxAmount)
	minAmount := decimal.NewFromFloat(threshold.MinAmount)

	if threshold.MaxAmount > 0 && amount.GreaterThan(maxAmount) {
		findings = append(findings, models.Finding{
			Message: fmt.Sprintf("Amount %s exceeds threshold %s for category %q", amount, maxAmount, rule.Category),
			Kind:    models.KindCategoryThresholdViolation,
		})
	}
	if amount.LessThan(minAmount) {
		findings = append(findings, models.Finding{
			Message: fmt.Sprintf("Amount %s below threshold %s for category %q", amount, minAmount, rule.Category),
			Kind:    models.KindCategoryThresholdViolation,
		})
	}

	return findings
}
