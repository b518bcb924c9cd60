package validator

import (
	"fmt"

	"dmeyer/txn-classify/internal/models"

	"github.com/shopspring/decimal"
)

// MerchantRangeCheck compares the amount against the configured min/max for
// the merchant whose rule the description matches. Rows without a parseable
// amount or without a matching rule pass through untouched.
type MerchantRangeCheck struct {
	rules RuleSource
}

// NewMerchantRangeCheck creates the merchant-range tier.
func NewMerchantRangeCheck(rules RuleSource) *MerchantRangeCheck {
	return &MerchantRangeCheck{rules: rules}
}

// Name returns the name of this check for logging and debugging.
func (c *MerchantRangeCheck) Name() string {
	return "MerchantRange"
}

// Check flags amounts outside the matched merchant rule's bounds.
func (c *MerchantRangeCheck) Check(row *models.Transaction) []models.Finding {
	amount, err := row.AmountValue()
	if err != nil {
		return nil
	}

	merchant, rule, found := c.rules.MatchMerchantRule(row.Description)
	if !found {
		return nil
	}

	var findings []models.Finding
	maxAmount := decimal.NewFromFloat(rule.MaxAmount)
	minAmount := decimal.NewFromFloat(rule.MinAmount)

	if rule.MaxAmount > 0 && amount.GreaterThan(maxAmount) {
		msg := fmt.Sprintf("Amount %s exceeds maximum %s for merchant %q", amount, maxAmount, merchant)
		if rule.TypicalRange != "" {
			msg += fmt.Sprintf(" (typical range %s)", rule.TypicalRange)
		}
		findings = append(findings, models.Finding{
			Message: msg,
			Kind:    models.KindMerchantRangeViolation,
		})
	}
	if amount.LessThan(minAmount) {
		findings = append(findings, models.Finding{
			Message: fmt.Sprintf("Amount %s below minimum %s for merchant %q", amount, minAmount, merchant),
			Kind:    models.KindMerchantRangeViolation,
		})
	}

	return findings
}
