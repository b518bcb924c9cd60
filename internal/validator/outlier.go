package validator

import (
	"fmt"
	"strings"

	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/models"

	"github.com/shopspring/decimal"
)

// lowValueKeywords marks merchants where a large charge is suspect even
// without a configured rule. Used by the lighter fallback heuristic when
// the full outlier check is disabled.
var lowValueKeywords = []string{
	"coffee", "starbucks", "cafe", "mcdonald", "burger", "subway",
	"netflix", "spotify", "subscription",
}

// OutlierCheck compares amounts against merchant-rule maxima scaled by the
// outlier multiplier, with an exception for declared yearly billing: an
// annual subscription charge of roughly 12x the monthly maximum is valid,
// not an anomaly. Category thresholds get the same multiplier treatment
// independent of the merchant-level result. When the check is disabled a
// lighter heuristic flags oversized charges at low-value merchants and
// round amounts over 1000.
type OutlierCheck struct {
	rules      RuleSource
	thresholds map[string]config.CategoryThreshold

	enabled           bool
	outlierMultiplier decimal.Decimal
	yearlyMultiplier  decimal.Decimal
}

// NewOutlierCheck creates the outlier tier from settings values.
func NewOutlierCheck(rules RuleSource, thresholds map[string]config.CategoryThreshold, enabled bool, outlierMultiplier, yearlyMultiplier float64) *OutlierCheck {
	if outlierMultiplier <= 0 {
		outlierMultiplier = 3
	}
	if yearlyMultiplier <= 0 {
		yearlyMultiplier = 12
	}
	return &OutlierCheck{
		rules:             rules,
		thresholds:        thresholds,
		enabled:           enabled,
		outlierMultiplier: decimal.NewFromFloat(outlierMultiplier),
		yearlyMultiplier:  decimal.NewFromFloat(yearlyMultiplier),
	}
}

// Name returns the name of this check for logging and debugging.
func (c *OutlierCheck) Name() string {
	return "Outlier"
}

// Check runs the outlier decision table, or the light fallback when disabled.
func (c *OutlierCheck) Check(row *models.Transaction) []models.Finding {
	amount, err := row.AmountValue()
	if err != nil {
		return nil
	}

	if !c.enabled {
		return c.checkLight(row, amount)
	}

	var findings []models.Finding
	merchant, rule, found := c.rules.MatchMerchantRule(row.Description)
	if found {
		findings = append(findings, c.checkMerchant(merchant, rule, amount)...)
	}
	if found && rule.Category != "" {
		if threshold, ok := c.thresholds[rule.Category]; ok {
			findings = append(findings, c.checkCategory(rule.Category, threshold, amount)...)
		}
	}
	return findings
}

func (c *OutlierCheck) checkMerchant(merchant string, rule models.MerchantRule, amount decimal.Decimal) []models.Finding {
	maxAmount := decimal.NewFromFloat(rule.MaxAmount)
	minAmount := decimal.NewFromFloat(rule.MinAmount)
	if maxAmount.IsZero() {
		return nil
	}

	if rule.SupportsBillingCycle(models.BillingYearly) {
		yearlyCeiling := maxAmount.Mul(c.yearlyMultiplier)
		if amount.LessThanOrEqual(yearlyCeiling) {
			// A legitimate annual charge, not 10-12x the monthly anomaly.
			return nil
		}
		if amount.GreaterThan(yearlyCeiling.Mul(c.outlierMultiplier)) {
			return []models.Finding{{
				Message: fmt.Sprintf("Amount %s far exceeds yearly ceiling %s for merchant %q", amount, yearlyCeiling, merchant),
				Kind:    models.KindYearlyAnomaly,
			}}
		}
	}

	if amount.GreaterThan(maxAmount.Mul(c.outlierMultiplier)) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s exceeds %sx the monthly maximum %s for merchant %q", amount, c.outlierMultiplier, maxAmount, merchant),
			Kind:    models.KindMonthlyAnomaly,
		}}
	}
	if rule.MinAmount > 0 && amount.LessThan(minAmount.Div(c.outlierMultiplier)) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s far below the monthly minimum %s for merchant %q", amount, minAmount, merchant),
			Kind:    models.KindMonthlyAnomaly,
		}}
	}
	return nil
}

func (c *OutlierCheck) checkCategory(category string, threshold config.CategoryThreshold, amount decimal.Decimal) []models.Finding {
	maxAmount := decimal.NewFromFloat(threshold.MaxAmount)
	minAmount := decimal.NewFromFloat(threshold.MinAmount)

	if threshold.MaxAmount > 0 && amount.GreaterThan(maxAmount.Mul(c.outlierMultiplier)) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s exceeds %sx the threshold %s for category %q", amount, c.outlierMultiplier, maxAmount, category),
			Kind:    models.KindMonthlyAnomaly,
		}}
	}
	if threshold.MinAmount > 0 && amount.LessThan(minAmount.Div(c.outlierMultiplier)) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s far below the threshold %s for category %q", amount, minAmount, category),
			Kind:    models.KindMonthlyAnomaly,
		}}
	}
	return nil
}

// checkLight is the fallback heuristic used when the full outlier check is
// disabled: low-value merchants charging over 100, and round numbers over
// 1000 that look like data-entry errors.
func (c *OutlierCheck) checkLight(row *models.Transaction, amount decimal.Decimal) []models.Finding {
	desc := strings.ToLower(row.Description)

	var findings []models.Finding
	if amount.GreaterThan(decimal.NewFromInt(100)) {
		for _, keyword := range lowValueKeywords {
			if strings.Contains(desc, keyword) {
				findings = append(findings, models.Finding{
					Message: fmt.Sprintf("Amount %s unusually high for low-value merchant keyword %q", amount, keyword),
					Kind:    models.KindSuspiciousAmount,
				})
				break
			}
		}
	}

	if amount.GreaterThan(decimal.NewFromInt(1000)) && amount.Mod(decimal.NewFromInt(100)).IsZero() {
		findings = append(findings, models.Finding{
			Message: fmt.Sprintf("Round amount %s over 1000, possible data-entry error", amount),
			Kind:    models.KindSuspiciousAmount,
		})
	}

	return findings
}
