package validator

import (
	"fmt"

	"dmeyer/txn-classify/internal/models"

	"github.com/shopspring/decimal"
)

// scalingBand raises the effective ceiling once the amount crosses a floor.
// Legitimately large transactions (real estate, investment transfers) are
// not flagged purely for magnitude, while zero and extreme-outlier amounts
// still are.
type scalingBand struct {
	above   decimal.Decimal
	ceiling decimal.Decimal
}

var scalingBands = []scalingBand{
	{decimal.NewFromInt(10_000), decimal.NewFromInt(100_000)},
	{decimal.NewFromInt(50_000), decimal.NewFromInt(1_000_000)},
	{decimal.NewFromInt(100_000), decimal.NewFromInt(10_000_000)},
}

// GlobalLimitCheck validates amounts against the global min/max settings
// with dynamic ceiling scaling, and flags zero and unparseable amounts.
type GlobalLimitCheck struct {
	minThreshold   decimal.Decimal
	maxThreshold   decimal.Decimal
	zeroAmountFlag bool
}

// NewGlobalLimitCheck creates the global-limit tier from settings values.
func NewGlobalLimitCheck(minThreshold, maxThreshold float64, zeroAmountFlag bool) *GlobalLimitCheck {
	return &GlobalLimitCheck{
		minThreshold:   decimal.NewFromFloat(minThreshold),
		maxThreshold:   decimal.NewFromFloat(maxThreshold),
		zeroAmountFlag: zeroAmountFlag,
	}
}

// Name returns the name of this check for logging and debugging.
func (c *GlobalLimitCheck) Name() string {
	return "GlobalLimit"
}

// EffectiveMax returns the ceiling after dynamic scaling for the amount.
func (c *GlobalLimitCheck) EffectiveMax(amount decimal.Decimal) decimal.Decimal {
	effective := c.maxThreshold
	for _, band := range scalingBands {
		if amount.GreaterThan(band.above) && effective.LessThan(band.ceiling) {
			effective = band.ceiling
		}
	}
	return effective
}

// Check flags zero amounts, unparseable amounts, and amounts outside the
// scaled global limits.
func (c *GlobalLimitCheck) Check(row *models.Transaction) []models.Finding {
	if !row.HasAmount() {
		return nil // presence check already flagged it
	}

	amount, err := row.AmountValue()
	if err != nil {
		return []models.Finding{{
			Message: fmt.Sprintf("Invalid amount format: %q", row.Amount),
			Kind:    models.KindInvalidAmount,
		}}
	}

	if amount.IsZero() {
		if !c.zeroAmountFlag {
			return nil
		}
		return []models.Finding{{
			Message: "Amount is 0",
			Kind:    models.KindZeroAmount,
		}}
	}

	if effectiveMax := c.EffectiveMax(amount); amount.GreaterThan(effectiveMax) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s exceeds limit %s", amount, effectiveMax),
			Kind:    models.KindGlobalLimitViolation,
		}}
	}
	if amount.LessThan(c.minThreshold) {
		return []models.Finding{{
			Message: fmt.Sprintf("Amount %s below minimum %s", amount, c.minThreshold),
			Kind:    models.KindGlobalLimitViolation,
		}}
	}

	return nil
}
