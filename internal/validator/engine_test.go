package validator

import (
	"testing"
	"time"

	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.GlobalLimits.MinAmountThreshold = -10000
	cfg.GlobalLimits.MaxAmountThreshold = 10000
	cfg.GlobalLimits.ZeroAmountFlag = true
	cfg.GlobalLimits.DateRangeYears = 5
	cfg.SanityCheck.Enabled = true
	cfg.SanityCheck.OutlierMultiplier = 3
	cfg.SanityCheck.YearlyMultiplier = 12
	return cfg
}

func newTestEngine(rules RuleSource) *Engine {
	engine := NewEngine(rules, testConfig(), logging.NewMockLogger())
	for _, check := range engine.checks {
		if dateCheck, ok := check.(*DateCheck); ok {
			dateCheck.now = func() time.Time {
				return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
			}
		}
	}
	return engine
}

func TestValidateRow_CleanRowPasses(t *testing.T) {
	engine := newTestEngine(&fakeRules{})

	tx := models.Transaction{Date: "2024-03-15", Description: "Starbucks", Amount: "4.50"}
	ok := engine.ValidateRow(0, &tx)

	assert.True(t, ok)
	assert.Empty(t, tx.ValidationError)
	assert.Empty(t, tx.ErrorType)
	assert.Empty(t, engine.Findings())
}

func TestValidateRow_FindingsAccumulate(t *testing.T) {
	engine := newTestEngine(&fakeRules{})

	// Missing date and zero amount should both be reported.
	tx := models.Transaction{Description: "Starbucks", Amount: "0.00"}
	ok := engine.ValidateRow(3, &tx)

	assert.False(t, ok)
	assert.Contains(t, tx.ErrorType, models.KindMissingDate)
	assert.Contains(t, tx.ErrorType, models.KindZeroAmount)
	assert.Contains(t, tx.ValidationError, "; ")

	findings := engine.Findings()
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].RowIndex)
	assert.Len(t, findings[0].Kinds, 2)
}

func TestEngineSummary(t *testing.T) {
	engine := newTestEngine(&fakeRules{})

	rows := []models.Transaction{
		{Date: "2024-03-15", Description: "Starbucks", Amount: "4.50"},
		{Description: "No Date Vendor", Amount: "10.00"},
		{Date: "2024-03-15", Description: "Zeroed", Amount: "0"},
	}
	for i := range rows {
		engine.ValidateRow(i, &rows[i])
	}

	summary := engine.Summary()
	assert.Equal(t, 2, summary.TotalErrors)
	assert.Equal(t, 1, summary.ErrorKinds[models.KindMissingDate])
	assert.Equal(t, 1, summary.ErrorKinds[models.KindZeroAmount])

	engine.Reset()
	assert.Empty(t, engine.Findings())
	assert.Equal(t, 0, engine.Summary().TotalErrors)
}
