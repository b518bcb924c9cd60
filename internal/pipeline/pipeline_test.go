package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dmeyer/txn-classify/internal/classifier"
	"dmeyer/txn-classify/internal/cleaner"
	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/store"
	"dmeyer/txn-classify/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCategoriesYAML = `categories:
  - name: "Food & Dining"
    merchants:
      - "Starbucks"
    keywords:
      - "grocery"
  - name: "Entertainment"
    merchants:
      - "Netflix"
    keywords: []
`

const testRulesYAML = `merchant_ranges:
  starbucks:
    min_amount: 2
    max_amount: 50
    category: "Food & Dining"
    billing_cycles: ["monthly"]
`

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	dir := t.TempDir()
	categories := filepath.Join(dir, "categories.yaml")
	rules := filepath.Join(dir, "merchant_rules.yaml")
	require.NoError(t, os.WriteFile(categories, []byte(testCategoriesYAML), 0600))
	require.NoError(t, os.WriteFile(rules, []byte(testRulesYAML), 0600))

	logger := logging.NewMockLogger()
	st, err := store.NewConfigStore(categories, rules, filepath.Join(dir, "learned.yaml"), logger)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.GlobalLimits.MinAmountThreshold = -10000
	cfg.GlobalLimits.MaxAmountThreshold = 10000
	cfg.GlobalLimits.ZeroAmountFlag = true
	cfg.GlobalLimits.DateRangeYears = 50
	cfg.SanityCheck.Enabled = true
	cfg.SanityCheck.OutlierMultiplier = 3
	cfg.SanityCheck.YearlyMultiplier = 12

	return New(
		cleaner.New(logger),
		classifier.NewEngine(st, config.DefaultFuzzyMatchThreshold, logger),
		validator.NewEngine(st, cfg, logger),
		logger,
	)
}

func TestProcess(t *testing.T) {
	p := newTestPipeline(t)

	rows := []models.Transaction{
		{Date: "15.03.2024", Description: "POS STARBUCKS #4421", Amount: "$4.50"},
		{Date: "2024-03-16", Description: "NETFLIX", Amount: "15.99"},
		{Date: "2024-03-17", Description: "XQZRV LLC", Amount: "20.00"},
		{Description: "Zero Vendor", Amount: "0"},
	}

	result, err := p.Process(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, result.Rows, 4)

	// Row 1: cleaned and classified by merchant match.
	assert.Equal(t, "2024-03-15", result.Rows[0].Date)
	assert.Equal(t, "Starbucks", result.Rows[0].Description)
	assert.Equal(t, "Food & Dining", result.Rows[0].Category)
	assert.Equal(t, models.MethodMerchantMatch, result.Rows[0].ClassificationMethod)
	assert.Empty(t, result.Rows[0].ValidationError)

	// Row 2: exact merchant match.
	assert.Equal(t, "Entertainment", result.Rows[1].Category)
	assert.Equal(t, 100.0, result.Rows[1].ConfidenceScore)

	// Row 3: matches nothing.
	assert.Equal(t, models.CategoryUncategorized, result.Rows[2].Category)

	// Row 4: fails validation but is still classified and kept.
	assert.Contains(t, result.Rows[3].ErrorType, models.KindMissingDate)
	assert.Contains(t, result.Rows[3].ErrorType, models.KindZeroAmount)

	assert.Equal(t, 4, result.Classification.Total)
	assert.Equal(t, 2, result.Classification.Categorized)
	assert.Equal(t, 2, result.Classification.Uncategorized)
	assert.Equal(t, 2, result.Classification.CategoryBreakdown[models.CategoryUncategorized])
	assert.Equal(t, 1, result.Validation.TotalErrors)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, 3, result.Findings[0].RowIndex)
}

func TestProcess_ContextCancellation(t *testing.T) {
	p := newTestPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, []models.Transaction{
		{Date: "2024-03-15", Description: "Starbucks", Amount: "4.50"},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_HeuristicFeedbackLoop(t *testing.T) {
	p := newTestPipeline(t)

	first, err := p.Process(context.Background(), []models.Transaction{
		{Date: "2024-03-15", Description: "SHELL FUEL STATION 9921", Amount: "40.00"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MethodHeuristic, first.Rows[0].ClassificationMethod)
	assert.Equal(t, 75.0, first.Rows[0].ConfidenceScore)

	// The same merchant now short-circuits at the learned-mapping tier.
	second, err := p.Process(context.Background(), []models.Transaction{
		{Date: "2024-04-15", Description: "SHELL FUEL STATION 9921", Amount: "42.00"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MethodLearnedMapping, second.Rows[0].ClassificationMethod)
	assert.Equal(t, 95.0, second.Rows[0].ConfidenceScore)
	assert.Equal(t, first.Rows[0].Category, second.Rows[0].Category)
}
