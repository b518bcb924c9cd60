package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "categories.yaml", config.Files.Categories)
	assert.Equal(t, "merchant_rules.yaml", config.Files.MerchantRules)
	assert.Equal(t, "learned_mappings.yaml", config.Files.LearnedMappings)
	assert.Equal(t, DefaultFuzzyMatchThreshold, config.Classification.FuzzyMatchThreshold)
	assert.Equal(t, -10000.0, config.GlobalLimits.MinAmountThreshold)
	assert.Equal(t, 10000.0, config.GlobalLimits.MaxAmountThreshold)
	assert.True(t, config.GlobalLimits.ZeroAmountFlag)
	assert.Equal(t, 5, config.GlobalLimits.DateRangeYears)
	assert.True(t, config.SanityCheck.Enabled)
	assert.Equal(t, 3.0, config.SanityCheck.OutlierMultiplier)
	assert.Equal(t, 12.0, config.SanityCheck.YearlyMultiplier)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("TXN_LOG_LEVEL", "debug")
	t.Setenv("TXN_CLASSIFICATION_FUZZY_MATCH_THRESHOLD", "80")
	t.Setenv("TXN_GLOBAL_LIMITS_DATE_RANGE_YEARS", "10")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 80.0, config.Classification.FuzzyMatchThreshold)
	assert.Equal(t, 10, config.GlobalLimits.DateRangeYears)
}

func TestInitializeConfig_InvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "TXN_LOG_LEVEL", value: "verbose"},
		{name: "bad log format", key: "TXN_LOG_FORMAT", value: "xml"},
		{name: "threshold out of range", key: "TXN_CLASSIFICATION_FUZZY_MATCH_THRESHOLD", value: "150"},
		{name: "date range too small", key: "TXN_GLOBAL_LIMITS_DATE_RANGE_YEARS", value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestFuzzyThreshold_Fallback(t *testing.T) {
	var config Config
	assert.Equal(t, DefaultFuzzyMatchThreshold, config.FuzzyThreshold())

	config.Classification.FuzzyMatchThreshold = 85
	assert.Equal(t, 85.0, config.FuzzyThreshold())

	config.Classification.FuzzyMatchThreshold = 140
	assert.Equal(t, DefaultFuzzyMatchThreshold, config.FuzzyThreshold())
}

func TestValidateConfig_CategoryThresholds(t *testing.T) {
	config := Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.GlobalLimits.DateRangeYears = 5
	config.GlobalLimits.MaxAmountThreshold = 10000
	config.CategoryThresholds = map[string]CategoryThreshold{
		"Food & Dining": {MinAmount: 500, MaxAmount: 100},
	}

	err := validateConfig(&config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_amount exceeds max_amount")
}
