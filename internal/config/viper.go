// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// CategoryThreshold bounds plausible amounts for a whole category.
type CategoryThreshold struct {
	MinAmount float64 `mapstructure:"min_amount" yaml:"min_amount"`
	MaxAmount float64 `mapstructure:"max_amount" yaml:"max_amount"`
}

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Files struct {
		Categories      string `mapstructure:"categories" yaml:"categories"`
		MerchantRules   string `mapstructure:"merchant_rules" yaml:"merchant_rules"`
		LearnedMappings string `mapstructure:"learned_mappings" yaml:"learned_mappings"`
	} `mapstructure:"files" yaml:"files"`

	Classification struct {
		FuzzyMatchThreshold float64 `mapstructure:"fuzzy_match_threshold" yaml:"fuzzy_match_threshold"`
	} `mapstructure:"classification" yaml:"classification"`

	GlobalLimits struct {
		MinAmountThreshold float64 `mapstructure:"min_amount_threshold" yaml:"min_amount_threshold"`
		MaxAmountThreshold float64 `mapstructure:"max_amount_threshold" yaml:"max_amount_threshold"`
		ZeroAmountFlag     bool    `mapstructure:"zero_amount_flag" yaml:"zero_amount_flag"`
		DateRangeYears     int     `mapstructure:"date_range_years" yaml:"date_range_years"`
	} `mapstructure:"global_limits" yaml:"global_limits"`

	CategoryThresholds map[string]CategoryThreshold `mapstructure:"category_thresholds" yaml:"category_thresholds"`

	// The data files call this table ai_sanction_check; it is a
	// deterministic outlier check, not a model.
	SanityCheck struct {
		Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
		OutlierMultiplier float64 `mapstructure:"outlier_multiplier" yaml:"outlier_multiplier"`
		YearlyMultiplier  float64 `mapstructure:"yearly_multiplier" yaml:"yearly_multiplier"`
	} `mapstructure:"ai_sanction_check" yaml:"ai_sanction_check"`
}

// DefaultFuzzyMatchThreshold applies when the configured threshold is unset.
const DefaultFuzzyMatchThreshold = 70.0

// FuzzyThreshold returns the configured fuzzy-match threshold, falling back
// to the default when the value is unset or out of range.
func (c *Config) FuzzyThreshold() float64 {
	t := c.Classification.FuzzyMatchThreshold
	if t <= 0 || t > 100 {
		return DefaultFuzzyMatchThreshold
	}
	return t
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.txn-classify")
	v.AddConfigPath(".txn-classify")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TXN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("files.categories", "categories.yaml")
	v.SetDefault("files.merchant_rules", "merchant_rules.yaml")
	v.SetDefault("files.learned_mappings", "learned_mappings.yaml")

	v.SetDefault("classification.fuzzy_match_threshold", DefaultFuzzyMatchThreshold)

	v.SetDefault("global_limits.min_amount_threshold", -10000.0)
	v.SetDefault("global_limits.max_amount_threshold", 10000.0)
	v.SetDefault("global_limits.zero_amount_flag", true)
	v.SetDefault("global_limits.date_range_years", 5)

	v.SetDefault("ai_sanction_check.enabled", true)
	v.SetDefault("ai_sanction_check.outlier_multiplier", 3.0)
	v.SetDefault("ai_sanction_check.yearly_multiplier", 12.0)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if t := config.Classification.FuzzyMatchThreshold; t < 0 || t > 100 {
		return fmt.Errorf("classification.fuzzy_match_threshold must be between 0 and 100, got: %f", t)
	}

	if config.GlobalLimits.DateRangeYears < 1 {
		return fmt.Errorf("global_limits.date_range_years must be at least 1, got: %d", config.GlobalLimits.DateRangeYears)
	}

	if config.GlobalLimits.MinAmountThreshold > config.GlobalLimits.MaxAmountThreshold {
		return fmt.Errorf("global_limits.min_amount_threshold exceeds max_amount_threshold")
	}

	if config.SanityCheck.Enabled {
		if config.SanityCheck.OutlierMultiplier <= 0 {
			return fmt.Errorf("ai_sanction_check.outlier_multiplier must be positive, got: %f", config.SanityCheck.OutlierMultiplier)
		}
		if config.SanityCheck.YearlyMultiplier <= 0 {
			return fmt.Errorf("ai_sanction_check.yearly_multiplier must be positive, got: %f", config.SanityCheck.YearlyMultiplier)
		}
	}

	for name, threshold := range config.CategoryThresholds {
		if threshold.MinAmount > threshold.MaxAmount {
			return fmt.Errorf("category_thresholds.%s: min_amount exceeds max_amount", name)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
