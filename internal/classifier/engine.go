package classifier

import (
	"context"
	"fmt"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/textutils"
)

// Engine runs the classification cascade. Classify never fails for a
// well-formed string: erroring or panicking tiers are logged and skipped,
// and a row that matches nothing comes back Uncategorized with confidence 0.
type Engine struct {
	strategies []Strategy
	logger     logging.Logger
}

// NewEngine builds the standard five-tier cascade over the given config
// source. The fuzzy threshold comes from settings; values outside (0, 100]
// should be resolved to the default before calling.
func NewEngine(source ConfigSource, fuzzyThreshold float64, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		strategies: []Strategy{
			NewMerchantMatchStrategy(source, logger),
			NewLearnedMappingStrategy(source, logger),
			NewKeywordStrategy(source, logger),
			NewFuzzyMatchStrategy(source, fuzzyThreshold, logger),
			NewHeuristicStrategy(source, logger),
		},
		logger: logger,
	}
}

// NewEngineWithStrategies builds an engine over an explicit cascade.
// Intended for tests and callers that need a non-standard tier order.
func NewEngineWithStrategies(logger logging.Logger, strategies ...Strategy) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{strategies: strategies, logger: logger}
}

// Classify normalizes the description and evaluates the cascade in order,
// returning the first tier's result that yields a real category.
func (e *Engine) Classify(ctx context.Context, description string) models.Classification {
	normalized := textutils.NormalizeDescription(description)
	if normalized == "" {
		return models.Uncategorized()
	}

	for _, strategy := range e.strategies {
		result, found, err := e.runStrategy(ctx, strategy, normalized)
		if err != nil {
			e.logger.WithError(err).WithField(logging.FieldStrategy, strategy.Name()).Warn("Classification tier failed, continuing cascade")
			continue
		}
		if found && result.Category != "" && result.Category != models.CategoryUncategorized {
			return result
		}
	}

	return models.Uncategorized()
}

// runStrategy isolates one tier so a panic inside it cannot abort the row.
func (e *Engine) runStrategy(ctx context.Context, strategy Strategy, description string) (result models.Classification, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = models.Classification{}
			found = false
			err = fmt.Errorf("%s strategy panicked: %v", strategy.Name(), r)
		}
	}()
	return strategy.Classify(ctx, description)
}
