// Package classifier assigns spending categories to transaction
// descriptions through an ordered cascade of strategies: merchant-exact
// matching, learned mappings, keyword matching, fuzzy similarity, and a
// heuristic fallback that feeds newly discovered mappings back into the
// config store.
package classifier

import (
	"context"

	"dmeyer/txn-classify/internal/models"
)

// Strategy defines one tier of the classification cascade. Strategies are
// evaluated in fixed order; the first one that finds a category wins.
type Strategy interface {
	// Classify attempts to categorize a normalized description.
	// Returns the classification, whether the strategy matched, and any
	// error encountered. An erroring strategy is treated as no-match by
	// the engine and never aborts classification of the row.
	Classify(ctx context.Context, description string) (models.Classification, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}

// ConfigSource is the view of the config store the cascade needs. The
// narrow interface keeps strategies testable without touching the
// filesystem.
type ConfigSource interface {
	Categories() []models.CategoryConfig
	LookupLearnedMapping(description string) (models.LearnedMapping, bool)
	RecordLearnedMapping(text, category, method string, confidence float64) error
}
