package classifier

import (
	"context"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
)

// learnedMappingConfidence is the fixed confidence for learned-mapping hits.
const learnedMappingConfidence = 95.0

// LearnedMappingStrategy consults the store's learned-mapping table,
// matching by exact key first and then by substring containment in either
// direction. Previously classified descriptions short-circuit here before
// the more expensive tiers run.
type LearnedMappingStrategy struct {
	source ConfigSource
	logger logging.Logger
}

// NewLearnedMappingStrategy creates the learned-mapping tier.
func NewLearnedMappingStrategy(source ConfigSource, logger logging.Logger) *LearnedMappingStrategy {
	return &LearnedMappingStrategy{source: source, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *LearnedMappingStrategy) Name() string {
	return "LearnedMapping"
}

// Classify looks the description up in the learned-mapping table.
func (s *LearnedMappingStrategy) Classify(ctx context.Context, description string) (models.Classification, bool, error) {
	mapping, found := s.source.LookupLearnedMapping(description)
	if !found || mapping.Category == "" || mapping.Category == models.CategoryUncategorized {
		return models.Classification{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: mapping.Category},
	).Debug("Matched learned mapping")

	return models.Classification{
		Category:   mapping.Category,
		Method:     models.MethodLearnedMapping,
		Confidence: learnedMappingConfidence,
	}, true, nil
}
