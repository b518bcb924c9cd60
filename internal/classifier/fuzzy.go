package classifier

import (
	"context"
	"strings"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/textutils"
)

// FuzzyMatchStrategy scores the description against every listed merchant
// with the similarity scorer. A candidate qualifies when its score reaches
// the configured threshold; the highest qualifying score wins, ties keep
// the first found, and the score itself becomes the confidence.
type FuzzyMatchStrategy struct {
	source    ConfigSource
	threshold float64
	logger    logging.Logger
}

// NewFuzzyMatchStrategy creates the fuzzy tier with the given threshold.
func NewFuzzyMatchStrategy(source ConfigSource, threshold float64, logger logging.Logger) *FuzzyMatchStrategy {
	return &FuzzyMatchStrategy{source: source, threshold: threshold, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *FuzzyMatchStrategy) Name() string {
	return "FuzzyMatch"
}

// Classify finds the best-scoring merchant at or above the threshold.
func (s *FuzzyMatchStrategy) Classify(ctx context.Context, description string) (models.Classification, bool, error) {
	var best models.Classification
	for _, category := range s.source.Categories() {
		for _, merchant := range category.Merchants {
			score := textutils.Similarity(description, strings.ToLower(merchant))
			if score < s.threshold || score <= best.Confidence {
				continue
			}
			best = models.Classification{
				Category:   category.Name,
				Method:     models.MethodFuzzyMatch,
				Confidence: score,
			}
		}
	}

	if best.Category == "" {
		return models.Classification{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: best.Category},
		logging.Field{Key: logging.FieldConfidence, Value: best.Confidence},
	).Debug("Matched merchant by similarity")

	return best, true, nil
}
