package classifier

import (
	"context"
	"strings"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
)

// KeywordStrategy matches configured category keywords as substrings of the
// description. A keyword that also appears as a space-bounded token scores
// higher than a bare substring hit; across all (category, keyword) pairs the
// strictly highest confidence wins and ties keep the first found.
type KeywordStrategy struct {
	source ConfigSource
	logger logging.Logger
}

// NewKeywordStrategy creates the keyword tier.
func NewKeywordStrategy(source ConfigSource, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{source: source, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Classify scans every category's keyword list and keeps the best hit.
func (s *KeywordStrategy) Classify(ctx context.Context, description string) (models.Classification, bool, error) {
	// Padding with spaces makes the token check uniform at both ends.
	padded := " " + description + " "

	var best models.Classification
	for _, category := range s.source.Categories() {
		for _, keyword := range category.Keywords {
			keywordLower := strings.ToLower(keyword)
			if !strings.Contains(description, keywordLower) {
				continue
			}

			confidence := 75.0
			if strings.Contains(padded, " "+keywordLower+" ") {
				confidence = 85.0
			}

			if confidence > best.Confidence {
				best = models.Classification{
					Category:   category.Name,
					Method:     models.MethodKeywordMatch,
					Confidence: confidence,
				}
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
	).Debug("Matched category keyword")

	return best, true, nil
}
