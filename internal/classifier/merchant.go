package classifier

import (
	"context"
	"strings"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
)

// MerchantMatchStrategy matches the description against each category's
// merchant list by case-insensitive substring containment in either
// direction. Categories and merchants are scanned in stored order so the
// first listed match always wins.
type MerchantMatchStrategy struct {
	source ConfigSource
	logger logging.Logger
}

// NewMerchantMatchStrategy creates the merchant-exact tier.
func NewMerchantMatchStrategy(source ConfigSource, logger logging.Logger) *MerchantMatchStrategy {
	return &MerchantMatchStrategy{source: source, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *MerchantMatchStrategy) Name() string {
	return "MerchantMatch"
}

// Classify matches the description against listed merchants. Confidence is
// 100 when description and merchant are equal after case-folding, 90 for a
// containment match.
func (s *MerchantMatchStrategy) Classify(ctx context.Context, description string) (models.Classification, bool, error) {
	for _, category := range s.source.Categories() {
		for _, merchant := range category.Merchants {
			merchantLower := strings.ToLower(merchant)
			if !strings.Contains(description, merchantLower) && !strings.Contains(merchantLower, description) {
				continue
			}

			confidence := 90.0
			if description == merchantLower {
				confidence = 100.0
			}

			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldMerchant, Value: merchant},
				logging.Field{Key: logging.FieldCategory, Value: category.Name},
				logging.Field{Key: logging.FieldConfidence, Value: confidence},
			).Debug("Matched listed merchant")

			return models.Classification{
				Category:   category.Name,
				Method:     models.MethodMerchantMatch,
				Confidence: confidence,
			}, true, nil
		}
	}

	return models.Classification{}, false, nil
}
