package classifier

import (
	"context"
	"strings"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/textutils"
)

// heuristicConfidence is the flat confidence for heuristic-table hits.
const heuristicConfidence = 75.0

// heuristicRule binds one fallback category to its keyword set.
type heuristicRule struct {
	category string
	keywords []string
}

// heuristicRules is the hand-maintained fallback table, evaluated
// first-match-wins in this priority order.
var heuristicRules = []heuristicRule{
	{models.CategoryIncome, []string{
		"salary", "payroll", "paycheck", "direct dep", "deposit", "dividend", "interest earned",
	}},
	{models.CategoryFoodDining, []string{
		"restaurant", "coffee", "cafe", "pizza", "burger", "grill", "diner",
		"bakery", "deli", "sushi", "taco", "food", "kitchen", "bistro",
	}},
	{models.CategoryShopping, []string{
		"amazon", "walmart", "target", "store", "market", "shop", "retail",
		"mall", "outlet", "boutique",
	}},
	{models.CategoryTransportation, []string{
		"gas", "fuel", "uber", "lyft", "taxi", "parking", "transit", "metro",
		"airline", "airways", "toll",
	}},
	{models.CategoryBillsUtilities, []string{
		"electric", "water", "internet", "phone", "cable", "utility",
		"insurance", "rent", "mortgage", "subscription", "wireless",
	}},
	{models.CategoryHealthcare, []string{
		"pharmacy", "doctor", "dental", "medical", "clinic", "hospital",
		"vision", "urgent care",
	}},
	{models.CategoryEntertainment, []string{
		"cinema", "movie", "theater", "netflix", "spotify", "hulu", "game",
		"concert", "streaming", "ticket",
	}},
	{models.CategoryBanking, []string{
		"atm", "withdrawal", "transfer", "fee", "wire", "overdraft", "bank",
	}},
}

// HeuristicStrategy is the last classification tier: a fixed keyword table
// covering broad spending groups. On a hit it extracts a short merchant-name
// candidate from the description and records it as a learned mapping, so the
// learned-mapping tier can short-circuit future occurrences of the same
// normalized description.
type HeuristicStrategy struct {
	source ConfigSource
	logger logging.Logger
}

// NewHeuristicStrategy creates the heuristic fallback tier.
func NewHeuristicStrategy(source ConfigSource, logger logging.Logger) *HeuristicStrategy {
	return &HeuristicStrategy{source: source, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *HeuristicStrategy) Name() string {
	return "Heuristic"
}

// Classify matches the description against the fallback table and, on
// success, feeds the discovered mapping back into the store. Persistence
// failures are logged and swallowed; learning is best-effort.
func (s *HeuristicStrategy) Classify(ctx context.Context, description string) (models.Classification, bool, error) {
	for _, rule := range heuristicRules {
		for _, keyword := range rule.keywords {
			if !strings.Contains(description, keyword) {
				continue
			}

			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: "keyword", Value: keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.category},
			).Debug("Matched heuristic keyword")

			s.learn(description, rule.category)

			return models.Classification{
				Category:   rule.category,
				Method:     models.MethodHeuristic,
				Confidence: heuristicConfidence,
			}, true, nil
		}
	}

	return models.Classification{}, false, nil
}

func (s *HeuristicStrategy) learn(description, category string) {
	merchant := textutils.ExtractMerchantName(description)
	if merchant == "" {
		return
	}
	if err := s.source.RecordLearnedMapping(merchant, category, models.MethodHeuristic, heuristicConfidence); err != nil {
		s.logger.WithError(err).WithField(logging.FieldMerchant, merchant).Warn("Failed to persist learned mapping")
	}
}
