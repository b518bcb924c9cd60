package models

// LearnedMapping is a cached classification decision keyed by normalized
// description text. Mappings are created when the heuristic fallback
// succeeds and are consulted on every later classification attempt.
type LearnedMapping struct {
	Category    string  `yaml:"category"`
	LearnedDate string  `yaml:"learned_date"`
	Method      string  `yaml:"method"`
	Confidence  float64 `yaml:"confidence,omitempty"`
}
