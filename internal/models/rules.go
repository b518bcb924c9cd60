package models

// MerchantRule bounds plausible amounts for a named merchant. Rules are
// owned by the config store and read-only to the engines.
type MerchantRule struct {
	MinAmount     float64  `yaml:"min_amount"`
	MaxAmount     float64  `yaml:"max_amount"`
	Category      string   `yaml:"category,omitempty"`
	BillingCycles []string `yaml:"billing_cycles,omitempty"`
	TypicalRange  string   `yaml:"typical_range,omitempty"`
}

// SupportsBillingCycle reports whether the rule declares the given cycle.
func (r MerchantRule) SupportsBillingCycle(cycle string) bool {
	for _, c := range r.BillingCycles {
		if c == cycle {
			return true
		}
	}
	return false
}

// ValidationRulesConfig represents the merchant rules YAML file.
type ValidationRulesConfig struct {
	MerchantRanges map[string]MerchantRule `yaml:"merchant_ranges"`
}
