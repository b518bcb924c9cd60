package models

// Classification is the confidence-scored outcome of classifying one description.
type Classification struct {
	Category   string
	Method     string
	Confidence float64
}

// Uncategorized returns the zero-result classification.
func Uncategorized() Classification {
	return Classification{
		Category:   CategoryUncategorized,
		Method:     MethodNone,
		Confidence: 0,
	}
}

// CategoryConfig represents one category in the categories YAML file.
// The slice order in the file is the tie-break order for matching, so both
// loading and iteration preserve it.
type CategoryConfig struct {
	Name      string   `yaml:"name"`
	Merchants []string `yaml:"merchants"`
	Keywords  []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
