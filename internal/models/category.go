// Package models provides the data structures used throughout the application.
package models

// CategoryConfig represents a category configuration in the YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// AliasConfig represents one alias entry in the aliases YAML file.
// Each alias maps to exactly one category; the file order is the match order.
type AliasConfig struct {
	Alias    string `yaml:"alias"`
	Category string `yaml:"category"`
}

// AliasesConfig represents the structure of the aliases YAML file
type AliasesConfig struct {
	Aliases []AliasConfig `yaml:"aliases"`
}

// ClassificationResult is the outcome of one category classification attempt.
// An empty Category signals "no opinion", which is distinct from a non-empty
// category with low confidence; callers apply their own confidence thresholds.
type ClassificationResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// IsZero reports whether the result carries no opinion.
func (r ClassificationResult) IsZero() bool {
	return r.Category == ""
}
