package ranking

// Config holds all scoring constants for the ranking system.
type Config struct {
	// Title scoring tiers per query term
	TitleExactScore     float64 `yaml:"title_exact_score"`     // default: 100
	TitlePrefixScore    float64 `yaml:"title_prefix_score"`    // default: 50
	TitleSubstringScore float64 `yaml:"title_substring_score"` // default: 20

	// Per-term scores for the remaining fields
	DescriptionTermScore float64 `yaml:"description_term_score"` // default: 10
	BodyTermScore        float64 `yaml:"body_term_score"`        // default: 5
	TagTermScore         float64 `yaml:"tag_term_score"`         // default: 15
	CategoryTermScore    float64 `yaml:"category_term_score"`    // default: 15

	// Recency multiplier settings
	RecencyEnabled    *bool   `yaml:"recency_enabled"`    // default: true
	RecencyWindowDays int     `yaml:"recency_window_days"` // default: 30
	RecencyMultiplier float64 `yaml:"recency_multiplier"`  // default: 1.2
}

// DefaultConfig returns the default ranking configuration.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		TitleExactScore:     100,
		TitlePrefixScore:    50,
		TitleSubstringScore: 20,

		DescriptionTermScore: 10,
		BodyTermScore:        5,
		TagTermScore:         15,
		CategoryTermScore:    15,

		RecencyEnabled:    &enabled,
		RecencyWindowDays: 30,
		RecencyMultiplier: 1.2,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.TitleExactScore == 0 {
		c.TitleExactScore = defaults.TitleExactScore
	}
	if c.TitlePrefixScore == 0 {
		c.TitlePrefixScore = defaults.TitlePrefixScore
	}
	if c.TitleSubstringScore == 0 {
		c.TitleSubstringScore = defaults.TitleSubstringScore
	}
	if c.DescriptionTermScore == 0 {
		c.DescriptionTermScore = defaults.DescriptionTermScore
	}
	if c.BodyTermScore == 0 {
		c.BodyTermScore = defaults.BodyTermScore
	}
	if c.TagTermScore == 0 {
		c.TagTermScore = defaults.TagTermScore
	}
	if c.CategoryTermScore == 0 {
		c.CategoryTermScore = defaults.CategoryTermScore
	}
	if c.RecencyEnabled == nil {
		c.RecencyEnabled = defaults.RecencyEnabled
	}
	if c.RecencyWindowDays == 0 {
		c.RecencyWindowDays = defaults.RecencyWindowDays
	}
	if c.RecencyMultiplier == 0 {
		c.RecencyMultiplier = defaults.RecencyMultiplier
	}
}

// RecencyBoostEnabled reports whether the recency multiplier is active.
func (c *Config) RecencyBoostEnabled() bool {
	return c.RecencyEnabled == nil || *c.RecencyEnabled
}
