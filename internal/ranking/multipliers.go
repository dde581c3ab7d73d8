package ranking

import "time"

// RecencyMultiplier boosts records updated within the configured window.
type RecencyMultiplier struct {
	config *Config
}

// NewRecencyMultiplier creates a RecencyMultiplier.
func NewRecencyMultiplier(config *Config) *RecencyMultiplier {
	return &RecencyMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *RecencyMultiplier) Name() string {
	return "recency"
}

// Multiply applies the recency boost to the base score. Records with a zero
// UpdatedAt or outside the window are unchanged.
func (m *RecencyMultiplier) Multiply(ctx *ScoringContext, baseScore float64) float64 {
	if !m.config.RecencyBoostEnabled() || baseScore == 0 || ctx.Record == nil {
		return baseScore
	}

	updatedAt := ctx.Record.UpdatedAt
	if updatedAt.IsZero() {
		return baseScore
	}

	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	window := time.Duration(m.config.RecencyWindowDays) * 24 * time.Hour
	if now.Sub(updatedAt) < window {
		return baseScore * m.config.RecencyMultiplier
	}
	return baseScore
}

// DefaultMultipliers returns the default set of multipliers based on config.
func DefaultMultipliers(config *Config) []Multiplier {
	var multipliers []Multiplier
	if config.RecencyBoostEnabled() {
		multipliers = append(multipliers, NewRecencyMultiplier(config))
	}
	return multipliers
}

// ApplyMultipliers applies a list of multipliers to a base score.
func ApplyMultipliers(ctx *ScoringContext, baseScore float64, multipliers []Multiplier) float64 {
	score := baseScore
	for _, m := range multipliers {
		score = m.Multiply(ctx, score)
	}
	return score
}
