package presenter

import "github.com/latestcomment/interview-cards/internal/models"

// Thresholds are inclusive lower bounds of each tier.
type Thresholds struct {
	Excellent float64 `yaml:"excellent"`
	Great     float64 `yaml:"great"`
	Good      float64 `yaml:"good"`
}

var DefaultThresholds = Thresholds{Excellent: 90, Great: 80, Good: 70}

// Tier is defined for every float64. NaN compares false everywhere and lands
// in KeepImproving.
func (t Thresholds) Tier(score float64) models.ScoreTierConfig {
	switch {
	case score >= t.Excellent:
		return models.ScoreTierConfig{Tier: models.TierExcellent, Color: "text-green-600", Icon: "trophy"}
	case score >= t.Great:
		return models.ScoreTierConfig{Tier: models.TierGreat, Color: "text-blue-600", Icon: "star"}
	case score >= t.Good:
		return models.ScoreTierConfig{Tier: models.TierGood, Color: "text-yellow-600", Icon: "thumbs-up"}
	default:
		return models.ScoreTierConfig{Tier: models.TierKeepImproving, Color: "text-orange-600", Icon: "trending-up"}
	}
}

func ScoreTierFor(score float64) models.ScoreTierConfig {
	return DefaultThresholds.Tier(score)
}
