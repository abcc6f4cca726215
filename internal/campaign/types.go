// Package campaign scores campaign performance through weighted,
// range-normalized components and buckets the result into a five-level
// status with recommendations.
package campaign

// Status buckets an overall campaign score. Cut points match the shared
// rating ladder so a score reads the same here as in every other engine.
type Status string

const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusFair      Status = "Fair"
	StatusPoor      Status = "Poor"
	StatusCritical  Status = "Critical"
)

// ScoringComponent defines the linear normalization range for one metric.
type ScoringComponent struct {
	ID             string  `json:"component_id"`
	Name           string  `json:"name"`
	Weight         float64 `json:"weight"`
	HigherIsBetter bool    `json:"higher_is_better"`
	MinValue       float64 `json:"min_value"`
	MaxValue       float64 `json:"max_value"`
}

// ComponentScore is the normalized, weighted score of one component.
type ComponentScore struct {
	ID              string  `json:"component_id"`
	Name            string  `json:"name"`
	RawValue        float64 `json:"raw_value"`
	NormalizedScore float64 `json:"normalized_score"`
	WeightedScore   float64 `json:"weighted_score"`
	Rating          string  `json:"rating"`
}

// Score is the complete scoring result for one campaign.
type Score struct {
	CampaignID      string           `json:"campaign_id"`
	CampaignName    string           `json:"campaign_name"`
	OverallScore    float64          `json:"overall_score"`
	Status          Status           `json:"status"`
	ComponentScores []ComponentScore `json:"component_scores"`
	Strengths       []string         `json:"strengths"`
	Improvements    []string         `json:"improvements"`
	Recommendations []string         `json:"recommendations"`
}
