package campaign

import (
	"fmt"
	"sort"

	"github.com/ignite/marketing-iq/internal/scoring"
)

// Engine scores campaigns against a fixed component configuration.
// Stateless after construction; safe for concurrent use.
type Engine struct {
	components  map[string]ScoringComponent
	order       []string
	totalWeight float64
}

// NewEngine builds a scoring engine from a component configuration.
func NewEngine(components []ScoringComponent) *Engine {
	e := &Engine{
		components: make(map[string]ScoringComponent, len(components)),
		order:      make([]string, 0, len(components)),
	}
	for _, c := range components {
		e.components[c.ID] = c
		e.order = append(e.order, c.ID)
		e.totalWeight += c.Weight
	}
	return e
}

// NewPerformanceEngine builds the default campaign performance scorer.
func NewPerformanceEngine() *Engine {
	return NewEngine([]ScoringComponent{
		{ID: "conversion_rate", Name: "Conversion Rate", Weight: 25, HigherIsBetter: true, MinValue: 0, MaxValue: 10},
		{ID: "click_through_rate", Name: "Click-Through Rate", Weight: 20, HigherIsBetter: true, MinValue: 0, MaxValue: 5},
		{ID: "cost_per_acquisition", Name: "Cost per Acquisition", Weight: 20, HigherIsBetter: false, MinValue: 0, MaxValue: 100},
		{ID: "return_on_ad_spend", Name: "Return on Ad Spend", Weight: 20, HigherIsBetter: true, MinValue: 0, MaxValue: 500},
		{ID: "engagement_rate", Name: "Engagement Rate", Weight: 15, HigherIsBetter: true, MinValue: 0, MaxValue: 10},
	})
}

// Score evaluates the supplied component values. Components with no value
// contribute to neither the numerator nor the weight denominator, so the
// average is never diluted by absent fields.
func (e *Engine) Score(campaignID, campaignName string, values map[string]float64) Score {
	var componentScores []ComponentScore
	var totalWeighted, totalWeightUsed float64

	for _, id := range e.order {
		comp := e.components[id]
		raw, ok := values[id]
		if !ok {
			continue
		}
		normalized := scoring.NormalizeLinear(raw, comp.MinValue, comp.MaxValue, comp.HigherIsBetter)
		weighted := normalized * (comp.Weight / e.totalWeight)
		componentScores = append(componentScores, ComponentScore{
			ID:              id,
			Name:            comp.Name,
			RawValue:        raw,
			NormalizedScore: normalized,
			WeightedScore:   weighted,
			Rating:          scoring.Rate(normalized),
		})
		totalWeighted += weighted
		totalWeightUsed += comp.Weight / e.totalWeight
	}

	var overall float64
	if totalWeightUsed > 0 {
		overall = totalWeighted / totalWeightUsed
	}
	status := bucketStatus(overall)

	sorted := make([]ComponentScore, len(componentScores))
	copy(sorted, componentScores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NormalizedScore > sorted[j].NormalizedScore
	})

	var strengths []string
	for i := 0; i < len(sorted) && i < 3; i++ {
		if sorted[i].NormalizedScore >= 70 {
			strengths = append(strengths, sorted[i].Name)
		}
	}

	var improvements []string
	start := len(sorted) - 3
	if start < 0 {
		start = 0
	}
	for _, s := range sorted[start:] {
		if s.NormalizedScore < 60 {
			improvements = append(improvements, s.Name)
		}
	}

	return Score{
		CampaignID:      campaignID,
		CampaignName:    campaignName,
		OverallScore:    overall,
		Status:          status,
		ComponentScores: componentScores,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations(status, componentScores),
	}
}

func bucketStatus(score float64) Status {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 60:
		return StatusFair
	case score >= 40:
		return StatusPoor
	default:
		return StatusCritical
	}
}

func recommendations(status Status, scores []ComponentScore) []string {
	var recs []string
	weak := 0
	for _, s := range scores {
		if s.NormalizedScore < 60 {
			recs = append(recs, fmt.Sprintf("Improve %s performance", s.Name))
			weak++
			if weak == 3 {
				break
			}
		}
	}
	if status == StatusCritical {
		recs = append([]string{"Consider pausing campaign for optimization"}, recs...)
	} else if status == StatusExcellent {
		recs = append(recs, "Scale successful tactics to other campaigns")
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
