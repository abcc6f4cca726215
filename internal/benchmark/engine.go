package benchmark

import (
	"fmt"
	"sort"

	"github.com/ignite/marketing-iq/internal/scoring"
)

// maxKPIScore caps per-KPI scores so exceeding a benchmark earns headroom
// without letting one runaway metric swamp a category average.
const maxKPIScore = 120

// Engine scores actual KPI values against a fixed catalog. It holds no
// mutable state: Analyze is safe to call concurrently.
type Engine struct {
	kpis            map[string]KPIDefinition
	order           []string
	categoryWeights map[Category]float64
}

// NewEngine builds an engine from a KPI catalog. Categories missing from
// categoryWeights default to weight 1.0.
func NewEngine(kpis []KPIDefinition, categoryWeights map[Category]float64) *Engine {
	e := &Engine{
		kpis:            make(map[string]KPIDefinition, len(kpis)),
		order:           make([]string, 0, len(kpis)),
		categoryWeights: categoryWeights,
	}
	for _, k := range kpis {
		if k.Weight == 0 {
			k.Weight = 1.0
		}
		e.kpis[k.ID] = k
		e.order = append(e.order, k.ID)
	}
	return e
}

// Analyze scores the supplied actuals against the catalog. KPIs absent from
// actuals simply don't contribute; keys not in the catalog are ignored.
func (e *Engine) Analyze(entityID string, actuals map[string]float64) Report {
	var kpiScores []KPIScore
	categoryTotals := make(map[Category][]float64)
	categoryOrder := []Category{}

	for _, id := range e.order {
		kpi := e.kpis[id]
		actual, ok := actuals[id]
		if !ok {
			continue
		}
		score := e.scoreKPI(kpi, actual)
		kpiScores = append(kpiScores, score)
		if _, seen := categoryTotals[kpi.Category]; !seen {
			categoryOrder = append(categoryOrder, kpi.Category)
		}
		categoryTotals[kpi.Category] = append(categoryTotals[kpi.Category], score.Score)
	}

	// Category score is the plain mean of capped member scores. No second
	// cap at the category level: members are already bounded at 120.
	categoryScores := make(map[string]float64, len(categoryTotals))
	var weightedSum, weightTotal float64
	for _, cat := range categoryOrder {
		scores := categoryTotals[cat]
		var sum float64
		for _, s := range scores {
			sum += s
		}
		mean := sum / float64(len(scores))
		categoryScores[string(cat)] = mean

		w := e.categoryWeight(cat)
		weightedSum += mean * w
		weightTotal += w
	}

	var overall float64
	if weightTotal > 0 {
		overall = weightedSum / weightTotal
	}

	sorted := make([]KPIScore, len(kpiScores))
	copy(sorted, kpiScores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	var strengths []string
	for i := 0; i < len(sorted) && i < 3; i++ {
		if sorted[i].Score >= 75 {
			strengths = append(strengths, fmt.Sprintf("%s: %g%s",
				sorted[i].KPIName, sorted[i].ActualValue, e.kpis[sorted[i].KPIID].Unit))
		}
	}

	var improvements []string
	start := len(sorted) - 3
	if start < 0 {
		start = 0
	}
	for _, s := range sorted[start:] {
		if s.Score < 60 {
			improvements = append(improvements, fmt.Sprintf("%s: %g%s",
				s.KPIName, s.ActualValue, e.kpis[s.KPIID].Unit))
		}
	}

	var recommendations []string
	for _, s := range kpiScores {
		if s.Rating == scoring.RatingPoor || s.Rating == scoring.RatingCritical {
			recommendations = append(recommendations, s.Recommendation)
			if len(recommendations) == 5 {
				break
			}
		}
	}

	return Report{
		EntityID:        entityID,
		OverallScore:    overall,
		OverallRating:   scoring.Rate(overall),
		Grade:           scoring.Grade(overall),
		CategoryScores:  categoryScores,
		KPIScores:       kpiScores,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations,
	}
}

func (e *Engine) scoreKPI(kpi KPIDefinition, actual float64) KPIScore {
	benchmark := kpi.BenchmarkValue
	gap := actual - benchmark
	var gapPct float64
	if benchmark != 0 {
		gapPct = gap / benchmark * 100
	}

	var score float64
	if kpi.Direction == LowerIsBetter {
		if actual > 0 {
			score = min(maxKPIScore, benchmark/actual*100)
		} else {
			score = 100
		}
	} else {
		if benchmark > 0 {
			score = min(maxKPIScore, actual/benchmark*100)
		} else {
			score = 100
		}
	}

	rating := scoring.Rate(score)
	var rec string
	if rating == scoring.RatingExcellent || rating == scoring.RatingGood {
		rec = fmt.Sprintf("Maintain %s", kpi.Name)
	} else if kpi.Direction == LowerIsBetter {
		rec = fmt.Sprintf("Decrease %s", kpi.Name)
	} else {
		rec = fmt.Sprintf("Increase %s", kpi.Name)
	}

	return KPIScore{
		KPIID:          kpi.ID,
		KPIName:        kpi.Name,
		ActualValue:    actual,
		BenchmarkValue: benchmark,
		Score:          score,
		Gap:            gap,
		GapPercent:     gapPct,
		Rating:         rating,
		Recommendation: rec,
	}
}

func (e *Engine) categoryWeight(cat Category) float64 {
	if w, ok := e.categoryWeights[cat]; ok {
		return w
	}
	return 1.0
}
