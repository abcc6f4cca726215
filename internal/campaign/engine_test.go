package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_LowerIsBetterNormalization(t *testing.T) {
	// cost_per_acquisition range [0,100], lower is better, actual 80:
	// normalized = (100-80)/100*100 = 20 -> Critical.
	e := NewPerformanceEngine()
	score := e.Score("c-1", "Spring Sale", map[string]float64{"cost_per_acquisition": 80})

	require.Len(t, score.ComponentScores, 1)
	cs := score.ComponentScores[0]
	assert.Equal(t, 20.0, cs.NormalizedScore)
	assert.Equal(t, "Critical", cs.Rating)
	assert.Equal(t, StatusCritical, score.Status)
}

func TestScore_DegenerateRangeNeutral(t *testing.T) {
	e := NewEngine([]ScoringComponent{
		{ID: "flat", Name: "Flat", Weight: 10, HigherIsBetter: true, MinValue: 5, MaxValue: 5},
	})
	score := e.Score("c-1", "Test", map[string]float64{"flat": 999})

	require.Len(t, score.ComponentScores, 1)
	assert.Equal(t, 50.0, score.ComponentScores[0].NormalizedScore)
}

func TestScore_AbsentComponentsDontDilute(t *testing.T) {
	e := NewPerformanceEngine()
	// Only one component supplied; overall must equal its normalized score,
	// not be dragged down by the four missing ones.
	score := e.Score("c-1", "Test", map[string]float64{"conversion_rate": 10})

	assert.Equal(t, 100.0, score.OverallScore)
	assert.Equal(t, StatusExcellent, score.Status)
}

func TestScore_WeightedOverall(t *testing.T) {
	e := NewEngine([]ScoringComponent{
		{ID: "a", Name: "A", Weight: 75, HigherIsBetter: true, MinValue: 0, MaxValue: 100},
		{ID: "b", Name: "B", Weight: 25, HigherIsBetter: true, MinValue: 0, MaxValue: 100},
	})
	score := e.Score("c-1", "Test", map[string]float64{"a": 100, "b": 0})

	assert.InDelta(t, 75.0, score.OverallScore, 1e-9)
	assert.Equal(t, StatusGood, score.Status)
}

func TestScore_StatusBuckets(t *testing.T) {
	e := NewEngine([]ScoringComponent{
		{ID: "v", Name: "V", Weight: 1, HigherIsBetter: true, MinValue: 0, MaxValue: 100},
	})

	tests := []struct {
		value float64
		want  Status
	}{
		{95, StatusExcellent},
		{80, StatusGood},
		{65, StatusFair},
		{45, StatusPoor},
		{10, StatusCritical},
	}
	for _, tt := range tests {
		got := e.Score("c", "c", map[string]float64{"v": tt.value}).Status
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestScore_Recommendations(t *testing.T) {
	e := NewPerformanceEngine()

	critical := e.Score("c-1", "Failing", map[string]float64{
		"conversion_rate":      0.1,
		"click_through_rate":   0.1,
		"cost_per_acquisition": 99,
		"return_on_ad_spend":   10,
		"engagement_rate":      0.1,
	})
	require.NotEmpty(t, critical.Recommendations)
	assert.Equal(t, "Consider pausing campaign for optimization", critical.Recommendations[0])
	assert.LessOrEqual(t, len(critical.Recommendations), 5)

	excellent := e.Score("c-2", "Winning", map[string]float64{
		"conversion_rate":      9.5,
		"click_through_rate":   4.8,
		"cost_per_acquisition": 5,
		"return_on_ad_spend":   480,
		"engagement_rate":      9.2,
	})
	assert.Equal(t, StatusExcellent, excellent.Status)
	assert.Contains(t, excellent.Recommendations, "Scale successful tactics to other campaigns")
}

func TestScore_NoValuesZeroOverall(t *testing.T) {
	score := NewPerformanceEngine().Score("c-1", "Empty", nil)
	assert.Equal(t, 0.0, score.OverallScore)
	assert.Equal(t, StatusCritical, score.Status)
	assert.Empty(t, score.ComponentScores)
}
