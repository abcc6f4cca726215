// Package funnel analyzes multi-stage marketing funnels: per-stage
// conversion and drop-off, leak detection against stage benchmarks,
// optimization priorities and what-if simulation.
package funnel

// Stage names a funnel stage.
type Stage string

const (
	Awareness     Stage = "Awareness"
	Interest      Stage = "Interest"
	Consideration Stage = "Consideration"
	Intent        Stage = "Intent"
	Evaluation    Stage = "Evaluation"
	Purchase      Stage = "Purchase"
	Retention     Stage = "Retention"
	Advocacy      Stage = "Advocacy"
)

// StageInput is the raw reading for one stage over the analysis window.
type StageInput struct {
	Visitors     int64   `json:"visitors"`
	Conversions  int64   `json:"conversions"`
	AvgTimeHours float64 `json:"avg_time"`
	Cost         float64 `json:"cost"`
}

// StageMetrics is the analyzed view of one stage.
//
// DropOffRate for the first stage is 100 minus its own conversion rate.
// For every later stage it measures entry efficiency instead: 100 minus
// the share of the prior stage's conversions that arrived as visitors.
// The distinction decides which stage a leak is attributed to.
type StageMetrics struct {
	Stage          Stage   `json:"stage"`
	Visitors       int64   `json:"visitors"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	DropOffRate    float64 `json:"drop_off_rate"`
	AvgTimeHours   float64 `json:"avg_time_in_stage"`
	Cost           float64 `json:"cost_per_stage"`
}

// Analysis is the full funnel report.
type Analysis struct {
	Stages            []StageMetrics `json:"stages"`
	OverallConversion float64        `json:"overall_conversion_rate"`
	TotalVisitors     int64          `json:"total_visitors"`
	TotalConversions  int64          `json:"total_conversions"`
	TotalCost         float64        `json:"total_cost"`
	CostPerConversion float64        `json:"cost_per_conversion"`
	BiggestLeaks      []string       `json:"biggest_leaks"`
	Priorities        []string       `json:"optimization_priorities"`
	ProjectedLift     float64        `json:"projected_lift"`
}

// SimulationResult compares a funnel before and after proposed
// conversion-rate improvements.
type SimulationResult struct {
	OriginalConversionRate  float64 `json:"original_conversion_rate"`
	SimulatedConversionRate float64 `json:"simulated_conversion_rate"`
	ImprovementPercent      float64 `json:"improvement_percent"`
	OriginalConversions     int64   `json:"original_conversions"`
	SimulatedConversions    int64   `json:"simulated_conversions"`
	AdditionalConversions   int64   `json:"additional_conversions"`
}

// stageBenchmark is the expected conversion rate (percent) and dwell
// time (hours) for a stage.
type stageBenchmark struct {
	Conversion float64
	TimeHours  float64
}
