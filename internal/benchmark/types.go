// Package benchmark compares actual KPI values against industry benchmark
// catalogs and rolls them up into a scored, graded report with
// strengths, improvement areas, and recommendations.
package benchmark

// Direction indicates which way a KPI should move to improve.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
)

// Category groups KPIs for the weighted rollup.
type Category string

const (
	CategoryAcquisition Category = "Acquisition"
	CategoryEngagement  Category = "Engagement"
	CategoryConversion  Category = "Conversion"
	CategoryRetention   Category = "Retention"
	CategoryRevenue     Category = "Revenue"
	CategoryBrand       Category = "Brand"
	CategoryContent     Category = "Content"
)

// KPIDefinition describes a KPI in a catalog: what to compare against and
// which direction is good. Catalogs are built once at startup and never
// mutated afterwards.
type KPIDefinition struct {
	ID             string    `json:"kpi_id"`
	Name           string    `json:"name"`
	BenchmarkValue float64   `json:"benchmark_value"`
	Direction      Direction `json:"direction"`
	Category       Category  `json:"category"`
	Unit           string    `json:"unit"`
	Weight         float64   `json:"weight"`
}

// KPIScore is the scored comparison of one KPI against its benchmark.
type KPIScore struct {
	KPIID          string  `json:"kpi_id"`
	KPIName        string  `json:"kpi_name"`
	ActualValue    float64 `json:"actual_value"`
	BenchmarkValue float64 `json:"benchmark_value"`
	Score          float64 `json:"score"`
	Gap            float64 `json:"gap"`
	GapPercent     float64 `json:"gap_percent"`
	Rating         string  `json:"rating"`
	Recommendation string  `json:"recommendation"`
}

// Report is the full benchmark analysis for one entity.
type Report struct {
	EntityID        string             `json:"entity_id"`
	OverallScore    float64            `json:"overall_score"`
	OverallRating   string             `json:"overall_rating"`
	Grade           string             `json:"grade"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	KPIScores       []KPIScore         `json:"kpi_scores"`
	Strengths       []string           `json:"strengths"`
	Improvements    []string           `json:"improvements"`
	Recommendations []string           `json:"recommendations"`
}
