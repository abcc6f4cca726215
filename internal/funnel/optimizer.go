package funnel

import (
	"fmt"
	"sort"

	"github.com/ignite/marketing-iq/internal/scoring"
)

var stageBenchmarks = map[Stage]stageBenchmark{
	Awareness:     {Conversion: 30.0, TimeHours: 24},
	Interest:      {Conversion: 50.0, TimeHours: 48},
	Consideration: {Conversion: 40.0, TimeHours: 72},
	Intent:        {Conversion: 60.0, TimeHours: 48},
	Evaluation:    {Conversion: 50.0, TimeHours: 96},
	Purchase:      {Conversion: 70.0, TimeHours: 24},
	Retention:     {Conversion: 85.0, TimeHours: 720},
	Advocacy:      {Conversion: 30.0, TimeHours: 2160},
}

// Fallbacks for stages without a benchmark entry.
const (
	defaultStageConversion = 50.0
	defaultStageTimeHours  = 48.0
)

func benchmarkFor(s Stage) stageBenchmark {
	if b, ok := stageBenchmarks[s]; ok {
		return b
	}
	return stageBenchmark{Conversion: defaultStageConversion, TimeHours: defaultStageTimeHours}
}

// Optimizer analyzes a funnel with a fixed stage ordering.
type Optimizer struct {
	stages []Stage
}

// DefaultStages is the canonical five-stage acquisition funnel.
func DefaultStages() []Stage {
	return []Stage{Awareness, Interest, Consideration, Intent, Purchase}
}

// NewOptimizer builds an optimizer over the given stage sequence, or the
// default five-stage funnel when none is supplied.
func NewOptimizer(stages []Stage) *Optimizer {
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	owned := make([]Stage, len(stages))
	copy(owned, stages)
	return &Optimizer{stages: owned}
}

// Stages returns the optimizer's stage ordering.
func (o *Optimizer) Stages() []Stage {
	out := make([]Stage, len(o.stages))
	copy(out, o.stages)
	return out
}

// Analyze computes per-stage metrics and the funnel-level report.
// Stages missing from data are treated as all-zero readings.
func (o *Optimizer) Analyze(data map[Stage]StageInput) Analysis {
	metrics := make([]StageMetrics, 0, len(o.stages))
	var prevConversions int64 = -1

	for _, stage := range o.stages {
		in := data[stage]
		convRate := scoring.SafePercent(float64(in.Conversions), float64(in.Visitors))

		dropOff := 100 - convRate
		if prevConversions > 0 {
			entryRate := float64(in.Visitors) / float64(prevConversions) * 100
			dropOff = 100 - entryRate
		}

		metrics = append(metrics, StageMetrics{
			Stage:          stage,
			Visitors:       in.Visitors,
			Conversions:    in.Conversions,
			ConversionRate: convRate,
			DropOffRate:    dropOff,
			AvgTimeHours:   in.AvgTimeHours,
			Cost:           in.Cost,
		})

		// The next stage's expected entry base is this stage's conversions.
		prevConversions = in.Conversions
	}

	var totalVisitors, totalConversions int64
	if len(metrics) > 0 {
		totalVisitors = metrics[0].Visitors
		totalConversions = metrics[len(metrics)-1].Conversions
	}
	var totalCost float64
	for _, m := range metrics {
		totalCost += m.Cost
	}

	return Analysis{
		Stages:            metrics,
		OverallConversion: scoring.SafePercent(float64(totalConversions), float64(totalVisitors)),
		TotalVisitors:     totalVisitors,
		TotalConversions:  totalConversions,
		TotalCost:         totalCost,
		CostPerConversion: scoring.SafeRatio(totalCost, float64(totalConversions)),
		BiggestLeaks:      identifyLeaks(metrics),
		Priorities:        buildPriorities(metrics),
		ProjectedLift:     projectedLift(metrics),
	}
}

// identifyLeaks flags stages converting below 70% of their benchmark,
// worst drop-off first, at most five.
func identifyLeaks(metrics []StageMetrics) []string {
	type leak struct {
		stage     Stage
		dropOff   float64
		benchmark float64
	}
	var leaks []leak

	for _, m := range metrics {
		expected := benchmarkFor(m.Stage).Conversion
		if m.ConversionRate < expected*0.7 {
			leaks = append(leaks, leak{stage: m.Stage, dropOff: m.DropOffRate, benchmark: expected})
		}
	}

	sort.SliceStable(leaks, func(i, j int) bool {
		return leaks[i].dropOff > leaks[j].dropOff
	})

	out := make([]string, 0, len(leaks))
	for i, l := range leaks {
		if i == 5 {
			break
		}
		out = append(out, fmt.Sprintf("%s: %.1f%% drop-off (benchmark: %.1f%%)",
			l.stage, l.dropOff, 100-l.benchmark))
	}
	return out
}

// buildPriorities ranks below-benchmark stages by potential conversion
// gain and appends dwell-time warnings for stages running over 1.5x the
// benchmark time. At most five entries.
func buildPriorities(metrics []StageMetrics) []string {
	type opportunity struct {
		stage          Stage
		improvementPct float64
		potentialGain  float64
	}
	var priorities []string
	var opportunities []opportunity

	for _, m := range metrics {
		bench := benchmarkFor(m.Stage)

		if m.ConversionRate < bench.Conversion {
			improvement := bench.Conversion - m.ConversionRate
			opportunities = append(opportunities, opportunity{
				stage:          m.Stage,
				improvementPct: improvement,
				potentialGain:  float64(m.Visitors) * improvement / 100,
			})
		}

		if m.AvgTimeHours > bench.TimeHours*1.5 {
			priorities = append(priorities, fmt.Sprintf(
				"Reduce time in %s stage - currently %.0fh vs %.0fh benchmark",
				m.Stage, m.AvgTimeHours, bench.TimeHours))
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].potentialGain > opportunities[j].potentialGain
	})
	if len(opportunities) > 3 {
		opportunities = opportunities[:3]
	}
	for _, opp := range opportunities {
		priorities = append([]string{fmt.Sprintf(
			"Optimize %s: +%.1f%% could add %.0f conversions",
			opp.stage, opp.improvementPct, opp.potentialGain)}, priorities...)
	}

	if len(priorities) > 5 {
		priorities = priorities[:5]
	}
	return priorities
}

// projectedLift is the relative conversion improvement if every stage
// reached at least its benchmark rate.
func projectedLift(metrics []StageMetrics) float64 {
	if len(metrics) == 0 {
		return 0
	}

	currentRate := 1.0
	potentialRate := 1.0
	for _, m := range metrics {
		expected := benchmarkFor(m.Stage).Conversion / 100
		current := m.ConversionRate / 100
		currentRate *= current
		potentialRate *= max(current, expected)
	}

	if currentRate > 0 {
		return (potentialRate/currentRate - 1) * 100
	}
	return 0
}

// Simulate applies conversion-rate improvements (in percentage points,
// per stage) and cascades the extra conversions downstream: each later
// stage's visitor count becomes the previous stage's simulated
// conversions, re-converted at that stage's (possibly improved) rate
// capped at 100%.
func (o *Optimizer) Simulate(data map[Stage]StageInput, improvements map[Stage]float64) SimulationResult {
	modified := make(map[Stage]StageInput, len(data))
	for stage, in := range data {
		m := in
		if imp, ok := improvements[stage]; ok && in.Visitors > 0 {
			rate := float64(in.Conversions) / float64(in.Visitors)
			rate = min(1.0, rate+imp/100)
			m.Conversions = int64(float64(in.Visitors) * rate)
		}
		modified[stage] = m
	}

	var prevConversions int64 = -1
	for _, stage := range o.stages {
		m, ok := modified[stage]
		if !ok {
			continue
		}
		if prevConversions >= 0 {
			orig := data[stage]
			denom := orig.Visitors
			if denom < 1 {
				denom = 1
			}
			rate := float64(orig.Conversions) / float64(denom)
			if imp, ok := improvements[stage]; ok {
				rate = min(1.0, rate+imp/100)
			}
			m.Visitors = prevConversions
			m.Conversions = int64(float64(prevConversions) * rate)
			modified[stage] = m
		}
		prevConversions = m.Conversions
	}

	simulated := o.Analyze(modified)
	original := o.Analyze(data)

	return SimulationResult{
		OriginalConversionRate:  original.OverallConversion,
		SimulatedConversionRate: simulated.OverallConversion,
		ImprovementPercent:      simulated.OverallConversion - original.OverallConversion,
		OriginalConversions:     original.TotalConversions,
		SimulatedConversions:    simulated.TotalConversions,
		AdditionalConversions:   simulated.TotalConversions - original.TotalConversions,
	}
}
