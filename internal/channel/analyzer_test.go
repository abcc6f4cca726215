package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeChannel_KPIsFromRawCounters(t *testing.T) {
	a := NewAnalyzer(0)
	perf := a.AnalyzeChannel(Email, Metrics{
		Impressions: 10000,
		Clicks:      350,
		Conversions: 14,
		Spend:       140,
		Revenue:     700,
	}, 1400)

	assert.InDelta(t, 3.5, perf.CTR, 1e-9)
	assert.InDelta(t, 4.0, perf.ConversionRate, 1e-9)
	assert.InDelta(t, 0.4, perf.CPC, 1e-9)
	assert.InDelta(t, 10.0, perf.CPA, 1e-9)
	assert.InDelta(t, 500.0, perf.ROAS, 1e-9)
	assert.InDelta(t, 50.0, perf.ContributionPercent, 1e-9)
}

func TestAnalyzeChannel_ZeroCountersGuarded(t *testing.T) {
	perf := NewAnalyzer(0).AnalyzeChannel(Display, Metrics{}, 0)

	assert.Equal(t, 0.0, perf.CTR)
	assert.Equal(t, 0.0, perf.ConversionRate)
	assert.Equal(t, 0.0, perf.CPC)
	assert.Equal(t, 0.0, perf.CPA)
	assert.Equal(t, 0.0, perf.ROAS)
	assert.Equal(t, 0.0, perf.ContributionPercent)
}

func TestEfficiency_BlendAndCaps(t *testing.T) {
	a := NewAnalyzer(400)

	// Email benchmarks: ctr 3.5, conv 4.0, cpa 10. Everything exactly on
	// benchmark with roas at target scores the full 100.
	got := a.efficiency(Email, 3.5, 4.0, 10.0, 400)
	assert.InDelta(t, 100.0, got, 1e-9)

	// Sub-scores cap at 100 before weighting.
	capped := a.efficiency(Email, 35, 40, 1, 4000)
	assert.InDelta(t, 100.0, capped, 1e-9)
}

func TestEfficiency_SkipsZeroBenchmarkDimensions(t *testing.T) {
	a := NewAnalyzer(400)

	// Direct has no CTR or CPA benchmark; only conversion (0.3) and
	// ROAS (0.25) contribute. On-benchmark conversion plus on-target
	// ROAS gives 55, not 100.
	got := a.efficiency(Direct, 0, 5.0, 20, 400)
	assert.InDelta(t, 55.0, got, 1e-9)
}

func TestAnalyzeMix_PortfolioTotalsAndOrdering(t *testing.T) {
	a := NewAnalyzer(400)
	mix := a.AnalyzeMix(map[Type]Metrics{
		Email:      {Impressions: 10000, Clicks: 350, Conversions: 14, Spend: 140, Revenue: 700},
		Display:    {Impressions: 50000, Clicks: 100, Conversions: 1, Spend: 600, Revenue: 150},
		PaidSearch: {Impressions: 20000, Clicks: 400, Conversions: 10, Spend: 500, Revenue: 1600},
	})

	assert.InDelta(t, 1240.0, mix.TotalSpend, 1e-9)
	assert.InDelta(t, 2450.0, mix.TotalRevenue, 1e-9)
	assert.Equal(t, int64(25), mix.TotalConversions)
	assert.InDelta(t, 2450.0/1240.0*100, mix.OverallROAS, 1e-9)

	require.Len(t, mix.Performances, 3)
	for i := 1; i < len(mix.Performances); i++ {
		assert.GreaterOrEqual(t,
			mix.Performances[i-1].EfficiencyScore,
			mix.Performances[i].EfficiencyScore)
	}
	assert.Equal(t, Email, mix.Performances[0].Channel)
	assert.Contains(t, mix.Underperformers, Display)
}

func TestBudgetShifts_Heuristic(t *testing.T) {
	a := NewAnalyzer(400)

	// efficiency 85 at a 10% share: min(13, 40) - 10 = +3 points.
	performances := []Performance{
		{Channel: Email, EfficiencyScore: 85, Metrics: Metrics{Spend: 100}},
		{Channel: PaidSearch, EfficiencyScore: 70, Metrics: Metrics{Spend: 300}},
		{Channel: Display, EfficiencyScore: 45, Metrics: Metrics{Spend: 300}},
		{Channel: Video, EfficiencyScore: 20, Metrics: Metrics{Spend: 300}},
	}
	shifts := a.budgetShifts(performances, 1000)

	assert.InDelta(t, 3.0, shifts[Email], 1e-9)
	assert.NotContains(t, shifts, PaidSearch)
	assert.InDelta(t, -6.0, shifts[Display], 1e-9)
	assert.InDelta(t, -12.0, shifts[Video], 1e-9)
}

func TestBudgetShifts_CapAndNoiseFloor(t *testing.T) {
	a := NewAnalyzer(400)

	// A strong channel already at 35% share hits the 40% cap: shift +5.
	capped := a.budgetShifts([]Performance{
		{Channel: Email, EfficiencyScore: 90, Metrics: Metrics{Spend: 350}},
	}, 1000)
	assert.InDelta(t, 5.0, capped[Email], 1e-9)

	// A weak channel with a tiny share produces a sub-2-point shift,
	// which is suppressed as noise.
	quiet := a.budgetShifts([]Performance{
		{Channel: Video, EfficiencyScore: 45, Metrics: Metrics{Spend: 40}},
	}, 1000)
	assert.Empty(t, quiet)
}

func TestOpportunities_UnderfundedWinnerAndOverfundedLoser(t *testing.T) {
	a := NewAnalyzer(400)

	opps := a.opportunities([]Performance{
		{Channel: Email, EfficiencyScore: 85, Metrics: Metrics{Spend: 100}},
		{Channel: Display, EfficiencyScore: 30, Metrics: Metrics{Spend: 400}},
	}, 1000)

	require.Len(t, opps, 2)
	assert.Contains(t, opps[0], "Scale Email")
	assert.Contains(t, opps[1], "Reduce Display Ads spend")
}

func TestChannelRecommendations_CappedAtThree(t *testing.T) {
	a := NewAnalyzer(400)
	// Everything below benchmark triggers four candidate recommendations.
	perf := a.AnalyzeChannel(PaidSearch, Metrics{
		Impressions: 100000,
		Clicks:      100,
		Conversions: 1,
		Spend:       500,
		Revenue:     100,
	}, 100)

	assert.LessOrEqual(t, len(perf.Recommendations), 3)
	assert.NotEmpty(t, perf.Recommendations)
}
