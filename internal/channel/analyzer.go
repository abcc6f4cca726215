package channel

import (
	"fmt"
	"sort"

	"github.com/ignite/marketing-iq/internal/scoring"
)

// Efficiency blend weights. CTR counts least because it is the furthest
// from revenue; the remaining dimensions split the rest.
const (
	weightCTR        = 0.2
	weightConversion = 0.3
	weightCPA        = 0.25
	weightROAS       = 0.25
)

// DefaultTargetROAS is the revenue-to-spend target in percent.
const DefaultTargetROAS = 400.0

var channelBenchmarks = map[Type]benchmark{
	OrganicSearch: {CTR: 3.0, ConversionRate: 3.0, CPA: 30.0},
	PaidSearch:    {CTR: 2.0, ConversionRate: 2.5, CPA: 50.0},
	SocialOrganic: {CTR: 1.0, ConversionRate: 1.5, CPA: 0},
	SocialPaid:    {CTR: 1.5, ConversionRate: 1.0, CPA: 40.0},
	Email:         {CTR: 3.5, ConversionRate: 4.0, CPA: 10.0},
	Display:       {CTR: 0.5, ConversionRate: 0.5, CPA: 60.0},
	Affiliate:     {CTR: 1.0, ConversionRate: 2.0, CPA: 35.0},
	Referral:      {CTR: 2.5, ConversionRate: 3.5, CPA: 20.0},
	Direct:        {CTR: 0, ConversionRate: 5.0, CPA: 0},
	Video:         {CTR: 1.2, ConversionRate: 1.0, CPA: 45.0},
	Content:       {CTR: 2.0, ConversionRate: 2.5, CPA: 25.0},
}

// Analyzer scores channels against per-channel benchmarks and a shared
// ROAS target. Stateless after construction; safe for concurrent use.
type Analyzer struct {
	targetROAS float64
}

// NewAnalyzer builds an analyzer with the given ROAS target in percent.
// A non-positive target falls back to DefaultTargetROAS.
func NewAnalyzer(targetROAS float64) *Analyzer {
	if targetROAS <= 0 {
		targetROAS = DefaultTargetROAS
	}
	return &Analyzer{targetROAS: targetROAS}
}

// AnalyzeChannel evaluates one channel. totalRevenue sets the
// contribution percentage and may be zero when unknown.
func (a *Analyzer) AnalyzeChannel(ch Type, m Metrics, totalRevenue float64) Performance {
	ctr := scoring.SafePercent(float64(m.Clicks), float64(m.Impressions))
	convRate := scoring.SafePercent(float64(m.Conversions), float64(m.Clicks))
	cpc := scoring.SafeRatio(m.Spend, float64(m.Clicks))
	cpa := scoring.SafeRatio(m.Spend, float64(m.Conversions))
	roas := scoring.SafePercent(m.Revenue, m.Spend)
	contribution := scoring.SafePercent(m.Revenue, totalRevenue)

	efficiency := a.efficiency(ch, ctr, convRate, cpa, roas)

	return Performance{
		Channel:             ch,
		Metrics:             m,
		CTR:                 ctr,
		ConversionRate:      convRate,
		CPC:                 cpc,
		CPA:                 cpa,
		ROAS:                roas,
		ContributionPercent: contribution,
		EfficiencyScore:     efficiency,
		Rating:              scoring.Rate(efficiency),
		Recommendations:     a.channelRecommendations(ch, ctr, convRate, cpa, roas, efficiency),
	}
}

// AnalyzeMix evaluates the whole channel portfolio and recommends budget
// reallocation. Output ordering is deterministic: performances are sorted
// by efficiency descending, ties broken by channel name.
func (a *Analyzer) AnalyzeMix(channels map[Type]Metrics) Mix {
	var totalSpend, totalRevenue float64
	var totalConversions int64
	for _, m := range channels {
		totalSpend += m.Spend
		totalRevenue += m.Revenue
		totalConversions += m.Conversions
	}

	performances := make([]Performance, 0, len(channels))
	for ch, m := range channels {
		performances = append(performances, a.AnalyzeChannel(ch, m, totalRevenue))
	}
	sort.Slice(performances, func(i, j int) bool {
		if performances[i].EfficiencyScore != performances[j].EfficiencyScore {
			return performances[i].EfficiencyScore > performances[j].EfficiencyScore
		}
		return performances[i].Channel < performances[j].Channel
	})

	var top []Type
	for i := 0; i < len(performances) && i < 3; i++ {
		if performances[i].EfficiencyScore >= 70 {
			top = append(top, performances[i].Channel)
		}
	}
	var under []Type
	for _, p := range performances {
		if p.EfficiencyScore < 50 {
			under = append(under, p.Channel)
		}
	}

	return Mix{
		TotalSpend:       totalSpend,
		TotalRevenue:     totalRevenue,
		TotalConversions: totalConversions,
		OverallROAS:      scoring.SafePercent(totalRevenue, totalSpend),
		Performances:     performances,
		TopPerformers:    top,
		Underperformers:  under,
		Opportunities:    a.opportunities(performances, totalSpend),
		BudgetShifts:     a.budgetShifts(performances, totalSpend),
	}
}

// efficiency blends up to four benchmark-relative sub-scores. Dimensions
// whose benchmark is zero are skipped so channels like Direct are not
// penalized for rates they cannot have. The ROAS dimension always counts.
func (a *Analyzer) efficiency(ch Type, ctr, convRate, cpa, roas float64) float64 {
	bench := channelBenchmarks[ch]

	var total float64
	if bench.CTR > 0 {
		total += min(100, ctr/bench.CTR*100) * weightCTR
	}
	if bench.ConversionRate > 0 {
		total += min(100, convRate/bench.ConversionRate*100) * weightConversion
	}
	if bench.CPA > 0 && cpa > 0 {
		total += min(100, bench.CPA/cpa*100) * weightCPA
	}
	total += min(100, roas/a.targetROAS*100) * weightROAS
	return total
}

func (a *Analyzer) channelRecommendations(ch Type, ctr, convRate, cpa, roas, score float64) []string {
	bench := channelBenchmarks[ch]
	var recs []string

	if ctr < bench.CTR*0.8 {
		recs = append(recs, fmt.Sprintf("Improve %s CTR - test new ad creative and targeting", ch))
	}
	if convRate < bench.ConversionRate*0.8 {
		recs = append(recs, fmt.Sprintf("Optimize %s landing pages for better conversion", ch))
	}
	if bench.CPA > 0 && cpa > bench.CPA*1.2 {
		recs = append(recs, fmt.Sprintf("Reduce %s CPA through audience refinement", ch))
	}
	if roas < a.targetROAS*0.8 {
		recs = append(recs, fmt.Sprintf("Review %s targeting and bid strategy", ch))
	}
	if score >= 80 {
		recs = append(recs, fmt.Sprintf("Consider increasing %s budget - strong performer", ch))
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func (a *Analyzer) opportunities(performances []Performance, totalSpend float64) []string {
	var opps []string

	for _, p := range performances {
		share := scoring.SafePercent(p.Metrics.Spend, totalSpend)
		if p.EfficiencyScore > 75 && share < 15 {
			opps = append(opps, fmt.Sprintf("Scale %s - high efficiency (%.0f) but low budget share (%.1f%%)",
				p.Channel, p.EfficiencyScore, share))
		}
	}
	for _, p := range performances {
		share := scoring.SafePercent(p.Metrics.Spend, totalSpend)
		if p.EfficiencyScore < 50 && share > 20 {
			opps = append(opps, fmt.Sprintf("Reduce %s spend - poor efficiency (%.0f) with high budget (%.1f%%)",
				p.Channel, p.EfficiencyScore, share))
		}
	}

	if len(opps) > 5 {
		opps = opps[:5]
	}
	return opps
}

// budgetShifts maps each channel to a recommended change in budget share,
// in percentage points. Strong channels grow 30% of their share capped at
// a 40% total share, weak channels shed 20% or 40% of theirs. Shifts
// under two points are noise and dropped.
func (a *Analyzer) budgetShifts(performances []Performance, totalSpend float64) map[Type]float64 {
	shifts := make(map[Type]float64)

	for _, p := range performances {
		share := scoring.SafePercent(p.Metrics.Spend, totalSpend)

		var shift float64
		switch {
		case p.EfficiencyScore >= 80:
			shift = min(share*1.3, 40) - share
		case p.EfficiencyScore >= 60:
			shift = 0
		case p.EfficiencyScore >= 40:
			shift = -share * 0.2
		default:
			shift = -share * 0.4
		}

		if shift > 2 || shift < -2 {
			shifts[p.Channel] = shift
		}
	}
	return shifts
}
