// Package channel analyzes marketing channel performance, budget mix and
// per-channel return on investment.
package channel

// Type identifies a marketing channel.
type Type string

const (
	OrganicSearch Type = "Organic Search"
	PaidSearch    Type = "Paid Search"
	SocialOrganic Type = "Social (Organic)"
	SocialPaid    Type = "Social (Paid)"
	Email         Type = "Email"
	Display       Type = "Display Ads"
	Affiliate     Type = "Affiliate"
	Referral      Type = "Referral"
	Direct        Type = "Direct"
	Video         Type = "Video"
	Content       Type = "Content Marketing"
)

// Metrics are the raw counters reported for one channel over a period.
type Metrics struct {
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Conversions  int64   `json:"conversions"`
	Spend        float64 `json:"spend"`
	Revenue      float64 `json:"revenue"`
	Leads        int64   `json:"leads"`
	NewCustomers int64   `json:"new_customers"`
}

// Performance is the analyzed view of a single channel.
type Performance struct {
	Channel             Type     `json:"channel"`
	Metrics             Metrics  `json:"metrics"`
	CTR                 float64  `json:"ctr"`
	ConversionRate      float64  `json:"conversion_rate"`
	CPC                 float64  `json:"cpc"`
	CPA                 float64  `json:"cpa"`
	ROAS                float64  `json:"roas"`
	ContributionPercent float64  `json:"contribution_percent"`
	EfficiencyScore     float64  `json:"efficiency_score"`
	Rating              string   `json:"rating"`
	Recommendations     []string `json:"recommendations"`
}

// Mix is the cross-channel analysis with budget reallocation advice.
// BudgetShifts values are percentage points of total spend, positive
// meaning the channel should receive more budget.
type Mix struct {
	TotalSpend       float64          `json:"total_spend"`
	TotalRevenue     float64          `json:"total_revenue"`
	TotalConversions int64            `json:"total_conversions"`
	OverallROAS      float64          `json:"overall_roas"`
	Performances     []Performance    `json:"channel_performances"`
	TopPerformers    []Type           `json:"top_performers"`
	Underperformers  []Type           `json:"underperformers"`
	Opportunities    []string         `json:"optimization_opportunities"`
	BudgetShifts     map[Type]float64 `json:"recommended_budget_shifts"`
}

// benchmark holds the per-channel reference rates used for efficiency
// scoring. A zero value means the dimension is not meaningful for the
// channel and is skipped.
type benchmark struct {
	CTR            float64
	ConversionRate float64
	CPA            float64
}
