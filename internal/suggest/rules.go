package suggest

// metric reads a sparse map with an explicit fallback, mirroring how
// rules treat absent data as a reason not to fire rather than an error.
func metric(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// defaultRules is the context-trigger table. Order matters only for
// tie-breaking: the final sort is stable, so earlier rules win ties.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:      "negative_roi",
			Condition: func(c Context) bool { return metric(c.Metrics, "marketing_roi", 100) < 0 },
			Template:  "Marketing ROI is negative ({marketing_roi}%). Let's identify the problem areas.",
			Category:  CategoryUrgent,
			Relevance: 98,
			Tags:      []string{"roi", "urgent", "loss"},
		},
		{
			Name:      "low_roas",
			Condition: func(c Context) bool { return metric(c.Metrics, "roas", 999) < 150 },
			Template:  "Your ROAS is {roas}%, below the 150% threshold. What's driving the low return?",
			Category:  CategoryUrgent,
			Relevance: 95,
			Tags:      []string{"roi", "roas", "urgent"},
		},
		{
			Name: "high_churn",
			Condition: func(c Context) bool {
				return metric(c.Metrics, "churn_rate", 0) > 10
			},
			Template:  "Churn rate is {churn_rate}%, above healthy levels. Let's discuss retention strategies.",
			Category:  CategoryUrgent,
			Relevance: 92,
			Tags:      []string{"retention", "churn", "customers"},
		},
		{
			Name: "high_cac",
			Condition: func(c Context) bool {
				return metric(c.Metrics, "cac", 0) > metric(c.Metrics, "clv", 999)*0.3
			},
			Template:  "Your CAC (${cac}) is high relative to CLV. Should we discuss acquisition efficiency?",
			Category:  CategoryUrgent,
			Relevance: 90,
			Tags:      []string{"cac", "clv", "efficiency"},
		},
		{
			Name: "campaigns_below_benchmark",
			Condition: func(c Context) bool {
				weak := 0
				for _, cam := range c.Campaigns {
					if cam.OverallScore < 60 {
						weak++
					}
				}
				return weak >= 2
			},
			Template:  "Multiple campaigns are below benchmark. Let's analyze what's not working.",
			Category:  CategoryUrgent,
			Relevance: 88,
			Tags:      []string{"campaigns", "performance", "analysis"},
		},
		{
			Name: "budget_overrun",
			Condition: func(c Context) bool {
				for _, cam := range c.Campaigns {
					if cam.Budget > 0 && cam.Spent > cam.Budget {
						return true
					}
				}
				return false
			},
			Template:  "At least one campaign has spent past its budget. Should we rebalance allocations?",
			Category:  CategoryUrgent,
			Relevance: 87,
			Tags:      []string{"budget", "campaigns"},
		},
		{
			Name: "underperforming_channel",
			Condition: func(c Context) bool {
				for _, ch := range c.Channels {
					if ch.EfficiencyScore < 50 {
						return true
					}
				}
				return false
			},
			Template:  "Some channels are underperforming. Should we review channel efficiency?",
			Category:  CategoryOpportunity,
			Relevance: 85,
			Tags:      []string{"channels", "efficiency", "optimization"},
		},
		{
			Name: "low_conversion",
			Condition: func(c Context) bool {
				return metric(c.Metrics, "conversion_rate", 100) < 2
			},
			Template:  "Conversion rate is only {conversion_rate}%. What's blocking conversions?",
			Category:  CategoryOpportunity,
			Relevance: 85,
			Tags:      []string{"conversion", "funnel", "optimization"},
		},
		{
			Name: "below_industry_average",
			Condition: func(c Context) bool {
				return metric(c.Benchmark, "overall_score", 100) < 70
			},
			Template:  "Your benchmark score ({overall_score}) is below industry average. Where should we focus?",
			Category:  CategoryOpportunity,
			Relevance: 82,
			Tags:      []string{"benchmarks", "improvement", "strategy"},
		},
		{
			Name: "high_performing_channel",
			Condition: func(c Context) bool {
				for _, ch := range c.Channels {
					if ch.ROAS > 400 {
						return true
					}
				}
				return false
			},
			Template:  "You have high-performing channels (ROAS > 400%). Ready to scale them?",
			Category:  CategoryOpportunity,
			Relevance: 80,
			Tags:      []string{"channels", "scaling", "growth"},
		},
		{
			Name: "strong_benchmark",
			Condition: func(c Context) bool {
				v, ok := c.Benchmark["overall_score"]
				return ok && v > 90
			},
			Template:  "Your benchmark score ({overall_score}) leads the industry. Where can we press the advantage?",
			Category:  CategoryOpportunity,
			Relevance: 76,
			Tags:      []string{"benchmarks", "growth"},
		},
		{
			Name: "low_engagement",
			Condition: func(c Context) bool {
				return metric(c.Metrics, "social_engagement_rate", 100) < 1
			},
			Template:  "Social engagement is low ({social_engagement_rate}%). How can we boost it?",
			Category:  CategoryOpportunity,
			Relevance: 75,
			Tags:      []string{"content", "engagement", "social"},
		},
	}
}

// followUpTrigger maps keywords in the last assistant reply to a canned
// follow-up prompt.
type followUpTrigger struct {
	Keywords []string
	Prompt   string
	Tags     []string
}

var followUpTriggers = []followUpTrigger{
	{
		Keywords: []string{"recommend", "suggest", "should consider"},
		Prompt:   "Can you elaborate on those recommendations?",
		Tags:     []string{"follow-up", "recommendations"},
	},
	{
		Keywords: []string{"campaign", "campaigns"},
		Prompt:   "Which specific campaign should we focus on first?",
		Tags:     []string{"follow-up", "campaigns"},
	},
	{
		Keywords: []string{"budget", "spend", "investment"},
		Prompt:   "How should we reallocate budget based on this?",
		Tags:     []string{"follow-up", "budget"},
	},
	{
		Keywords: []string{"roi", "return", "roas"},
		Prompt:   "What's the fastest way to improve our ROI?",
		Tags:     []string{"follow-up", "roi"},
	},
}
