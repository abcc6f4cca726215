package suggest

// modePrompt is one canned default for a conversation mode.
type modePrompt struct {
	Text string
	Tags []string
}

// basePrompts holds three defaults per conversation mode. These only
// fill slots the context triggers leave open.
var basePrompts = map[string][]modePrompt{
	"general": {
		{Text: "What are the top marketing priorities I should focus on?", Tags: []string{"priorities", "strategy"}},
		{Text: "How is our overall marketing performance?", Tags: []string{"performance", "overview"}},
		{Text: "What quick wins can we achieve this quarter?", Tags: []string{"quick-wins", "tactics"}},
	},
	"campaign_analysis": {
		{Text: "Which campaigns are underperforming and why?", Tags: []string{"campaigns", "performance"}},
		{Text: "What's the ROI breakdown by campaign type?", Tags: []string{"campaigns", "roi"}},
		{Text: "How do our campaigns compare to benchmarks?", Tags: []string{"campaigns", "benchmarks"}},
	},
	"channel_optimization": {
		{Text: "Which channels should we invest more in?", Tags: []string{"channels", "investment"}},
		{Text: "Where are we wasting marketing spend?", Tags: []string{"channels", "waste", "efficiency"}},
		{Text: "How should we reallocate our channel budget?", Tags: []string{"channels", "budget"}},
	},
	"roi_review": {
		{Text: "What's our overall marketing ROI?", Tags: []string{"roi", "overview"}},
		{Text: "Which activities have the best cost-per-acquisition?", Tags: []string{"roi", "cpa"}},
		{Text: "How can we improve our return on ad spend?", Tags: []string{"roi", "roas"}},
	},
	"content_strategy": {
		{Text: "What content is driving the most engagement?", Tags: []string{"content", "engagement"}},
		{Text: "Where are the gaps in our content funnel?", Tags: []string{"content", "funnel"}},
		{Text: "Which content types should we produce more of?", Tags: []string{"content", "strategy"}},
	},
	"funnel_analysis": {
		{Text: "Where are prospects dropping off in our funnel?", Tags: []string{"funnel", "dropoff"}},
		{Text: "How can we improve conversion rates?", Tags: []string{"funnel", "conversion"}},
		{Text: "What's causing cart abandonment?", Tags: []string{"funnel", "abandonment"}},
	},
	"benchmark_discussion": {
		{Text: "How do we compare to industry benchmarks?", Tags: []string{"benchmarks", "comparison"}},
		{Text: "Where are we behind competitors?", Tags: []string{"benchmarks", "competitors"}},
		{Text: "What KPIs should we prioritize improving?", Tags: []string{"benchmarks", "kpis"}},
	},
	"marketing_planning": {
		{Text: "Help me plan next quarter's marketing strategy", Tags: []string{"planning", "strategy"}},
		{Text: "What should our marketing goals be?", Tags: []string{"planning", "goals"}},
		{Text: "How should we allocate our marketing budget?", Tags: []string{"planning", "budget"}},
	},
}
