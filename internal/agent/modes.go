// Package agent is the AI chat layer: CMO-persona conversation modes,
// business-context rendering and the OpenAI-backed chat engine.
package agent

import (
	"errors"
	"fmt"
)

// Mode is a conversation focus. Each mode carries its own persona
// prompt and canned starter questions.
type Mode string

const (
	ModeGeneral             Mode = "general"
	ModeCampaignAnalysis    Mode = "campaign_analysis"
	ModeChannelOptimization Mode = "channel_optimization"
	ModeContentStrategy     Mode = "content_strategy"
	ModeFunnelAnalysis      Mode = "funnel_analysis"
	ModeROIReview           Mode = "roi_review"
	ModeBenchmarkDiscussion Mode = "benchmark_discussion"
	ModeMarketingPlanning   Mode = "marketing_planning"
)

// ErrUnknownMode is returned when a mode string is not one of the eight
// defined conversation modes.
var ErrUnknownMode = errors.New("unknown conversation mode")

// Modes lists every mode in presentation order.
func Modes() []Mode {
	return []Mode{
		ModeGeneral,
		ModeCampaignAnalysis,
		ModeChannelOptimization,
		ModeContentStrategy,
		ModeFunnelAnalysis,
		ModeROIReview,
		ModeBenchmarkDiscussion,
		ModeMarketingPlanning,
	}
}

// ParseMode validates a mode string. Unknown modes are a caller bug, so
// this fails rather than falling back to general.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := modeDescriptions[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

var modeDescriptions = map[Mode]string{
	ModeGeneral:             "General marketing questions and guidance",
	ModeCampaignAnalysis:    "Analyze campaign performance and optimize",
	ModeChannelOptimization: "Optimize marketing channel mix and budget",
	ModeContentStrategy:     "Content marketing strategy and performance",
	ModeFunnelAnalysis:      "Marketing funnel optimization",
	ModeROIReview:           "Marketing ROI and spend efficiency",
	ModeBenchmarkDiscussion: "Industry benchmarks and competitive analysis",
	ModeMarketingPlanning:   "Strategic marketing planning and roadmaps",
}

// Description returns the one-line summary shown in mode pickers.
func (m Mode) Description() string {
	return modeDescriptions[m]
}

var starterPrompts = map[Mode][]string{
	ModeGeneral: {
		"What marketing metrics should I track for a B2B SaaS company?",
		"How can I improve our marketing team's efficiency?",
		"What's the best approach to marketing attribution?",
	},
	ModeCampaignAnalysis: {
		"Analyze our campaign performance and identify improvement areas",
		"Which campaigns are underperforming and why?",
		"How should we adjust our campaign strategy?",
	},
	ModeChannelOptimization: {
		"Which marketing channels are most effective for us?",
		"How should we reallocate our channel budget?",
		"Compare our channel performance to industry benchmarks",
	},
	ModeContentStrategy: {
		"What content types are driving the most leads?",
		"How can we improve our content marketing ROI?",
		"What content gaps exist in our funnel?",
	},
	ModeFunnelAnalysis: {
		"Where are the biggest leaks in our marketing funnel?",
		"How can we improve our conversion rates?",
		"What's causing drop-off at the consideration stage?",
	},
	ModeROIReview: {
		"What's our marketing ROI by channel?",
		"How can we reduce customer acquisition cost?",
		"Are we spending efficiently on marketing?",
	},
	ModeBenchmarkDiscussion: {
		"How do our marketing KPIs compare to industry standards?",
		"Where are we underperforming vs benchmarks?",
		"What metrics should we prioritize improving?",
	},
	ModeMarketingPlanning: {
		"Help me build a Q1 marketing plan",
		"What should be our top marketing priorities?",
		"How should we allocate next year's marketing budget?",
	},
}

// StarterPrompts returns the canned opening questions for a mode.
func (m Mode) StarterPrompts() []string {
	prompts := starterPrompts[m]
	out := make([]string, len(prompts))
	copy(out, prompts)
	return out
}
