package alerts

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// IDGenerator hands out alert ids. Implementations must be safe for
// concurrent use.
type IDGenerator interface {
	Next() string
}

// counterIDGenerator issues timestamped ids with a process-local
// monotonic suffix, serialized behind a mutex so parallel checks never
// share an id.
type counterIDGenerator struct {
	mu      sync.Mutex
	counter uint64
	now     func() time.Time
}

// NewIDGenerator returns the default wall-clock id generator.
func NewIDGenerator() IDGenerator {
	return &counterIDGenerator{now: time.Now}
}

func (g *counterIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("mkt-alert-%s-%d", g.now().Format("20060102150405"), g.counter)
}

// Engine evaluates a fixed set of threshold checks. The id generator is
// the only mutable state; everything else is read-only after New.
type Engine struct {
	thresholds Thresholds
	ids        IDGenerator
	now        func() time.Time
}

// NewEngine builds an engine. A nil generator gets the default
// counter-backed one.
func NewEngine(thresholds Thresholds, ids IDGenerator) *Engine {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &Engine{thresholds: thresholds, ids: ids, now: time.Now}
}

// CheckMetrics runs every check over the snapshot and returns breaches
// sorted critical first, stable within a severity tier.
func (e *Engine) CheckMetrics(ctx Context) []Alert {
	var alerts []Alert

	alerts = append(alerts, e.checkROAS(ctx.Metrics)...)
	alerts = append(alerts, e.checkChannels(ctx.Channels)...)
	alerts = append(alerts, e.checkBudgets(ctx.Campaigns)...)

	rank := map[Severity]int{SeverityCritical: 0, SeverityWarning: 1, SeverityInfo: 2}
	sort.SliceStable(alerts, func(i, j int) bool {
		return rank[alerts[i].Severity] < rank[alerts[j].Severity]
	})
	return alerts
}

// checkROAS only fires when roas is reported and positive; an absent or
// zero reading means no spend data, not a breach.
func (e *Engine) checkROAS(metrics map[string]float64) []Alert {
	roas, ok := metrics["roas"]
	if !ok || roas <= 0 {
		return nil
	}

	switch {
	case roas < e.thresholds.ROASCritical:
		return []Alert{{
			ID:             e.ids.Next(),
			Severity:       SeverityCritical,
			Category:       CategoryROI,
			Title:          "Critical: ROAS Below Break-Even",
			Message:        fmt.Sprintf("Your ROAS is %.2fx, which means you're losing money on marketing spend.", roas),
			MetricName:     "ROAS",
			CurrentValue:   roas,
			ThresholdValue: e.thresholds.ROASCritical,
			Recommendation: "Immediately pause underperforming campaigns and reallocate budget to high-performing channels.",
			CreatedAt:      e.now(),
		}}
	case roas < e.thresholds.ROASWarning:
		return []Alert{{
			ID:             e.ids.Next(),
			Severity:       SeverityWarning,
			Category:       CategoryROI,
			Title:          "Warning: ROAS Needs Improvement",
			Message:        fmt.Sprintf("Your ROAS is %.2fx, below the recommended %gx target.", roas, e.thresholds.ROASWarning),
			MetricName:     "ROAS",
			CurrentValue:   roas,
			ThresholdValue: e.thresholds.ROASWarning,
			Recommendation: "Review campaign targeting and creative assets. Consider A/B testing to improve conversion rates.",
			CreatedAt:      e.now(),
		}}
	}
	return nil
}

func (e *Engine) checkChannels(channels []ChannelStatus) []Alert {
	var alerts []Alert
	for _, ch := range channels {
		switch {
		case ch.ROI < e.thresholds.ROICritical:
			alerts = append(alerts, Alert{
				ID:             e.ids.Next(),
				Severity:       SeverityCritical,
				Category:       CategoryChannel,
				Title:          fmt.Sprintf("Critical: %s Has Negative ROI", ch.Name),
				Message:        fmt.Sprintf("%s is showing %.1f%% ROI - you're losing money on this channel.", ch.Name, ch.ROI),
				MetricName:     fmt.Sprintf("%s ROI", ch.Name),
				CurrentValue:   ch.ROI,
				ThresholdValue: e.thresholds.ROICritical,
				Recommendation: fmt.Sprintf("Pause %s campaigns immediately and investigate targeting, creative, and landing pages.", ch.Name),
				CreatedAt:      e.now(),
			})
		case ch.ROI < e.thresholds.ROIWarning:
			alerts = append(alerts, Alert{
				ID:             e.ids.Next(),
				Severity:       SeverityWarning,
				Category:       CategoryChannel,
				Title:          fmt.Sprintf("Warning: %s Underperforming", ch.Name),
				Message:        fmt.Sprintf("%s ROI is %.1f%%, below the %g%% target.", ch.Name, ch.ROI, e.thresholds.ROIWarning),
				MetricName:     fmt.Sprintf("%s ROI", ch.Name),
				CurrentValue:   ch.ROI,
				ThresholdValue: e.thresholds.ROIWarning,
				Recommendation: fmt.Sprintf("Optimize %s targeting and bid strategies. Consider reducing budget if performance doesn't improve.", ch.Name),
				CreatedAt:      e.now(),
			})
		}
	}
	return alerts
}

func (e *Engine) checkBudgets(campaigns []CampaignStatus) []Alert {
	var alerts []Alert
	for _, c := range campaigns {
		if c.Budget <= 0 || c.Status != "active" {
			continue
		}
		utilization := c.Spent / c.Budget * 100

		switch {
		case utilization > e.thresholds.UtilizationHigh:
			alerts = append(alerts, Alert{
				ID:             e.ids.Next(),
				Severity:       SeverityWarning,
				Category:       CategorySpend,
				Title:          fmt.Sprintf("Budget Nearly Exhausted: %s", c.Name),
				Message:        fmt.Sprintf("Campaign '%s' has used %.1f%% of its budget.", c.Name, utilization),
				MetricName:     "Budget Utilization",
				CurrentValue:   utilization,
				ThresholdValue: e.thresholds.UtilizationHigh,
				Recommendation: "Review campaign performance. If performing well, consider increasing budget to capture more conversions.",
				CreatedAt:      e.now(),
			})
		case utilization < e.thresholds.UtilizationLow:
			alerts = append(alerts, Alert{
				ID:             e.ids.Next(),
				Severity:       SeverityInfo,
				Category:       CategorySpend,
				Title:          fmt.Sprintf("Low Budget Utilization: %s", c.Name),
				Message:        fmt.Sprintf("Campaign '%s' has only used %.1f%% of its budget.", c.Name, utilization),
				MetricName:     "Budget Utilization",
				CurrentValue:   utilization,
				ThresholdValue: e.thresholds.UtilizationLow,
				Recommendation: "Check if targeting is too narrow or bids are too low. Consider broadening audience or increasing bids.",
				CreatedAt:      e.now(),
			})
		}
	}
	return alerts
}

// Summarize counts alerts by severity and category.
func Summarize(alerts []Alert) Summary {
	s := Summary{Total: len(alerts), Categories: make(map[Category]int)}
	for _, a := range alerts {
		switch a.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityWarning:
			s.Warning++
		case SeverityInfo:
			s.Info++
		}
		s.Categories[a.Category]++
	}
	return s
}
