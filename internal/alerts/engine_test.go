package alerts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDs struct{ n int }

func (f *fakeIDs) Next() string {
	f.n++
	return fmt.Sprintf("alert-%d", f.n)
}

func newTestEngine() *Engine {
	return NewEngine(DefaultThresholds(), &fakeIDs{})
}

func TestCheckMetrics_ROASBelowBreakEven(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Metrics: map[string]float64{"roas": 0.5, "total_spend": 1000},
	})

	// Exactly one ROI-category critical alert referencing ROAS.
	require.Len(t, alerts, 1)
	a := alerts[0]
	assert.Equal(t, SeverityCritical, a.Severity)
	assert.Equal(t, CategoryROI, a.Category)
	assert.Equal(t, "ROAS", a.MetricName)
	assert.Equal(t, 0.5, a.CurrentValue)
	assert.Equal(t, "Your ROAS is 0.50x, which means you're losing money on marketing spend.", a.Message)
}

func TestCheckMetrics_ROASWarningBand(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Metrics: map[string]float64{"roas": 1.5},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
	assert.Equal(t, 2.0, alerts[0].ThresholdValue)
}

func TestCheckMetrics_ZeroROASMeansNoData(t *testing.T) {
	// A missing or zero ROAS reading is absent spend data, not a breach.
	assert.Empty(t, newTestEngine().CheckMetrics(Context{
		Metrics: map[string]float64{"roas": 0},
	}))
	assert.Empty(t, newTestEngine().CheckMetrics(Context{}))
}

func TestCheckMetrics_ChannelROI(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Channels: []ChannelStatus{
			{Name: "Display Ads", ROI: -12.5},
			{Name: "Paid Search", ROI: 30},
			{Name: "Email", ROI: 150},
		},
	})

	require.Len(t, alerts, 2)
	assert.Equal(t, SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Critical: Display Ads Has Negative ROI", alerts[0].Title)
	assert.Equal(t, SeverityWarning, alerts[1].Severity)
	assert.Equal(t, "Warning: Paid Search Underperforming", alerts[1].Title)
	for _, a := range alerts {
		assert.Equal(t, CategoryChannel, a.Category)
	}
}

func TestCheckMetrics_BudgetUtilization(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Campaigns: []CampaignStatus{
			{Name: "Spring Sale", Status: "active", Budget: 1000, Spent: 980},
			{Name: "Brand Push", Status: "active", Budget: 1000, Spent: 200},
			{Name: "Healthy", Status: "active", Budget: 1000, Spent: 700},
			{Name: "Paused", Status: "paused", Budget: 1000, Spent: 990},
			{Name: "Unbudgeted", Status: "active", Budget: 0, Spent: 500},
		},
	})

	require.Len(t, alerts, 2)
	assert.Equal(t, "Budget Nearly Exhausted: Spring Sale", alerts[0].Title)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "Low Budget Utilization: Brand Push", alerts[1].Title)
	assert.Equal(t, SeverityInfo, alerts[1].Severity)
}

func TestCheckMetrics_SeveritySortStable(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Metrics: map[string]float64{"roas": 1.5},
		Channels: []ChannelStatus{
			{Name: "Display Ads", ROI: -5},
			{Name: "Video", ROI: -2},
		},
		Campaigns: []CampaignStatus{
			{Name: "Quiet", Status: "active", Budget: 1000, Spent: 100},
		},
	})

	require.Len(t, alerts, 4)
	assert.Equal(t, SeverityCritical, alerts[0].Severity)
	assert.Equal(t, SeverityCritical, alerts[1].Severity)
	// Evaluation order preserved within a tier.
	assert.Contains(t, alerts[0].Title, "Display Ads")
	assert.Contains(t, alerts[1].Title, "Video")
	assert.Equal(t, SeverityWarning, alerts[2].Severity)
	assert.Equal(t, SeverityInfo, alerts[3].Severity)
}

func TestCustomThresholds(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.ROASWarning = 3.0

	alerts := NewEngine(thresholds, &fakeIDs{}).CheckMetrics(Context{
		Metrics: map[string]float64{"roas": 2.5},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
}

func TestIDGenerator_MonotonicAndFormatted(t *testing.T) {
	gen := &counterIDGenerator{now: func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	}}

	assert.Equal(t, "mkt-alert-20250314092653-1", gen.Next())
	assert.Equal(t, "mkt-alert-20250314092653-2", gen.Next())
}

func TestSummarize(t *testing.T) {
	alerts := newTestEngine().CheckMetrics(Context{
		Metrics:  map[string]float64{"roas": 0.8},
		Channels: []ChannelStatus{{Name: "Video", ROI: 10}},
		Campaigns: []CampaignStatus{
			{Name: "Quiet", Status: "active", Budget: 1000, Spent: 100},
		},
	})
	s := Summarize(alerts)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Critical)
	assert.Equal(t, 1, s.Warning)
	assert.Equal(t, 1, s.Info)
	assert.Equal(t, map[Category]int{CategoryROI: 1, CategoryChannel: 1, CategorySpend: 1}, s.Categories)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.Categories)
}
