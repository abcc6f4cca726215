// Package alerts raises threshold-breach alerts over marketing metrics,
// channel ROI and campaign budget utilization.
package alerts

import "time"

// Severity orders alerts from most to least pressing.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category groups alerts by the domain that breached.
type Category string

const (
	CategoryROI     Category = "roi"
	CategorySpend   Category = "spend"
	CategoryChannel Category = "channel"
)

// Alert is one threshold breach.
type Alert struct {
	ID             string    `json:"id"`
	Severity       Severity  `json:"severity"`
	Category       Category  `json:"category"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	MetricName     string    `json:"metric_name"`
	CurrentValue   float64   `json:"current_value"`
	ThresholdValue float64   `json:"threshold_value"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

// Thresholds are the breach limits the engine checks against.
type Thresholds struct {
	ROASCritical    float64 `json:"roas_critical"`
	ROASWarning     float64 `json:"roas_warning"`
	ROICritical     float64 `json:"roi_critical"`
	ROIWarning      float64 `json:"roi_warning"`
	UtilizationLow  float64 `json:"spend_utilization_low"`
	UtilizationHigh float64 `json:"spend_utilization_high"`
}

// DefaultThresholds returns the platform defaults: ROAS below 1x loses
// money, channel ROI below 0 is critical, budget utilization is healthy
// between 50% and 95%.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ROASCritical:    1.0,
		ROASWarning:     2.0,
		ROICritical:     0,
		ROIWarning:      50,
		UtilizationLow:  50,
		UtilizationHigh: 95,
	}
}

// ChannelStatus is the channel state the checks read.
type ChannelStatus struct {
	Name string  `json:"name"`
	ROI  float64 `json:"roi"`
}

// CampaignStatus is the campaign state the checks read. Utilization is
// only evaluated for active campaigns with a positive budget.
type CampaignStatus struct {
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}

// Context is the snapshot one check runs over.
type Context struct {
	Metrics   map[string]float64 `json:"metrics"`
	Channels  []ChannelStatus    `json:"channels"`
	Campaigns []CampaignStatus   `json:"campaigns"`
}

// Summary aggregates a batch of alerts by severity and category.
type Summary struct {
	Total      int              `json:"total"`
	Critical   int              `json:"critical"`
	Warning    int              `json:"warning"`
	Info       int              `json:"info"`
	Categories map[Category]int `json:"categories"`
}
