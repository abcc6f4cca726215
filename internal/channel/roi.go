package channel

import (
	"fmt"
	"sort"
	"strings"
)

// ROIStatus classifies a channel's return on investment.
type ROIStatus string

const (
	HighlyProfitable   ROIStatus = "Highly Profitable"
	Profitable         ROIStatus = "Profitable"
	BreakEven          ROIStatus = "Break Even"
	Unprofitable       ROIStatus = "Unprofitable"
	HighlyUnprofitable ROIStatus = "Highly Unprofitable"
)

// ChannelROI is the per-channel return analysis.
type ChannelROI struct {
	Channel         string    `json:"channel"`
	Investment      float64   `json:"investment"`
	Revenue         float64   `json:"revenue"`
	ROIPercent      float64   `json:"roi_percentage"`
	Status          ROIStatus `json:"status"`
	CPA             float64   `json:"cost_per_acquisition"`
	CLV             float64   `json:"customer_lifetime_value"`
	PaybackMonths   float64   `json:"payback_period"`
	Recommendations []string  `json:"recommendations"`
}

// ROIInput is one channel's raw spend and return figures.
type ROIInput struct {
	Channel     string  `json:"channel"`
	Investment  float64 `json:"investment"`
	Revenue     float64 `json:"revenue"`
	Conversions int64   `json:"conversions"`
}

// ROIReport aggregates channel ROI analyses for an organization.
type ROIReport struct {
	ReportID        string       `json:"report_id"`
	OrganizationID  string       `json:"organization_id"`
	TotalInvestment float64      `json:"total_investment"`
	TotalRevenue    float64      `json:"total_revenue"`
	OverallROI      float64      `json:"overall_roi"`
	OverallStatus   ROIStatus    `json:"overall_status"`
	Channels        []ChannelROI `json:"channel_analysis"`
	TopPerformers   []string     `json:"top_performers"`
	Underperformers []string     `json:"underperformers"`
	Opportunities   []string     `json:"optimization_opportunities"`
	Recommendations []string     `json:"recommendations"`
}

var roiLadder = []struct {
	Min    float64
	Status ROIStatus
}{
	{200, HighlyProfitable},
	{50, Profitable},
	{0, BreakEven},
	{-50, Unprofitable},
}

func roiStatus(roi float64) ROIStatus {
	for _, step := range roiLadder {
		if roi >= step.Min {
			return step.Status
		}
	}
	return HighlyUnprofitable
}

// ROIAnalyzer computes channel-level return on marketing investment.
type ROIAnalyzer struct {
	targetROI float64
	targetCPA float64
	avgCLV    float64
}

// NewROIAnalyzer builds an analyzer with the given ROI target in percent.
// Non-positive arguments fall back to the platform defaults of 100% ROI,
// $50 CPA and $500 CLV.
func NewROIAnalyzer(targetROI, targetCPA, avgCLV float64) *ROIAnalyzer {
	if targetROI <= 0 {
		targetROI = 100
	}
	if targetCPA <= 0 {
		targetCPA = 50
	}
	if avgCLV <= 0 {
		avgCLV = 500
	}
	return &ROIAnalyzer{targetROI: targetROI, targetCPA: targetCPA, avgCLV: avgCLV}
}

// AnalyzeChannel computes the return profile for a single channel.
// With zero conversions CPA degrades to the full investment; with zero
// revenue the payback period pegs at 99 months.
func (a *ROIAnalyzer) AnalyzeChannel(in ROIInput) ChannelROI {
	var roi float64
	if in.Investment > 0 {
		roi = (in.Revenue - in.Investment) / in.Investment * 100
	}
	status := roiStatus(roi)

	cpa := in.Investment
	var clv float64
	if in.Conversions > 0 {
		cpa = in.Investment / float64(in.Conversions)
		clv = in.Revenue / float64(in.Conversions)
	}

	payback := 99.0
	if in.Revenue > 0 {
		payback = in.Investment / (in.Revenue / 12)
	}

	return ChannelROI{
		Channel:         in.Channel,
		Investment:      in.Investment,
		Revenue:         in.Revenue,
		ROIPercent:      roi,
		Status:          status,
		CPA:             cpa,
		CLV:             clv,
		PaybackMonths:   payback,
		Recommendations: a.channelRecommendations(in.Channel, cpa, status),
	}
}

// Report analyzes every channel and rolls the results up to an
// organization-level view with reallocation advice.
func (a *ROIAnalyzer) Report(reportID, orgID string, inputs []ROIInput) ROIReport {
	channels := make([]ChannelROI, 0, len(inputs))
	for _, in := range inputs {
		channels = append(channels, a.AnalyzeChannel(in))
	}

	var totalInv, totalRev float64
	for _, c := range channels {
		totalInv += c.Investment
		totalRev += c.Revenue
	}
	var overallROI float64
	if totalInv > 0 {
		overallROI = (totalRev - totalInv) / totalInv * 100
	}

	byROI := make([]ChannelROI, len(channels))
	copy(byROI, channels)
	sort.SliceStable(byROI, func(i, j int) bool {
		return byROI[i].ROIPercent > byROI[j].ROIPercent
	})

	var top []string
	for i := 0; i < len(byROI) && i < 3; i++ {
		if byROI[i].ROIPercent > 50 {
			top = append(top, byROI[i].Channel)
		}
	}
	var under []string
	start := len(byROI) - 3
	if start < 0 {
		start = 0
	}
	for _, c := range byROI[start:] {
		if c.ROIPercent < 0 {
			under = append(under, c.Channel)
		}
	}

	var opps []string
	for _, c := range channels {
		if c.ROIPercent > 100 {
			opps = append(opps, fmt.Sprintf("Scale %s - high ROI potential", c.Channel))
		} else if c.ROIPercent < 0 {
			opps = append(opps, fmt.Sprintf("Optimize or reduce %s spend", c.Channel))
		}
	}
	if len(opps) > 5 {
		opps = opps[:5]
	}

	return ROIReport{
		ReportID:        reportID,
		OrganizationID:  orgID,
		TotalInvestment: totalInv,
		TotalRevenue:    totalRev,
		OverallROI:      overallROI,
		OverallStatus:   roiStatus(overallROI),
		Channels:        channels,
		TopPerformers:   top,
		Underperformers: under,
		Opportunities:   opps,
		Recommendations: a.reportRecommendations(overallROI, channels),
	}
}

func (a *ROIAnalyzer) channelRecommendations(channel string, cpa float64, status ROIStatus) []string {
	var recs []string
	switch status {
	case HighlyProfitable:
		recs = append(recs, fmt.Sprintf("Increase %s budget allocation", channel))
	case Unprofitable, HighlyUnprofitable:
		recs = append(recs, fmt.Sprintf("Review %s targeting and creative", channel))
		recs = append(recs, fmt.Sprintf("Consider reducing %s spend", channel))
	}
	if cpa > a.targetCPA {
		recs = append(recs, fmt.Sprintf("Optimize %s to reduce CPA", channel))
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func (a *ROIAnalyzer) reportRecommendations(overallROI float64, channels []ChannelROI) []string {
	var recs []string
	if overallROI < a.targetROI {
		recs = append(recs, fmt.Sprintf("Overall ROI (%.0f%%) below target (%g%%)", overallROI, a.targetROI))
	}

	var profitable, unprofitable []string
	for _, c := range channels {
		if c.ROIPercent > 100 {
			profitable = append(profitable, c.Channel)
		} else if c.ROIPercent < 0 {
			unprofitable = append(unprofitable, c.Channel)
		}
	}
	if len(profitable) > 0 {
		if len(profitable) > 2 {
			profitable = profitable[:2]
		}
		recs = append(recs, fmt.Sprintf("Reallocate budget to top performers: %s", strings.Join(profitable, ", ")))
	}
	if len(unprofitable) > 0 {
		if len(unprofitable) > 2 {
			unprofitable = unprofitable[:2]
		}
		recs = append(recs, fmt.Sprintf("Reduce spend on underperformers: %s", strings.Join(unprofitable, ", ")))
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
