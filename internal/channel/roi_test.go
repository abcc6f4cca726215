package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROIStatusLadder(t *testing.T) {
	tests := []struct {
		roi  float64
		want ROIStatus
	}{
		{250, HighlyProfitable},
		{200, HighlyProfitable},
		{100, Profitable},
		{0, BreakEven},
		{-25, Unprofitable},
		{-80, HighlyUnprofitable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roiStatus(tt.roi), "roi %v", tt.roi)
	}
}

func TestAnalyzeROIChannel(t *testing.T) {
	a := NewROIAnalyzer(0, 0, 0)
	c := a.AnalyzeChannel(ROIInput{
		Channel:     "Email",
		Investment:  1000,
		Revenue:     4000,
		Conversions: 50,
	})

	assert.InDelta(t, 300.0, c.ROIPercent, 1e-9)
	assert.Equal(t, HighlyProfitable, c.Status)
	assert.InDelta(t, 20.0, c.CPA, 1e-9)
	assert.InDelta(t, 80.0, c.CLV, 1e-9)
	assert.InDelta(t, 3.0, c.PaybackMonths, 1e-9)
	assert.Contains(t, c.Recommendations, "Increase Email budget allocation")
}

func TestAnalyzeROIChannel_DegenerateInputs(t *testing.T) {
	a := NewROIAnalyzer(0, 0, 0)

	// No conversions: CPA degrades to the full investment, CLV to zero.
	noConv := a.AnalyzeChannel(ROIInput{Channel: "Display", Investment: 500, Revenue: 600})
	assert.InDelta(t, 500.0, noConv.CPA, 1e-9)
	assert.Equal(t, 0.0, noConv.CLV)

	// No revenue: payback pegs at 99 months.
	noRev := a.AnalyzeChannel(ROIInput{Channel: "Video", Investment: 500})
	assert.InDelta(t, 99.0, noRev.PaybackMonths, 1e-9)
	assert.Equal(t, HighlyUnprofitable, noRev.Status)

	// No investment: ROI guard returns break-even zero.
	noInv := a.AnalyzeChannel(ROIInput{Channel: "Referral", Revenue: 100, Conversions: 2})
	assert.Equal(t, 0.0, noInv.ROIPercent)
	assert.Equal(t, BreakEven, noInv.Status)
}

func TestROIReport_RollupAndRecommendations(t *testing.T) {
	a := NewROIAnalyzer(100, 50, 500)
	report := a.Report("rep-1", "org-1", []ROIInput{
		{Channel: "Email", Investment: 1000, Revenue: 4000, Conversions: 50},
		{Channel: "Paid Search", Investment: 2000, Revenue: 3000, Conversions: 40},
		{Channel: "Display", Investment: 1000, Revenue: 500, Conversions: 5},
	})

	assert.InDelta(t, 4000.0, report.TotalInvestment, 1e-9)
	assert.InDelta(t, 7500.0, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 87.5, report.OverallROI, 1e-9)
	assert.Equal(t, Profitable, report.OverallStatus)

	require.Len(t, report.Channels, 3)
	assert.Equal(t, []string{"Email"}, report.TopPerformers)
	assert.Equal(t, []string{"Display"}, report.Underperformers)
	assert.Contains(t, report.Opportunities, "Scale Email - high ROI potential")
	assert.Contains(t, report.Opportunities, "Optimize or reduce Display spend")

	assert.Contains(t, report.Recommendations, "Overall ROI (88%) below target (100%)")
	assert.Contains(t, report.Recommendations, "Reallocate budget to top performers: Email")
	assert.Contains(t, report.Recommendations, "Reduce spend on underperformers: Display")
}
