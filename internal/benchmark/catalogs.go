package benchmark

import (
	"errors"
	"fmt"
)

// ErrUnknownCatalog is returned for a catalog id the platform doesn't ship.
// An unknown catalog is a caller bug, not sparse data, so it fails fast.
var ErrUnknownCatalog = errors.New("unknown benchmark catalog")

// Catalog identifiers for the two canonical KPI catalogs.
const (
	CatalogMarketing = "marketing"
	CatalogDigital   = "digital"
)

// FromCatalog returns the engine for a canonical catalog id.
func FromCatalog(id string) (*Engine, error) {
	switch id {
	case CatalogMarketing:
		return NewMarketingEngine(), nil
	case CatalogDigital:
		return NewDigitalEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, id)
	}
}

// NewMarketingEngine builds the full-funnel marketing KPI catalog with
// acquisition and conversion weighted above brand metrics.
func NewMarketingEngine() *Engine {
	kpis := []KPIDefinition{
		{ID: "cac", Name: "Customer Acquisition Cost", BenchmarkValue: 50.0, Direction: LowerIsBetter, Category: CategoryAcquisition, Unit: "$"},
		{ID: "cpl", Name: "Cost per Lead", BenchmarkValue: 25.0, Direction: LowerIsBetter, Category: CategoryAcquisition, Unit: "$"},
		{ID: "conversion_rate", Name: "Conversion Rate", BenchmarkValue: 3.0, Direction: HigherIsBetter, Category: CategoryConversion, Unit: "%"},
		{ID: "lead_to_customer", Name: "Lead to Customer Rate", BenchmarkValue: 20.0, Direction: HigherIsBetter, Category: CategoryConversion, Unit: "%"},
		{ID: "email_open_rate", Name: "Email Open Rate", BenchmarkValue: 25.0, Direction: HigherIsBetter, Category: CategoryEngagement, Unit: "%"},
		{ID: "email_ctr", Name: "Email Click-Through Rate", BenchmarkValue: 3.0, Direction: HigherIsBetter, Category: CategoryEngagement, Unit: "%"},
		{ID: "social_engagement", Name: "Social Engagement Rate", BenchmarkValue: 2.0, Direction: HigherIsBetter, Category: CategoryEngagement, Unit: "%"},
		{ID: "customer_retention", Name: "Customer Retention Rate", BenchmarkValue: 85.0, Direction: HigherIsBetter, Category: CategoryRetention, Unit: "%"},
		{ID: "churn_rate", Name: "Churn Rate", BenchmarkValue: 5.0, Direction: LowerIsBetter, Category: CategoryRetention, Unit: "%"},
		{ID: "clv", Name: "Customer Lifetime Value", BenchmarkValue: 500.0, Direction: HigherIsBetter, Category: CategoryRevenue, Unit: "$"},
		{ID: "roas", Name: "Return on Ad Spend", BenchmarkValue: 400.0, Direction: HigherIsBetter, Category: CategoryRevenue, Unit: "%"},
		{ID: "marketing_roi", Name: "Marketing ROI", BenchmarkValue: 100.0, Direction: HigherIsBetter, Category: CategoryRevenue, Unit: "%"},
		{ID: "brand_awareness", Name: "Brand Awareness", BenchmarkValue: 30.0, Direction: HigherIsBetter, Category: CategoryBrand, Unit: "%"},
		{ID: "nps", Name: "Net Promoter Score", BenchmarkValue: 50.0, Direction: HigherIsBetter, Category: CategoryBrand, Unit: ""},
	}
	weights := map[Category]float64{
		CategoryAcquisition: 1.2,
		CategoryConversion:  1.2,
		CategoryRevenue:     1.1,
		CategoryEngagement:  1.0,
		CategoryRetention:   1.0,
		CategoryBrand:       0.9,
	}
	return NewEngine(kpis, weights)
}

// NewDigitalEngine builds the web/digital-analytics KPI catalog. All
// categories carry equal weight.
func NewDigitalEngine() *Engine {
	kpis := []KPIDefinition{
		{ID: "website_traffic", Name: "Monthly Website Traffic", BenchmarkValue: 10000, Direction: HigherIsBetter, Category: CategoryAcquisition, Unit: ""},
		{ID: "bounce_rate", Name: "Bounce Rate", BenchmarkValue: 50.0, Direction: LowerIsBetter, Category: CategoryEngagement, Unit: "%"},
		{ID: "pages_per_session", Name: "Pages per Session", BenchmarkValue: 3.0, Direction: HigherIsBetter, Category: CategoryEngagement, Unit: ""},
		{ID: "session_duration", Name: "Avg Session Duration", BenchmarkValue: 180, Direction: HigherIsBetter, Category: CategoryEngagement, Unit: "sec"},
		{ID: "organic_traffic", Name: "Organic Traffic %", BenchmarkValue: 40.0, Direction: HigherIsBetter, Category: CategoryAcquisition, Unit: "%"},
		{ID: "paid_ctr", Name: "Paid Ads CTR", BenchmarkValue: 2.0, Direction: HigherIsBetter, Category: CategoryConversion, Unit: "%"},
		{ID: "landing_conversion", Name: "Landing Page Conversion", BenchmarkValue: 5.0, Direction: HigherIsBetter, Category: CategoryConversion, Unit: "%"},
		{ID: "cart_abandonment", Name: "Cart Abandonment Rate", BenchmarkValue: 70.0, Direction: LowerIsBetter, Category: CategoryConversion, Unit: "%"},
	}
	return NewEngine(kpis, nil)
}
