package domain

import (
	"time"

	"github.com/ignite/marketing-iq/internal/scoring"
)

// ChannelSnapshot represents a marketing channel's raw counters for an
// analysis window. Derived KPIs (ctr, conversion rate, cpc, cpa, roas) are
// always recomputed from the raw counters; they are never stored, so they
// can never go stale against the counters they summarize.
type ChannelSnapshot struct {
	ID             string    `json:"id" db:"id"`
	OrganizationID string    `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Type           string    `json:"type" db:"type"`
	Spend          float64   `json:"spend" db:"spend"`
	Revenue        float64   `json:"revenue" db:"revenue"`
	Impressions    int64     `json:"impressions" db:"impressions"`
	Clicks         int64     `json:"clicks" db:"clicks"`
	Conversions    int64     `json:"conversions" db:"conversions"`
	Leads          int64     `json:"leads" db:"leads"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// CTR returns click-through rate as a percentage.
func (c *ChannelSnapshot) CTR() float64 {
	return scoring.SafePercent(float64(c.Clicks), float64(c.Impressions))
}

// ConversionRate returns conversions over clicks as a percentage.
func (c *ChannelSnapshot) ConversionRate() float64 {
	return scoring.SafePercent(float64(c.Conversions), float64(c.Clicks))
}

// CPC returns cost per click.
func (c *ChannelSnapshot) CPC() float64 {
	return scoring.SafeRatio(c.Spend, float64(c.Clicks))
}

// CPA returns cost per acquisition.
func (c *ChannelSnapshot) CPA() float64 {
	return scoring.SafeRatio(c.Spend, float64(c.Conversions))
}

// ROAS returns return on ad spend as a percentage.
func (c *ChannelSnapshot) ROAS() float64 {
	return scoring.SafePercent(c.Revenue, c.Spend)
}

// ROI returns net return on investment as a percentage.
func (c *ChannelSnapshot) ROI() float64 {
	return scoring.SafePercent(c.Revenue-c.Spend, c.Spend)
}
