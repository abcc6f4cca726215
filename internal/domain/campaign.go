package domain

import (
	"time"

	"github.com/ignite/marketing-iq/internal/scoring"
)

// CampaignStatus enumerates the lifecycle states of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// CampaignSnapshot represents a marketing campaign with its raw performance
// counters. Spend exceeding budget is a condition to detect, not reject:
// the alert engine flags it, the model never rules it out.
type CampaignSnapshot struct {
	ID             string         `json:"id" db:"id"`
	OrganizationID string         `json:"organization_id" db:"organization_id"`
	Name           string         `json:"name" db:"name"`
	Type           string         `json:"type" db:"type"`
	Status         CampaignStatus `json:"status" db:"status"`
	Budget         float64        `json:"budget" db:"budget"`
	Spend          float64        `json:"spend" db:"spend"`
	Impressions    int64          `json:"impressions" db:"impressions"`
	Clicks         int64          `json:"clicks" db:"clicks"`
	Conversions    int64          `json:"conversions" db:"conversions"`
	Leads          int64          `json:"leads" db:"leads"`
	Revenue        float64        `json:"revenue" db:"revenue"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// CTR returns click-through rate as a percentage.
func (c *CampaignSnapshot) CTR() float64 {
	return scoring.SafePercent(float64(c.Clicks), float64(c.Impressions))
}

// ConversionRate returns conversions over clicks as a percentage.
func (c *CampaignSnapshot) ConversionRate() float64 {
	return scoring.SafePercent(float64(c.Conversions), float64(c.Clicks))
}

// CPA returns cost per acquisition.
func (c *CampaignSnapshot) CPA() float64 {
	return scoring.SafeRatio(c.Spend, float64(c.Conversions))
}

// ROAS returns return on ad spend as a percentage.
func (c *CampaignSnapshot) ROAS() float64 {
	return scoring.SafePercent(c.Revenue, c.Spend)
}

// BudgetUtilization returns spend as a percentage of budget.
func (c *CampaignSnapshot) BudgetUtilization() float64 {
	return scoring.SafePercent(c.Spend, c.Budget)
}

// IsActive reports whether the campaign is currently running.
func (c *CampaignSnapshot) IsActive() bool {
	return c.Status == CampaignActive
}
