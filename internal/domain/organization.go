package domain

import "time"

// Organization represents a client organization whose marketing data is
// analyzed by the platform.
type Organization struct {
	ID                    string    `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	Industry              string    `json:"industry" db:"industry"`
	AnnualMarketingBudget float64   `json:"annual_marketing_budget" db:"annual_marketing_budget"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
