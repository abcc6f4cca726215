package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/marketing-iq/internal/domain"
)

// CampaignRepo stores campaign snapshots in PostgreSQL.
type CampaignRepo struct{ db *sql.DB }

// NewCampaignRepo creates a Postgres-backed campaign repository.
func NewCampaignRepo(db *sql.DB) *CampaignRepo { return &CampaignRepo{db: db} }

// ListFilter narrows campaign listings.
type ListFilter struct {
	Status string
	Limit  int
	Offset int
}

func (r *CampaignRepo) Get(ctx context.Context, orgID, id string) (*domain.CampaignSnapshot, error) {
	c := &domain.CampaignSnapshot{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, organization_id, name, COALESCE(type,''), status, budget, spend,
		       impressions, clicks, conversions, leads, revenue, created_at, updated_at
		FROM campaigns
		WHERE id = $1 AND organization_id = $2
	`, id, orgID).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.Status, &c.Budget, &c.Spend,
		&c.Impressions, &c.Clicks, &c.Conversions, &c.Leads, &c.Revenue,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepo) List(ctx context.Context, orgID string, f ListFilter) ([]domain.CampaignSnapshot, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	q := `
		SELECT id, organization_id, name, COALESCE(type,''), status, budget, spend,
		       impressions, clicks, conversions, leads, revenue, created_at, updated_at
		FROM campaigns
		WHERE organization_id = $1`
	args := []interface{}{orgID}
	idx := 2
	if f.Status != "" {
		q += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.CampaignSnapshot
	for rows.Next() {
		var c domain.CampaignSnapshot
		if err := rows.Scan(
			&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.Status, &c.Budget, &c.Spend,
			&c.Impressions, &c.Clicks, &c.Conversions, &c.Leads, &c.Revenue,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CampaignRepo) Create(ctx context.Context, c *domain.CampaignSnapshot) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaigns
			(id, organization_id, name, type, status, budget, spend,
			 impressions, clicks, conversions, leads, revenue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`, c.ID, c.OrganizationID, c.Name, c.Type, c.Status, c.Budget, c.Spend,
		c.Impressions, c.Clicks, c.Conversions, c.Leads, c.Revenue)
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}
	return c.ID, nil
}

// UpdateMetrics replaces the raw counters for a campaign. Derived KPIs
// are computed from these on read, never stored.
func (r *CampaignRepo) UpdateMetrics(ctx context.Context, orgID, id string, c *domain.CampaignSnapshot) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE campaigns
		SET status = $3, budget = $4, spend = $5, impressions = $6, clicks = $7,
		    conversions = $8, leads = $9, revenue = $10, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`, id, orgID, c.Status, c.Budget, c.Spend, c.Impressions, c.Clicks,
		c.Conversions, c.Leads, c.Revenue)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CampaignRepo) Delete(ctx context.Context, orgID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM campaigns WHERE id = $1 AND organization_id = $2
	`, id, orgID)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
