package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/marketing-iq/internal/domain"
)

// ChannelRepo stores channel snapshots in PostgreSQL.
type ChannelRepo struct{ db *sql.DB }

// NewChannelRepo creates a Postgres-backed channel repository.
func NewChannelRepo(db *sql.DB) *ChannelRepo { return &ChannelRepo{db: db} }

func (r *ChannelRepo) Get(ctx context.Context, orgID, id string) (*domain.ChannelSnapshot, error) {
	c := &domain.ChannelSnapshot{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, organization_id, name, type, spend, revenue,
		       impressions, clicks, conversions, leads, created_at, updated_at
		FROM channels
		WHERE id = $1 AND organization_id = $2
	`, id, orgID).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.Spend, &c.Revenue,
		&c.Impressions, &c.Clicks, &c.Conversions, &c.Leads, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get channel: %w", err)
	}
	return c, nil
}

func (r *ChannelRepo) List(ctx context.Context, orgID string) ([]domain.ChannelSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, organization_id, name, type, spend, revenue,
		       impressions, clicks, conversions, leads, created_at, updated_at
		FROM channels
		WHERE organization_id = $1
		ORDER BY name
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()

	var out []domain.ChannelSnapshot
	for rows.Next() {
		var c domain.ChannelSnapshot
		if err := rows.Scan(
			&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.Spend, &c.Revenue,
			&c.Impressions, &c.Clicks, &c.Conversions, &c.Leads, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ChannelRepo) Create(ctx context.Context, c *domain.ChannelSnapshot) (string, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO channels
			(id, organization_id, name, type, spend, revenue,
			 impressions, clicks, conversions, leads, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`, c.ID, c.OrganizationID, c.Name, c.Type, c.Spend, c.Revenue,
		c.Impressions, c.Clicks, c.Conversions, c.Leads)
	if err != nil {
		return "", fmt.Errorf("create channel: %w", err)
	}
	return c.ID, nil
}

// UpdateMetrics replaces the raw counters for a channel.
func (r *ChannelRepo) UpdateMetrics(ctx context.Context, orgID, id string, c *domain.ChannelSnapshot) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE channels
		SET spend = $3, revenue = $4, impressions = $5, clicks = $6,
		    conversions = $7, leads = $8, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`, id, orgID, c.Spend, c.Revenue, c.Impressions, c.Clicks, c.Conversions, c.Leads)
	if err != nil {
		return fmt.Errorf("update channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update channel: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ChannelRepo) Delete(ctx context.Context, orgID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM channels WHERE id = $1 AND organization_id = $2
	`, id, orgID)
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
