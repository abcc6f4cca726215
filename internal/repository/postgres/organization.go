package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ignite/marketing-iq/internal/domain"
)

// OrganizationRepo stores organizations in PostgreSQL.
type OrganizationRepo struct{ db *sql.DB }

// NewOrganizationRepo creates a Postgres-backed organization repository.
func NewOrganizationRepo(db *sql.DB) *OrganizationRepo { return &OrganizationRepo{db: db} }

func (r *OrganizationRepo) Get(ctx context.Context, id string) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(industry,''), annual_marketing_budget, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Industry, &o.AnnualMarketingBudget, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

func (r *OrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(industry,''), annual_marketing_budget, created_at, updated_at
		FROM organizations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var out []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Industry, &o.AnnualMarketingBudget, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrganizationRepo) Create(ctx context.Context, o *domain.Organization) (string, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, industry, annual_marketing_budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`, o.ID, o.Name, o.Industry, o.AnnualMarketingBudget)
	if err != nil {
		return "", fmt.Errorf("create organization: %w", err)
	}
	return o.ID, nil
}

func (r *OrganizationRepo) Update(ctx context.Context, o *domain.Organization) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE organizations
		SET name = $2, industry = $3, annual_marketing_budget = $4, updated_at = NOW()
		WHERE id = $1
	`, o.ID, o.Name, o.Industry, o.AnnualMarketingBudget)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrganizationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
