package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ignite/marketing-iq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignColumns() []string {
	return []string{
		"id", "organization_id", "name", "type", "status", "budget", "spend",
		"impressions", "clicks", "conversions", "leads", "revenue",
		"created_at", "updated_at",
	}
}

func TestCampaignRepo_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM campaigns").
		WithArgs("camp-1", "org-1").
		WillReturnRows(sqlmock.NewRows(campaignColumns()).
			AddRow("camp-1", "org-1", "Spring Sale", "search", "active",
				1000.0, 400.0, 50000, 1200, 60, 150, 2400.0, now, now))

	repo := NewCampaignRepo(db)
	c, err := repo.Get(context.Background(), "org-1", "camp-1")
	require.NoError(t, err)

	assert.Equal(t, "Spring Sale", c.Name)
	assert.Equal(t, domain.CampaignActive, c.Status)
	assert.InDelta(t, 2.4, c.CTR(), 1e-9)
	assert.InDelta(t, 600.0, c.ROAS(), 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM campaigns").
		WithArgs("missing", "org-1").
		WillReturnRows(sqlmock.NewRows(campaignColumns()))

	_, err = NewCampaignRepo(db).Get(context.Background(), "org-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_ListWithStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM campaigns").
		WithArgs("org-1", "active", 50, 0).
		WillReturnRows(sqlmock.NewRows(campaignColumns()).
			AddRow("camp-1", "org-1", "A", "", "active", 100.0, 10.0, 0, 0, 0, 0, 0.0, now, now).
			AddRow("camp-2", "org-1", "B", "", "active", 200.0, 20.0, 0, 0, 0, 0, 0.0, now, now))

	out, err := NewCampaignRepo(db).List(context.Background(), "org-1", ListFilter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_CreateAssignsIDAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO campaigns").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &domain.CampaignSnapshot{OrganizationID: "org-1", Name: "New"}
	id, err := NewCampaignRepo(db).Create(context.Background(), c)
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepo_UpdateMetricsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE campaigns").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewCampaignRepo(db).UpdateMetrics(context.Background(), "org-1", "missing",
		&domain.CampaignSnapshot{Status: domain.CampaignActive})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepo_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM organizations").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "industry", "annual_marketing_budget", "created_at", "updated_at",
		}).AddRow("org-1", "Acme Corp", "SaaS", 250000.0, now, now))

	o, err := NewOrganizationRepo(db).Get(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", o.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepo_ListScopedToOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM channels").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "organization_id", "name", "type", "spend", "revenue",
			"impressions", "clicks", "conversions", "leads", "created_at", "updated_at",
		}).AddRow("ch-1", "org-1", "Email", "Email", 140.0, 700.0, 10000, 350, 14, 30, now, now))

	out, err := NewChannelRepo(db).List(context.Background(), "org-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, 500.0, out[0].ROAS(), 1e-9)
	assert.InDelta(t, 400.0, out[0].ROI(), 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelRepo_DeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM channels").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewChannelRepo(db).Delete(context.Background(), "org-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
