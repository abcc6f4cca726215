package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/marketing-iq/internal/domain"
	"github.com/ignite/marketing-iq/internal/repository/postgres"
)

func (h *Handlers) requireDB(w http.ResponseWriter) bool {
	if h.orgs == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return false
	}
	return true
}

func respondRepoError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, postgres.ErrNotFound) {
		respondError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// HandleListOrganizations returns all organizations.
//
//	GET /api/organizations
func (h *Handlers) HandleListOrganizations(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	orgs, err := h.orgs.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"organizations": orgs})
}

// HandleCreateOrganization registers a new organization.
//
//	POST /api/organizations
func (h *Handlers) HandleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var org domain.Organization
	if !decodeJSON(w, r, &org) {
		return
	}
	if org.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := h.orgs.Create(r.Context(), &org)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// HandleGetOrganization returns one organization.
//
//	GET /api/organizations/{orgID}
func (h *Handlers) HandleGetOrganization(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	org, err := h.orgs.Get(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		respondRepoError(w, err, "organization not found")
		return
	}
	respondJSON(w, http.StatusOK, org)
}

// HandleUpdateOrganization updates an organization's profile.
//
//	PUT /api/organizations/{orgID}
func (h *Handlers) HandleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var org domain.Organization
	if !decodeJSON(w, r, &org) {
		return
	}
	org.ID = chi.URLParam(r, "orgID")
	if err := h.orgs.Update(r.Context(), &org); err != nil {
		respondRepoError(w, err, "organization not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleDeleteOrganization removes an organization.
//
//	DELETE /api/organizations/{orgID}
func (h *Handlers) HandleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	if err := h.orgs.Delete(r.Context(), chi.URLParam(r, "orgID")); err != nil {
		respondRepoError(w, err, "organization not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// HandleListCampaigns lists an organization's campaigns, optionally
// filtered by status.
//
//	GET /api/organizations/{orgID}/campaigns?status=active&limit=20&offset=0
func (h *Handlers) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	f := postgres.ListFilter{Status: r.URL.Query().Get("status")}
	if v := r.URL.Query().Get("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}
	campaigns, err := h.campaigns.List(r.Context(), chi.URLParam(r, "orgID"), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

// HandleCreateCampaign registers a campaign under an organization.
//
//	POST /api/organizations/{orgID}/campaigns
func (h *Handlers) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var c domain.CampaignSnapshot
	if !decodeJSON(w, r, &c) {
		return
	}
	if c.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	c.OrganizationID = chi.URLParam(r, "orgID")
	id, err := h.campaigns.Create(r.Context(), &c)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// HandleGetCampaign returns one campaign with derived KPIs.
//
//	GET /api/organizations/{orgID}/campaigns/{campaignID}
func (h *Handlers) HandleGetCampaign(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "campaignID"))
	if err != nil {
		respondRepoError(w, err, "campaign not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": c,
		"kpis": map[string]float64{
			"ctr":                c.CTR(),
			"conversion_rate":    c.ConversionRate(),
			"cpa":                c.CPA(),
			"roas":               c.ROAS(),
			"budget_utilization": c.BudgetUtilization(),
		},
	})
}

// HandleUpdateCampaignMetrics replaces a campaign's raw counters.
//
//	PUT /api/organizations/{orgID}/campaigns/{campaignID}/metrics
func (h *Handlers) HandleUpdateCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var c domain.CampaignSnapshot
	if !decodeJSON(w, r, &c) {
		return
	}
	err := h.campaigns.UpdateMetrics(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "campaignID"), &c)
	if err != nil {
		respondRepoError(w, err, "campaign not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleDeleteCampaign removes a campaign.
//
//	DELETE /api/organizations/{orgID}/campaigns/{campaignID}
func (h *Handlers) HandleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	err := h.campaigns.Delete(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "campaignID"))
	if err != nil {
		respondRepoError(w, err, "campaign not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// HandleListChannels lists an organization's channels.
//
//	GET /api/organizations/{orgID}/channels
func (h *Handlers) HandleListChannels(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	channels, err := h.channels.List(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"channels": channels})
}

// HandleCreateChannel registers a channel under an organization.
//
//	POST /api/organizations/{orgID}/channels
func (h *Handlers) HandleCreateChannel(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var c domain.ChannelSnapshot
	if !decodeJSON(w, r, &c) {
		return
	}
	if c.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	c.OrganizationID = chi.URLParam(r, "orgID")
	id, err := h.channels.Create(r.Context(), &c)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// HandleGetChannel returns one channel with derived KPIs.
//
//	GET /api/organizations/{orgID}/channels/{channelID}
func (h *Handlers) HandleGetChannel(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	c, err := h.channels.Get(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "channelID"))
	if err != nil {
		respondRepoError(w, err, "channel not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"channel": c,
		"kpis": map[string]float64{
			"ctr":             c.CTR(),
			"conversion_rate": c.ConversionRate(),
			"cpc":             c.CPC(),
			"cpa":             c.CPA(),
			"roas":            c.ROAS(),
			"roi":             c.ROI(),
		},
	})
}

// HandleUpdateChannelMetrics replaces a channel's raw counters.
//
//	PUT /api/organizations/{orgID}/channels/{channelID}/metrics
func (h *Handlers) HandleUpdateChannelMetrics(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	var c domain.ChannelSnapshot
	if !decodeJSON(w, r, &c) {
		return
	}
	err := h.channels.UpdateMetrics(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "channelID"), &c)
	if err != nil {
		respondRepoError(w, err, "channel not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleDeleteChannel removes a channel.
//
//	DELETE /api/organizations/{orgID}/channels/{channelID}
func (h *Handlers) HandleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	if !h.requireDB(w) {
		return
	}
	err := h.channels.Delete(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "channelID"))
	if err != nil {
		respondRepoError(w, err, "channel not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
