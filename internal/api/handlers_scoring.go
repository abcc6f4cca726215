package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/marketing-iq/internal/alerts"
	"github.com/ignite/marketing-iq/internal/benchmark"
	"github.com/ignite/marketing-iq/internal/channel"
	"github.com/ignite/marketing-iq/internal/funnel"
)

// HandleBenchmarkAnalyze scores actual KPI values against a named
// benchmark catalog.
//
//	POST /api/benchmark/{catalog}
func (h *Handlers) HandleBenchmarkAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EntityID string             `json:"entity_id"`
		Actuals  map[string]float64 `json:"actuals"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	engine, err := benchmark.FromCatalog(chi.URLParam(r, "catalog"))
	if err != nil {
		if errors.Is(err, benchmark.ErrUnknownCatalog) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, engine.Analyze(req.EntityID, req.Actuals))
}

// HandleCampaignScore scores one campaign's metric values against the
// performance component weights.
//
//	POST /api/campaigns/score
func (h *Handlers) HandleCampaignScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignID   string             `json:"campaign_id"`
		CampaignName string             `json:"campaign_name"`
		Values       map[string]float64 `json:"values"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.scorer.Score(req.CampaignID, req.CampaignName, req.Values))
}

// HandleChannelMix analyzes a channel portfolio: per-channel KPIs,
// efficiency scores and budget reallocation advice.
//
//	POST /api/channels/mix
func (h *Handlers) HandleChannelMix(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Channels map[channel.Type]channel.Metrics `json:"channels"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Channels) == 0 {
		respondError(w, http.StatusBadRequest, "channels is required")
		return
	}
	respondJSON(w, http.StatusOK, h.mix.AnalyzeMix(req.Channels))
}

// HandleChannelROI builds a per-channel ROI report.
//
//	POST /api/channels/roi
func (h *Handlers) HandleChannelROI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReportID       string             `json:"report_id"`
		OrganizationID string             `json:"organization_id"`
		Channels       []channel.ROIInput `json:"channels"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Channels) == 0 {
		respondError(w, http.StatusBadRequest, "channels is required")
		return
	}
	respondJSON(w, http.StatusOK, h.roi.Report(req.ReportID, req.OrganizationID, req.Channels))
}

// HandleFunnelAnalyze runs the full funnel analysis.
//
//	POST /api/funnel/analyze
func (h *Handlers) HandleFunnelAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stages map[funnel.Stage]funnel.StageInput `json:"stages"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.funnel.Analyze(req.Stages))
}

// HandleFunnelSimulate projects the effect of stage conversion-rate
// improvements.
//
//	POST /api/funnel/simulate
func (h *Handlers) HandleFunnelSimulate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stages       map[funnel.Stage]funnel.StageInput `json:"stages"`
		Improvements map[funnel.Stage]float64           `json:"improvements"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.funnel.Simulate(req.Stages, req.Improvements))
}

// HandleAlertsCheck evaluates a metrics snapshot against the alert
// thresholds and returns the raised alerts plus a summary.
//
//	POST /api/alerts/check
func (h *Handlers) HandleAlertsCheck(w http.ResponseWriter, r *http.Request) {
	var req alerts.Context
	if !decodeJSON(w, r, &req) {
		return
	}
	raised := h.alerter.CheckMetrics(req)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alerts":  raised,
		"summary": alerts.Summarize(raised),
	})
}
