// Package api exposes the scoring engines, suggestion engine, alert
// engine and chat assistant over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ignite/marketing-iq/internal/agent"
	"github.com/ignite/marketing-iq/internal/alerts"
	"github.com/ignite/marketing-iq/internal/campaign"
	"github.com/ignite/marketing-iq/internal/channel"
	"github.com/ignite/marketing-iq/internal/funnel"
	"github.com/ignite/marketing-iq/internal/repository/postgres"
	"github.com/ignite/marketing-iq/internal/storage"
	"github.com/ignite/marketing-iq/internal/suggest"
)

// Handlers holds the engines and stores behind the HTTP surface.
type Handlers struct {
	orgs      *postgres.OrganizationRepo
	campaigns *postgres.CampaignRepo
	channels  *postgres.ChannelRepo
	sessions  *storage.SessionStore

	scorer    *campaign.Engine
	mix       *channel.Analyzer
	roi       *channel.ROIAnalyzer
	funnel    *funnel.Optimizer
	suggester *suggest.Engine
	alerter   *alerts.Engine
	chat      *agent.Engine

	startTime time.Time
}

// NewHandlers creates the handler set with default engine tuning.
// Repos and sessions may be nil; the stateless scoring endpoints keep
// working and the stateful ones return 503.
func NewHandlers(orgs *postgres.OrganizationRepo, campaigns *postgres.CampaignRepo, channels *postgres.ChannelRepo, sessions *storage.SessionStore) *Handlers {
	return &Handlers{
		orgs:      orgs,
		campaigns: campaigns,
		channels:  channels,
		sessions:  sessions,
		scorer:    campaign.NewPerformanceEngine(),
		mix:       channel.NewAnalyzer(0),
		roi:       channel.NewROIAnalyzer(0, 0, 0),
		funnel:    funnel.NewOptimizer(nil),
		suggester: suggest.NewEngine(),
		alerter:   alerts.NewEngine(alerts.DefaultThresholds(), nil),
		startTime: time.Now(),
	}
}

// SetChatEngine wires the LLM assistant. Without it the chat endpoints
// return 503.
func (h *Handlers) SetChatEngine(engine *agent.Engine) {
	h.chat = engine
}

// SetChannelTargets overrides the default ROAS/ROI/CPA/CLV targets used
// by the channel analyzers.
func (h *Handlers) SetChannelTargets(targetROAS, targetROI, targetCPA, avgCLV float64) {
	h.mix = channel.NewAnalyzer(targetROAS)
	h.roi = channel.NewROIAnalyzer(targetROI, targetCPA, avgCLV)
}

// SetAlertThresholds overrides the default alert thresholds.
func (h *Handlers) SetAlertThresholds(t alerts.Thresholds) {
	h.alerter = alerts.NewEngine(t, nil)
}

const healthVersion = "1.0.0"

// HealthCheck reports liveness.
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": healthVersion,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
