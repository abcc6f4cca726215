package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/marketing-iq/internal/agent"
	"github.com/ignite/marketing-iq/internal/repository/postgres"
	"github.com/ignite/marketing-iq/internal/suggest"
)

// HandleSuggestions generates ranked prompt suggestions for the current
// mode and business context. When a session ID is supplied, discussed
// topics and dismissed prompts stored for that session are merged into
// the request before ranking.
//
//	POST /api/suggestions
func (h *Handlers) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		suggest.Request
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID != "" && h.sessions != nil {
		discussed, err := h.sessions.DiscussedTopics(r.Context(), req.SessionID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "load session topics: "+err.Error())
			return
		}
		dismissed, err := h.sessions.DismissedPrompts(r.Context(), req.SessionID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "load dismissed prompts: "+err.Error())
			return
		}
		req.Discussed = append(req.Discussed, discussed...)
		req.Dismissed = append(req.Dismissed, dismissed...)
	}

	suggestions, err := h.suggester.Suggest(req.Request)
	if err != nil {
		if errors.Is(err, suggest.ErrUnknownMode) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// HandleRecordTopics extracts topics from a message and records them as
// discussed for the session, so future suggestions stop repeating them.
//
//	POST /api/suggestions/topics
func (h *Handlers) HandleRecordTopics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		respondError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	topics := suggest.ExtractTopics(req.Message)
	if h.sessions != nil && len(topics) > 0 {
		if err := h.sessions.AddDiscussedTopics(r.Context(), req.SessionID, topics...); err != nil {
			respondError(w, http.StatusInternalServerError, "record topics: "+err.Error())
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}

// HandleDismissPrompt marks a suggested prompt as dismissed for the
// session.
//
//	POST /api/suggestions/{session}/dismiss
func (h *Handlers) HandleDismissPrompt(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")
	var req struct {
		Prompt string `json:"prompt"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if h.sessions == nil {
		respondError(w, http.StatusServiceUnavailable, "session store not configured")
		return
	}
	if err := h.sessions.DismissPrompt(r.Context(), sessionID, req.Prompt); err != nil {
		respondError(w, http.StatusInternalServerError, "dismiss prompt: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}

// HandleModes lists the assistant modes with their descriptions and
// starter prompts.
//
//	GET /api/modes
func (h *Handlers) HandleModes(w http.ResponseWriter, r *http.Request) {
	type modeInfo struct {
		ID             string   `json:"id"`
		Description    string   `json:"description"`
		StarterPrompts []string `json:"starter_prompts"`
	}
	out := make([]modeInfo, 0, len(agent.Modes()))
	for _, m := range agent.Modes() {
		out = append(out, modeInfo{
			ID:             string(m),
			Description:    m.Description(),
			StarterPrompts: m.StarterPrompts(),
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"modes": out})
}

// HandleChat sends one user turn to the assistant. Topics mentioned in
// the message are recorded as discussed for the session.
//
//	POST /api/chat
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	if h.chat == nil {
		respondError(w, http.StatusServiceUnavailable, "chat assistant not configured")
		return
	}
	var req struct {
		SessionID string `json:"session_id"`
		agent.ChatRequest
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.chat.Chat(r.Context(), req.ChatRequest)
	if err != nil {
		if errors.Is(err, agent.ErrUnknownMode) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "chat completion: "+err.Error())
		return
	}

	if req.SessionID != "" && h.sessions != nil {
		if topics := suggest.ExtractTopics(req.Message); len(topics) > 0 {
			if err := h.sessions.AddDiscussedTopics(r.Context(), req.SessionID, topics...); err != nil {
				respondError(w, http.StatusInternalServerError, "record topics: "+err.Error())
				return
			}
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// HandleOrganizationContext assembles the assistant context snapshot
// for an organization from stored campaigns and channels.
//
//	GET /api/context/{orgID}
func (h *Handlers) HandleOrganizationContext(w http.ResponseWriter, r *http.Request) {
	if h.orgs == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}
	orgID := chi.URLParam(r, "orgID")

	org, err := h.orgs.Get(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			respondError(w, http.StatusNotFound, "organization not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	campaigns, err := h.campaigns.List(r.Context(), orgID, postgres.ListFilter{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	channels, err := h.channels.List(r.Context(), orgID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx := agent.ContextData{
		Organization: &agent.OrganizationContext{
			Name:                  org.Name,
			Industry:              org.Industry,
			AnnualMarketingBudget: org.AnnualMarketingBudget,
		},
	}
	for i := range campaigns {
		c := &campaigns[i]
		ctx.Campaigns = append(ctx.Campaigns, agent.CampaignContext{
			Name:   c.Name,
			Status: string(c.Status),
		})
	}
	for i := range channels {
		c := &channels[i]
		ctx.Channels = append(ctx.Channels, agent.ChannelContext{
			Name: c.Name,
			ROAS: c.ROAS(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"context":  ctx,
		"rendered": agent.FormatContext(ctx),
	})
}
