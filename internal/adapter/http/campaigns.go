package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"direct-ads/internal/core/domain"
)

type campaignResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	State  string  `json:"state"`
	Status string  `json:"status"`
	On     bool    `json:"on"`
	Domain *string `json:"domain"`
	Chosen bool    `json:"chosen"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:     c.ID,
		Name:   c.Name,
		State:  c.State,
		Status: c.Status,
		On:     c.On(),
		Domain: c.Domain,
		Chosen: c.Chosen,
	}
}

type chosenRequest struct {
	Chosen bool    `json:"chosen"`
	Domain *string `json:"domain"`
}

type stateRequest struct {
	On *bool `json:"on"`
}

type stateResponse struct {
	OK        bool    `json:"ok"`
	FailedIDs []int64 `json:"failed_ids,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// handleListCampaigns returns all campaigns, or those listed in the
// optional comma-separated `ids` query parameter. Remote failures produce
// HTTP 502.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				http.Error(w, "invalid ids", http.StatusBadRequest)
				return
			}
			ids = append(ids, id)
		}
	}

	campaigns, err := h.svc.ListCampaigns(r.Context(), ids)
	if err != nil {
		h.logError(r, "list campaigns error", err)
		http.Error(w, "ad platform error", http.StatusBadGateway)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, toCampaignResponse(c))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// handleGetCampaign returns one campaign or HTTP 404 when the platform does
// not report it.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.logError(r, "get campaign error", err)
		http.Error(w, "ad platform error", http.StatusBadGateway)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, r, http.StatusOK, toCampaignResponse(*c))
}

// handleSetChosen stores the chosen flag and domain of a campaign.
func (h *Handler) handleSetChosen(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req chosenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetCampaignChosen(r.Context(), id, req.Chosen, req.Domain); err != nil {
		h.logError(r, "set chosen error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetCampaignState resumes or suspends one campaign. The operation
// is best effort: a failure is reported in the body with HTTP 200.
func (h *Handler) handleSetCampaignState(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	on, ok := decodeState(w, r)
	if !ok {
		return
	}
	res := h.svc.SetCampaignState(r.Context(), id, on)
	h.writeJSON(w, r, http.StatusOK, stateResponse{OK: res.Value, Error: errorString(res.Err)})
}

func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeState(w http.ResponseWriter, r *http.Request) (bool, bool) {
	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false, false
	}
	if req.On == nil {
		http.Error(w, "missing 'on'", http.StatusBadRequest)
		return false, false
	}
	return *req.On, true
}

func failedIDs(err error) []int64 {
	var toggleErr *domain.ToggleError
	if errors.As(err, &toggleErr) {
		return toggleErr.FailedIDs
	}
	return nil
}
