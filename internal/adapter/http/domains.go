package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type offResponse struct {
	Off   bool   `json:"off"`
	Error string `json:"error,omitempty"`
}

// handleSetDomainState switches all chosen campaigns of a domain. Partial
// failures are reported in the body, including the ids that failed.
func (h *Handler) handleSetDomainState(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "domain")
	on, ok := decodeState(w, r)
	if !ok {
		return
	}
	res := h.svc.SetDomainState(r.Context(), name, on)
	h.writeJSON(w, r, http.StatusOK, stateResponse{
		OK:        res.Value,
		FailedIDs: failedIDs(res.Err),
		Error:     errorString(res.Err),
	})
}

// handleIsDomainOff reports whether all chosen campaigns of a domain are
// off.
func (h *Handler) handleIsDomainOff(w http.ResponseWriter, r *http.Request) {
	res := h.svc.IsDomainOff(r.Context(), chi.URLParam(r, "domain"))
	h.writeJSON(w, r, http.StatusOK, offResponse{Off: res.Value, Error: errorString(res.Err)})
}
