package httpadapter

import (
	"net/http"
	"strconv"

	"direct-ads/internal/core/domain"
)

// DefaultDaysBack is the expense window used when days_back is omitted.
const DefaultDaysBack = 7

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type expensesResponse struct {
	Expenses domain.ExpenseMap `json:"expenses"`
	Total    float64           `json:"total"`
	Error    string            `json:"error,omitempty"`
}

// handleBalance returns the account balance. Any failure, including the
// lack of a chosen campaign, results in HTTP 502.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.GetBalance(r.Context())
	if err != nil {
		h.logError(r, "balance error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.writeJSON(w, r, http.StatusOK, balanceResponse{Balance: balance})
}

// handleExpenses returns spend per day for the optional `days_back` query
// parameter, falling back to Options.DaysBack. Aggregation failures still
// yield HTTP 200 with an empty map and the error reported alongside.
func (h *Handler) handleExpenses(w http.ResponseWriter, r *http.Request) {
	daysBack := h.daysBack
	if raw := r.URL.Query().Get("days_back"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > domain.MaxDaysBack {
			http.Error(w, "invalid days_back", http.StatusBadRequest)
			return
		}
		daysBack = n
	}
	res := h.svc.GetExpenses(r.Context(), daysBack)
	h.writeJSON(w, r, http.StatusOK, expensesResponse{
		Expenses: res.Value,
		Total:    res.Value.Total(),
		Error:    errorString(res.Err),
	})
}
