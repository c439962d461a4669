package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"direct-ads/internal/core/port"
)

const requestIDHeader = "X-Request-Id"

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP exposing the campaign operations of port.DirectUseCase. Routes are
// registered on a chi.Router.
type Handler struct {
	svc      port.DirectUseCase
	logger   *slog.Logger
	router   chi.Router
	daysBack int
}

// Options holds optional handler settings.
type Options struct {
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// DaysBack is the expense window used when days_back is omitted.
	// Non-positive values mean DefaultDaysBack.
	DaysBack int
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DirectUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, daysBack: opts.DaysBack}
	if h.daysBack <= 0 {
		h.daysBack = DefaultDaysBack
	}
	r := chi.NewRouter()
	r.Use(h.requestID)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Put("/campaigns/{id}/chosen", h.handleSetChosen)
		r.Post("/campaigns/{id}/state", h.handleSetCampaignState)

		r.Post("/domains/{domain}/state", h.handleSetDomainState)
		r.Get("/domains/{domain}/off", h.handleIsDomainOff)

		r.Get("/balance", h.handleBalance)
		r.Get("/expenses", h.handleExpenses)
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestID tags every request with an id, reusing one sent by the client.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		slog.String("request_id", r.Header.Get(requestIDHeader)),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logError(r, "encode response error", err)
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
