package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"live-match-service/internal/app/live"
	"live-match-service/internal/domain"
	"live-match-service/internal/logging"
)

// liveCacheControl lets edge caches absorb polling clients without hiding
// score changes for long.
const liveCacheControl = "public, s-maxage=30"

// MatchService produces the merged match list.
type MatchService interface {
	Matches(ctx context.Context) (domain.LiveResponse, error)
}

// Handler wires HTTP routes to the live match service.
type Handler struct {
	svc      MatchService
	logger   *slog.Logger
	statusFn func() live.Status
}

// NewHandler constructs a Handler.
func NewHandler(svc MatchService, logger *slog.Logger, statusFn func() live.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
}

// Live returns the merged match list for the current day window.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)

	resp, err := h.svc.Matches(r.Context())
	if err != nil {
		logging.Error(logger, "live matches unavailable", err)
		writeError(w, r, http.StatusInternalServerError, "match data unavailable", logger)
		return
	}

	logging.Info(logger, "served live matches",
		slog.String(logging.FieldDateKey, resp.Date),
		slog.Int(logging.FieldCount, len(resp.Matches)),
	)
	w.Header().Set("Cache-Control", liveCacheControl)
	writeJSON(w, http.StatusOK, resp, logger)
}
