package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"live-match-service/internal/http/middleware"
	"live-match-service/internal/logging"
)

// Refresher invalidates the source caches and rebuilds the match list.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints (cache refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshCaches drops every cached payload and refetches immediately.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshCaches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", middleware.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.refresher.Refresh(r.Context()); err != nil {
		logging.Warn(logger, "admin cache refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "refresh failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	logging.Info(logger, "admin cache refresh complete")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
