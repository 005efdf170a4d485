// Package http registers the service's routes.
package http

import (
	nethttp "net/http"

	"live-match-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/live", handler.Live)
	mux.HandleFunc("/matches", handler.Live)
	if admin != nil {
		mux.HandleFunc("/admin/cache/refresh", admin.RefreshCaches)
	}
	return mux
}
