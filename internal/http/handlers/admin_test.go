package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) Refresh(context.Context) error {
	s.calls++
	return s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/cache/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRefreshCachesRequiresToken(t *testing.T) {
	refresher := &stubRefresher{}

	// No token configured means the endpoint is always unauthorized.
	h := NewAdminHandler(refresher, "", nil)
	rec := httptest.NewRecorder()
	h.RefreshCaches(rec, adminRequest("anything"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	h = NewAdminHandler(refresher, "secret", nil)
	rec = httptest.NewRecorder()
	h.RefreshCaches(rec, adminRequest("wrong"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if refresher.calls != 0 {
		t.Fatalf("refresher should not run unauthorized, calls=%d", refresher.calls)
	}
}

func TestRefreshCachesSuccess(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.RefreshCaches(rec, adminRequest("secret"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if refresher.calls != 1 {
		t.Fatalf("expected one refresh, got %d", refresher.calls)
	}
}

func TestRefreshCachesFailureIs502(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("upstream down")}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.RefreshCaches(rec, adminRequest("secret"))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestRefreshCachesMethodNotAllowed(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/cache/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.RefreshCaches(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
