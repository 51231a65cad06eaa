package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio-backend/internal/auth"
)

func adminTestManager() *auth.Manager {
	return &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Issuer:     "folio-backend",
	}
}

func adminProtected(manager *auth.Manager, seen *string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = AdminEmailFromContext(r.Context())
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminAuth(manager)(next)
}

func TestAdminAuthRejectsMissingCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)

	adminProtected(adminTestManager(), nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsForgedToken(t *testing.T) {
	forger := adminTestManager()
	forger.Secret = []byte("attacker-secret")
	token, err := forger.NewAccessToken(auth.RoleAdmin, "attacker@example.com")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token})

	adminProtected(adminTestManager(), nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	manager := adminTestManager()
	token, err := manager.NewAccessToken("viewer", "viewer@example.com")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token})

	adminProtected(manager, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthPassesValidSession(t *testing.T) {
	manager := adminTestManager()
	token, err := manager.NewAccessToken(auth.RoleAdmin, "owner@example.com")
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	var seen string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token})

	adminProtected(manager, &seen).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if seen != "owner@example.com" {
		t.Fatalf("expected admin email in context, got %q", seen)
	}
}

func TestAdminAuthUnconfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)

	adminProtected(nil, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
