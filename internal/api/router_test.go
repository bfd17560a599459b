package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/api/middleware"
	"github.com/ajaykumar8188/lubes-management/internal/core/access"
	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

const fallbackSecret = "fallback-secret"

type fakeSessionRepo struct {
	sessions map[string]domain.Session
}

func (r *fakeSessionRepo) Save(_ context.Context, s domain.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func customerSession(t *testing.T) (*fakeSessionRepo, string) {
	t.Helper()
	repo := &fakeSessionRepo{sessions: map[string]domain.Session{
		"sess-1": {
			ID:       "sess-1",
			Identity: domain.Identity{ID: "u1", Email: "customer@lubes.com", Role: domain.RoleCustomer},
			IssuedAt: time.Now(),
		},
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "sess-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(fallbackSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return repo, token
}

func requestFallback(t *testing.T, repo *fakeSessionRepo, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.Identify(fallbackSecret, repo)(routeFallback)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRouteFallback_AnonymousRedirectsToLogin(t *testing.T) {
	repo, _ := customerSession(t)

	rec := requestFallback(t, repo, "/no-such-page", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != access.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", access.LoginPath, loc)
	}
}

func TestRouteFallback_AuthenticatedRedirectsToDashboard(t *testing.T) {
	repo, token := customerSession(t)

	rec := requestFallback(t, repo, "/no-such-page", token)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != access.DashboardPath {
		t.Fatalf("expected redirect to %s, got %s", access.DashboardPath, loc)
	}
}

func TestRouteFallback_AllowedPathFallsThroughTo404(t *testing.T) {
	repo, token := customerSession(t)

	rec := requestFallback(t, repo, "/cart", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for allowed path, got %d", rec.Code)
	}
}

func TestRouteFallback_RevokedSessionIsAnonymous(t *testing.T) {
	repo, token := customerSession(t)
	delete(repo.sessions, "sess-1")

	rec := requestFallback(t, repo, "/no-such-page", token)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != access.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", access.LoginPath, loc)
	}
}
