package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SscSPs/rental_management_app/internal/adapters/identity"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/services"
	"github.com/SscSPs/rental_management_app/internal/dto"
	"github.com/SscSPs/rental_management_app/internal/handlers"
	"github.com/SscSPs/rental_management_app/internal/platform/metrics"
	"github.com/SscSPs/rental_management_app/internal/repositories/database/memory"
	"github.com/SscSPs/rental_management_app/internal/seed"
	"github.com/SscSPs/rental_management_app/internal/utils"
)

// newDemoRouter wires the real services over a seeded memory store.
func newDemoRouter(t *testing.T) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	utils.PasswordCost = bcrypt.MinCost
	ctx := context.Background()

	store := memory.NewStore()
	ds := seed.Demo()
	require.NoError(t, seed.Load(ctx, store, ds, nil))
	require.NoError(t, seed.LoadAccounts(ctx, store, store, seed.Accounts(ds), nil))

	cfg := testConfig()
	cfg.JWTSecret = "router-test-secret"
	cfg.SessionFetchTimeout = 5 * time.Second
	cfg.SessionCacheTTL = -1
	cfg.ReferenceDate = domain.MustDate("2025-01-20")

	authority := identity.NewAuthority(store, store, identity.Config{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     "rma-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}, nil)
	m := metrics.New()
	r, err := handlers.NewRouter(handlers.Dependencies{
		Config:   cfg,
		Services: services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), authority),
		Logger:   slog.New(slog.DiscardHandler),
		Metrics:  m,
		NewProvider: func(logger *slog.Logger) portssvc.IdentityProvider {
			return identity.NewLocalProvider(authority, logger)
		},
	})
	require.NoError(t, err)
	return r, m
}

func serve(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, r *gin.Engine, email string) dto.AuthResponse {
	t.Helper()
	rr := serve(r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: email, Password: seed.DemoPassword})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestRouter_LandlordFlow(t *testing.T) {
	r, _ := newDemoRouter(t)

	auth := login(t, r, seed.LandlordEmail)
	assert.Equal(t, "/landlord", auth.Redirect)
	assert.Equal(t, domain.RoleLandlord, auth.Identity.Role)

	rr := serve(r, http.MethodGet, "/api/v1/landlord/properties", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var props []domain.PropertyOverview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &props))
	assert.Len(t, props, 3)

	rr = serve(r, http.MethodGet, "/api/v1/landlord/invoices?status=overdue", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var invoices domain.InvoiceList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &invoices))
	for _, inv := range invoices.Invoices {
		assert.Equal(t, domain.InvoiceOverdue, inv.Status)
	}

	rr = serve(r, http.MethodGet, "/api/v1/landlord/reports/rent-roll", auth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(r, http.MethodGet, "/api/v1/tenant/dashboard", auth.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_TenantFlow(t *testing.T) {
	r, _ := newDemoRouter(t)

	auth := login(t, r, "john.smith@email.com")
	assert.Equal(t, "/tenant", auth.Redirect)
	assert.Equal(t, "tenant-1", auth.Identity.ID)

	rr := serve(r, http.MethodGet, "/api/v1/tenant/profile", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var profile domain.TenantProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "John Smith", profile.Tenant.Name)

	rr = serve(r, http.MethodGet, "/", auth.AccessToken, nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/tenant", rr.Header().Get("Location"))
}

func TestRouter_RoleSwitchTakesEffectImmediately(t *testing.T) {
	r, _ := newDemoRouter(t)
	auth := login(t, r, "john.smith@email.com")

	rr := serve(r, http.MethodPost, "/api/v1/me/role", auth.AccessToken, dto.SwitchRoleRequest{Role: "landlord"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(r, http.MethodGet, "/api/v1/landlord/dashboard", auth.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_LogoutRevokesRefresh(t *testing.T) {
	r, _ := newDemoRouter(t)
	auth := login(t, r, seed.LandlordEmail)

	rr := serve(r, http.MethodPost, "/api/v1/auth/logout", auth.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(r, http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{AccessToken: auth.AccessToken, RefreshToken: auth.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_BadCredentials(t *testing.T) {
	r, _ := newDemoRouter(t)
	rr := serve(r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: seed.LandlordEmail, Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, _ := newDemoRouter(t)
	serve(r, http.MethodGet, "/health", "", nil)

	rr := serve(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `rma_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
