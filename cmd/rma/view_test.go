package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
	"github.com/SscSPs/rental_management_app/internal/seed"
	"github.com/SscSPs/rental_management_app/internal/utils"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	utils.PasswordCost = bcrypt.MinCost
	cfg := &config.Config{
		StorageDriver:              config.StorageMemory,
		JWTSecret:                  "view-test-secret",
		JWTIssuer:                  "rma-test",
		JWTExpiryDuration:          time.Hour,
		RefreshTokenExpiryDuration: 24 * time.Hour,
		SessionFetchTimeout:        5 * time.Second,
		SessionCacheTTL:            -1,
		EnableRoleSwitch:           true,
		ReferenceDate:              domain.MustDate("2025-01-20"),
	}
	a, err := newApp(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(a.close)
	return a
}

func TestRunView(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name      string
		path      string
		opts      viewOptions
		wantKind  session.DecisionKind
		wantLoc   string
		wantView  bool
		wantState session.Status
	}{
		{
			name:      "anonymous is sent to login",
			path:      "/landlord",
			wantKind:  session.Redirect,
			wantLoc:   "/login",
			wantState: session.StatusAnonymous,
		},
		{
			name:      "landlord dashboard",
			path:      "/landlord",
			opts:      viewOptions{email: seed.LandlordEmail, password: seed.DemoPassword},
			wantKind:  session.Permit,
			wantView:  true,
			wantState: session.StatusAuthenticated,
		},
		{
			name:      "root redirects tenants home",
			path:      "/",
			opts:      viewOptions{email: "sarah.j@email.com", password: seed.DemoPassword},
			wantKind:  session.Redirect,
			wantLoc:   "/tenant",
			wantState: session.StatusAuthenticated,
		},
		{
			name:      "tenant kept out of landlord subtree",
			path:      "/landlord/reports",
			opts:      viewOptions{email: "sarah.j@email.com", password: seed.DemoPassword},
			wantKind:  session.Redirect,
			wantLoc:   "/tenant",
			wantState: session.StatusAuthenticated,
		},
		{
			name:      "unknown page",
			path:      "/admin",
			opts:      viewOptions{email: seed.LandlordEmail, password: seed.DemoPassword},
			wantKind:  session.NotFound,
			wantState: session.StatusAuthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.scoped = true
			tt.opts.timeout = 10 * time.Second

			res, err := runView(context.Background(), a, tt.path, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, res.State.Status)
			assert.Equal(t, tt.wantKind, res.Decision.Kind)
			assert.Equal(t, tt.wantLoc, res.Decision.Location)
			assert.Equal(t, tt.wantView, res.View != nil)
			assert.NotEmpty(t, res.Transitions)
		})
	}
}

func TestRunView_WrongPassword(t *testing.T) {
	a := newTestApp(t)
	_, err := runView(context.Background(), a, "/landlord", viewOptions{
		email: seed.LandlordEmail, password: "nope", scoped: true, timeout: 5 * time.Second,
	})
	assert.Error(t, err)
}

func TestRunView_RoleSwitch(t *testing.T) {
	a := newTestApp(t)
	res, err := runView(context.Background(), a, "/landlord/properties", viewOptions{
		email: "sarah.j@email.com", password: seed.DemoPassword, role: "landlord", scoped: true, timeout: 10 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLandlord, res.State.Identity.Role)
	assert.Equal(t, session.Permit, res.Decision.Kind)
	assert.NotNil(t, res.View)
}

func TestRenderView_UnmappedPage(t *testing.T) {
	a := newTestApp(t)
	view, err := renderView(context.Background(), a.services, domain.Identity{ID: "tenant-1", Role: domain.RoleTenant}, "/tenant/settings")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestRunView_CountsTransitions(t *testing.T) {
	a := newTestApp(t)
	_, err := runView(context.Background(), a, "/", viewOptions{scoped: true, timeout: 5 * time.Second})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.SessionTransitions.WithLabelValues("loading", "anonymous")))
	assert.Zero(t, testutil.ToFloat64(a.metrics.SessionTransitions.WithLabelValues("loading", "authenticated")))
}
