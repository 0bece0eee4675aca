package session_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authed(role domain.Role) session.State {
	return session.State{
		Status:   session.StatusAuthenticated,
		Identity: &domain.Identity{ID: "u-1", Email: "u@example.com", Role: role},
	}
}

func TestDecide(t *testing.T) {
	loadingWithIdentity := authed(domain.RoleLandlord)
	loadingWithIdentity.Status = session.StatusLoading
	anon := session.State{Status: session.StatusAnonymous}

	tests := []struct {
		name  string
		state session.State
		path  string
		want  session.Decision
	}{
		{name: "loading shows placeholder", state: session.State{Status: session.StatusLoading}, path: "/landlord", want: session.Decision{Kind: session.Placeholder}},
		{name: "loading ignores identity", state: loadingWithIdentity, path: "/", want: session.Decision{Kind: session.Placeholder}},
		{name: "uninitialized shows placeholder", state: session.State{}, path: "/login", want: session.Decision{Kind: session.Placeholder}},
		{name: "anonymous root", state: anon, path: "/", want: session.Decision{Kind: session.Redirect, Location: "/login"}},
		{name: "anonymous landlord", state: anon, path: "/landlord/invoices", want: session.Decision{Kind: session.Redirect, Location: "/login"}},
		{name: "anonymous tenant", state: anon, path: "/tenant", want: session.Decision{Kind: session.Redirect, Location: "/login"}},
		{name: "anonymous login", state: anon, path: "/login", want: session.Decision{Kind: session.Permit}},
		{name: "anonymous callback", state: anon, path: "/auth/callback", want: session.Decision{Kind: session.Permit}},
		{name: "landlord root", state: authed(domain.RoleLandlord), path: "/", want: session.Decision{Kind: session.Redirect, Location: "/landlord"}},
		{name: "tenant root", state: authed(domain.RoleTenant), path: "/", want: session.Decision{Kind: session.Redirect, Location: "/tenant"}},
		{name: "landlord subtree", state: authed(domain.RoleLandlord), path: "/landlord/reports/", want: session.Decision{Kind: session.Permit}},
		{name: "tenant in landlord subtree", state: authed(domain.RoleTenant), path: "/landlord", want: session.Decision{Kind: session.Permit}},
		{name: "authenticated login page", state: authed(domain.RoleTenant), path: "/login", want: session.Decision{Kind: session.Permit}},
		{name: "query stripped", state: authed(domain.RoleTenant), path: "/tenant/statement?from=2024-01-01", want: session.Decision{Kind: session.Permit}},
		{name: "unknown path", state: authed(domain.RoleTenant), path: "/admin", want: session.Decision{Kind: session.NotFound}},
		{name: "prefix is not a subtree", state: authed(domain.RoleTenant), path: "/tenants", want: session.Decision{Kind: session.NotFound}},
		{name: "anonymous unknown path", state: anon, path: "/nope", want: session.Decision{Kind: session.NotFound}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.Decide(tt.state, tt.path))
		})
	}
}

func TestDecideScoped(t *testing.T) {
	assert.Equal(t,
		session.Decision{Kind: session.Redirect, Location: "/tenant"},
		session.DecideScoped(authed(domain.RoleTenant), "/landlord/properties"))
	assert.Equal(t,
		session.Decision{Kind: session.Redirect, Location: "/landlord"},
		session.DecideScoped(authed(domain.RoleLandlord), "/tenant"))
	assert.Equal(t,
		session.Decision{Kind: session.Permit},
		session.DecideScoped(authed(domain.RoleLandlord), "/landlord/settings"))
	assert.Equal(t,
		session.Decision{Kind: session.Redirect, Location: "/login"},
		session.DecideScoped(session.State{Status: session.StatusAnonymous}, "/tenant"))
}

func TestDecisionKind_String(t *testing.T) {
	assert.Equal(t, "placeholder", session.Placeholder.String())
	assert.Equal(t, "not_found", session.NotFound.String())
}

func TestDecision_JSON(t *testing.T) {
	raw, err := json.Marshal(session.Decision{Kind: session.Redirect, Location: "/landlord"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"redirect","location":"/landlord"}`, string(raw))

	var back session.Decision
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, session.Redirect, back.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"maybe"}`), &back))
}
