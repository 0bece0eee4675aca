package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	landlordProfile = domain.Profile{ID: "landlord-1", FullName: "Sam Landlord", Email: "sam@example.com", Role: "landlord"}
	tenantProfile   = domain.Profile{ID: "tenant-1", FullName: "Alice Johnson", Email: "alice@example.com", Role: "Tenant"}
)

type recorder struct {
	mu     sync.Mutex
	states []session.State
}

func (r *recorder) hook(_, to session.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, to)
}

func (r *recorder) statuses() []session.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]session.Status, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, s.Status)
	}
	return out
}

func startStore(t *testing.T, provider *fakeProvider, profiles *fakeProfiles, opts ...session.Option) *session.Store {
	t.Helper()
	store := session.NewStore(provider, profiles, opts...)
	store.Start(context.Background())
	t.Cleanup(store.Close)
	return store
}

func waitResolved(t *testing.T, store *session.Store) session.State {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	st, err := store.WaitResolved(ctx)
	require.NoError(t, err)
	return st
}

func TestStore_StartsUninitialized(t *testing.T) {
	store := session.NewStore(newFakeProvider(), newFakeProfiles())
	assert.Equal(t, session.StatusUninitialized, store.State().Status)
	assert.False(t, store.IsLoading())
	assert.Nil(t, store.CurrentIdentity())
	store.Close()
}

func TestStore_RestoreWithoutSession(t *testing.T) {
	rec := &recorder{}
	store := startStore(t, newFakeProvider(), newFakeProfiles(), session.WithTransitionHook(rec.hook))

	st := waitResolved(t, store)
	assert.Equal(t, session.StatusAnonymous, st.Status)
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, []session.Status{session.StatusLoading, session.StatusAnonymous}, rec.statuses())
}

func TestStore_RestoreWithSession(t *testing.T) {
	provider := newFakeProvider()
	provider.session = sessionFor("tenant-1", "alice@example.com")
	store := startStore(t, provider, newFakeProfiles(tenantProfile))

	st := waitResolved(t, store)
	require.Equal(t, session.StatusAuthenticated, st.Status)
	id := store.CurrentIdentity()
	require.NotNil(t, id)
	assert.Equal(t, "tenant-1", id.ID)
	assert.Equal(t, "Alice Johnson", id.DisplayName)
	assert.Equal(t, domain.RoleTenant, id.Role)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_RestoreErrorFailsClosed(t *testing.T) {
	provider := newFakeProvider()
	provider.getErr = errors.New("storage unavailable")
	store := startStore(t, provider, newFakeProfiles())

	assert.Equal(t, session.StatusAnonymous, waitResolved(t, store).Status)
}

func TestStore_ProfileFailureResolvesAnonymous(t *testing.T) {
	tests := []struct {
		name     string
		profiles *fakeProfiles
	}{
		{name: "missing profile", profiles: newFakeProfiles()},
		{name: "fetch error", profiles: func() *fakeProfiles {
			f := newFakeProfiles(tenantProfile)
			f.fetchErr = errors.New("connection reset")
			return f
		}()},
		{name: "unknown role", profiles: newFakeProfiles(domain.Profile{ID: "tenant-1", Role: "admin"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			provider.session = sessionFor("tenant-1", "alice@example.com")
			store := startStore(t, provider, tt.profiles)

			st := waitResolved(t, store)
			assert.Equal(t, session.StatusAnonymous, st.Status)
			assert.Nil(t, st.Identity)
		})
	}
}

func TestStore_FetchTimeoutResolvesAnonymous(t *testing.T) {
	provider := newFakeProvider()
	provider.session = sessionFor("tenant-1", "alice@example.com")
	profiles := newFakeProfiles(tenantProfile)
	profiles.delay["tenant-1"] = time.Second

	store := startStore(t, provider, profiles, session.WithFetchTimeout(20*time.Millisecond))

	start := time.Now()
	st := waitResolved(t, store)
	assert.Equal(t, session.StatusAnonymous, st.Status)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestStore_EventsAppliedInOrder(t *testing.T) {
	provider := newFakeProvider()
	profiles := newFakeProfiles(landlordProfile, tenantProfile)
	// The first fetch is slower than the second; order must still hold.
	profiles.delay["landlord-1"] = 40 * time.Millisecond
	rec := &recorder{}
	store := startStore(t, provider, profiles, session.WithTransitionHook(rec.hook))
	waitResolved(t, store)

	provider.emit(domain.AuthEvent{Type: domain.EventSignedIn, Session: sessionFor("landlord-1", "sam@example.com")})
	provider.emit(domain.AuthEvent{Type: domain.EventSignedOut})
	provider.emit(domain.AuthEvent{Type: domain.EventSignedIn, Session: sessionFor("tenant-1", "alice@example.com")})

	require.Eventually(t, func() bool { return len(rec.statuses()) == 5 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []session.Status{
		session.StatusLoading,
		session.StatusAnonymous,
		session.StatusAuthenticated,
		session.StatusAnonymous,
		session.StatusAuthenticated,
	}, rec.statuses())

	rec.mu.Lock()
	assert.Equal(t, "landlord-1", rec.states[2].Identity.ID)
	assert.Equal(t, "tenant-1", rec.states[4].Identity.ID)
	rec.mu.Unlock()
	assert.Equal(t, "tenant-1", store.CurrentIdentity().ID)
}

func TestStore_SignUpValidation(t *testing.T) {
	store := startStore(t, newFakeProvider(), newFakeProfiles())

	tests := []struct {
		name                      string
		email, password, fullName string
		role                      domain.Role
		field                     string
	}{
		{name: "empty email", password: "pw", fullName: "A", role: domain.RoleTenant, field: "email"},
		{name: "empty password", email: "a@b.c", fullName: "A", role: domain.RoleTenant, field: "password"},
		{name: "empty name", email: "a@b.c", password: "pw", fullName: "  ", role: domain.RoleTenant, field: "fullName"},
		{name: "bad role", email: "a@b.c", password: "pw", fullName: "A", role: "owner", field: "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SignUp(context.Background(), tt.email, tt.password, tt.fullName, tt.role)
			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestStore_SignUpDoesNotTransition(t *testing.T) {
	provider := newFakeProvider()
	store := startStore(t, provider, newFakeProfiles())
	waitResolved(t, store)

	require.NoError(t, store.SignUp(context.Background(), "new@example.com", "secret", "New Person", domain.RoleLandlord))
	assert.Equal(t, session.StatusAnonymous, store.State().Status)
	require.Len(t, provider.signUps, 1)
	assert.Equal(t, domain.RoleLandlord, provider.signUps[0].Role)
	assert.Equal(t, "New Person", provider.signUps[0].FullName)
}

func TestStore_SignInErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason apperrors.AuthReason
	}{
		{name: "bad credentials", err: apperrors.ErrUnauthorized, reason: apperrors.ReasonInvalidCredentials},
		{name: "transport", err: errors.New("dial tcp: refused"), reason: apperrors.ReasonNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			provider.signInErr = tt.err
			store := startStore(t, provider, newFakeProfiles())
			waitResolved(t, store)

			err := store.SignIn(context.Background(), "a@b.c", "pw")
			var authErr *apperrors.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.reason, authErr.Reason)
			assert.Equal(t, session.StatusAnonymous, store.State().Status)
		})
	}
}

func TestStore_SignOutFailsClosed(t *testing.T) {
	provider := newFakeProvider()
	provider.session = sessionFor("tenant-1", "alice@example.com")
	provider.signOutErr = errors.New("provider down")
	store := startStore(t, provider, newFakeProfiles(tenantProfile))
	require.Equal(t, session.StatusAuthenticated, waitResolved(t, store).Status)

	err := store.SignOut(context.Background())
	assert.Error(t, err)
	assert.Equal(t, session.StatusAnonymous, store.State().Status)
	assert.Nil(t, store.CurrentIdentity())
	assert.Equal(t, 1, provider.signOuts)
}

func TestStore_SwitchRole(t *testing.T) {
	provider := newFakeProvider()
	provider.session = sessionFor("tenant-1", "alice@example.com")
	profiles := newFakeProfiles(tenantProfile)
	store := startStore(t, provider, profiles, session.WithDemoRoleSwitch())
	before := waitResolved(t, store).Identity

	require.NoError(t, store.SwitchRole(context.Background(), domain.RoleLandlord))

	after := store.CurrentIdentity()
	require.NotNil(t, after)
	assert.Equal(t, domain.RoleLandlord, after.Role)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, []domain.Role{domain.RoleLandlord}, profiles.updated)
}

func TestStore_SwitchRoleGuards(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		provider := newFakeProvider()
		provider.session = sessionFor("tenant-1", "alice@example.com")
		store := startStore(t, provider, newFakeProfiles(tenantProfile))
		waitResolved(t, store)
		assert.ErrorIs(t, store.SwitchRole(context.Background(), domain.RoleLandlord), apperrors.ErrFeatureDisabled)
	})
	t.Run("anonymous", func(t *testing.T) {
		store := startStore(t, newFakeProvider(), newFakeProfiles(), session.WithDemoRoleSwitch())
		waitResolved(t, store)
		assert.ErrorIs(t, store.SwitchRole(context.Background(), domain.RoleLandlord), apperrors.ErrUnauthorized)
	})
	t.Run("invalid role", func(t *testing.T) {
		store := startStore(t, newFakeProvider(), newFakeProfiles(), session.WithDemoRoleSwitch())
		waitResolved(t, store)
		assert.ErrorIs(t, store.SwitchRole(context.Background(), "admin"), apperrors.ErrValidation)
	})
}

func TestStore_SubscribeDeliversLatest(t *testing.T) {
	provider := newFakeProvider()
	store := session.NewStore(provider, newFakeProfiles(tenantProfile))
	updates, cancel := store.Subscribe()
	defer cancel()

	first := <-updates
	assert.Equal(t, session.StatusUninitialized, first.Status)

	store.Start(context.Background())
	defer store.Close()
	waitResolved(t, store)

	require.Eventually(t, func() bool {
		select {
		case st := <-updates:
			return st.Status == session.StatusAnonymous
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestStore_CloseReleasesSubscription(t *testing.T) {
	provider := newFakeProvider()
	store := session.NewStore(provider, newFakeProfiles())
	store.Start(context.Background())
	waitResolved(t, store)
	updates, _ := store.Subscribe()

	store.Close()

	_, ok := <-provider.sub.ch
	assert.False(t, ok)
	for range updates {
	}
	assert.NoError(t, store.SignOut(context.Background()))
}
