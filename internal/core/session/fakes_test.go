package session_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
)

type fakeSubscription struct {
	ch   chan domain.AuthEvent
	once sync.Once
}

func (s *fakeSubscription) Events() <-chan domain.AuthEvent { return s.ch }

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.ch) })
}

// fakeProvider stands in for the identity provider. Tests push events with emit.
type fakeProvider struct {
	mu         sync.Mutex
	session    *domain.AuthSession
	getErr     error
	signInErr  error
	signUpErr  error
	signOutErr error
	setErr     error
	rotated    *domain.AuthSession
	user       *domain.AuthUser
	userErr    error
	signUps    []domain.SignUpMetadata
	signOuts   int
	sub        *fakeSubscription
	subscribed chan struct{}
	unsubscribe int
}

var _ portssvc.IdentityProvider = (*fakeProvider)(nil)

func newFakeProvider() *fakeProvider {
	return &fakeProvider{subscribed: make(chan struct{})}
}

func (p *fakeProvider) GetSession(ctx context.Context) (*domain.AuthSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session, p.getErr
}

func (p *fakeProvider) SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signUps = append(p.signUps, meta)
	return p.signUpErr
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &domain.AuthSession{AccessToken: "a", User: domain.AuthUser{ID: "u", Email: creds.Email}}, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signOuts++
	return p.signOutErr
}

func (p *fakeProvider) SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error) {
	if p.setErr != nil {
		return nil, p.setErr
	}
	if p.rotated != nil {
		return p.rotated, nil
	}
	return &domain.AuthSession{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (p *fakeProvider) GetUser(ctx context.Context) (*domain.AuthUser, error) {
	return p.user, p.userErr
}

func (p *fakeProvider) OnAuthStateChange(ctx context.Context) portssvc.Subscription {
	p.sub = &fakeSubscription{ch: make(chan domain.AuthEvent, 16)}
	close(p.subscribed)
	return p.sub
}

func (p *fakeProvider) emit(ev domain.AuthEvent) {
	<-p.subscribed
	p.sub.ch <- ev
}

// fakeProfiles serves profile rows from a map. delay holds every fetch.
type fakeProfiles struct {
	mu       sync.Mutex
	rows     map[string]domain.Profile
	delay    map[string]time.Duration
	fetchErr error
	updated  []domain.Role
}

var _ portssvc.ProfileSvcFacade = (*fakeProfiles)(nil)

func newFakeProfiles(rows ...domain.Profile) *fakeProfiles {
	f := &fakeProfiles{rows: map[string]domain.Profile{}, delay: map[string]time.Duration{}}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeProfiles) FetchProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	d := f.delay[userID]
	f.mu.Unlock()
	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, apperrors.NewProfileFetchError(userID, ctx.Err())
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, apperrors.NewProfileFetchError(userID, f.fetchErr)
	}
	row, ok := f.rows[userID]
	if !ok {
		return nil, apperrors.NewProfileFetchError(userID, apperrors.ErrNotFound)
	}
	return &row, nil
}

func (f *fakeProfiles) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	row.Role = string(role)
	f.rows[userID] = row
	f.updated = append(f.updated, role)
	return nil
}

func sessionFor(id, email string) *domain.AuthSession {
	return &domain.AuthSession{AccessToken: "token-" + id, User: domain.AuthUser{ID: id, Email: email}}
}
