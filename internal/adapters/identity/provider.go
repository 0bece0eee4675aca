package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
)

const subscriberBuffer = 16

// LocalProvider is the client half of the identity backend. It holds one
// client's session and tells subscribers about every change, in order.
type LocalProvider struct {
	authority portssvc.IdentityAuthority
	logger    *slog.Logger

	mu      sync.Mutex
	session *domain.AuthSession

	// emitMu serialises broadcasts so every subscriber sees the same order.
	emitMu      sync.Mutex
	subscribers map[uint64]*subscription
	nextSub     uint64
}

var _ portssvc.IdentityProvider = (*LocalProvider)(nil)

func NewLocalProvider(authority portssvc.IdentityAuthority, logger *slog.Logger) *LocalProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalProvider{
		authority:   authority,
		logger:      logger,
		subscribers: make(map[uint64]*subscription),
	}
}

// Restore loads a previously stored token pair without notifying
// subscribers, the way a client reads its persisted session at startup.
func (p *LocalProvider) Restore(accessToken, refreshToken string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = &domain.AuthSession{AccessToken: accessToken, RefreshToken: refreshToken}
}

// GetSession validates the stored session, refreshing it when the access
// token has expired. An unusable session is discarded and nil returned.
func (p *LocalProvider) GetSession(ctx context.Context) (*domain.AuthSession, error) {
	current := p.current()
	if current == nil {
		return nil, nil
	}
	sess, err := p.authority.SetSession(ctx, current.AccessToken, current.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			p.logger.Info("Stored session is no longer valid", slog.String("error", err.Error()))
			p.setCurrent(nil)
			return nil, nil
		}
		return nil, err
	}
	p.setCurrent(sess)
	return copySession(sess), nil
}

// SignUp registers the account and signs it in. Subscribers receive SIGNED_IN.
func (p *LocalProvider) SignUp(ctx context.Context, creds domain.Credentials, meta domain.SignUpMetadata) error {
	if _, err := p.authority.SignUp(ctx, creds, meta); err != nil {
		return err
	}
	_, err := p.SignInWithPassword(ctx, creds)
	return err
}

func (p *LocalProvider) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	sess, err := p.authority.SignInWithPassword(ctx, creds)
	if err != nil {
		return nil, err
	}
	p.setCurrent(sess)
	p.emit(ctx, domain.AuthEvent{Type: domain.EventSignedIn, Session: copySession(sess)})
	return copySession(sess), nil
}

// SignOut drops the local session before revoking it, so a failed
// revocation still leaves this client signed out.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	prev := p.current()
	p.setCurrent(nil)
	p.emit(ctx, domain.AuthEvent{Type: domain.EventSignedOut})
	if prev == nil || prev.User.ID == "" {
		return nil
	}
	return p.authority.SignOut(ctx, prev.User.ID)
}

func (p *LocalProvider) SetSession(ctx context.Context, accessToken, refreshToken string) (*domain.AuthSession, error) {
	sess, err := p.authority.SetSession(ctx, accessToken, refreshToken)
	if err != nil {
		return nil, err
	}
	p.setCurrent(sess)
	p.emit(ctx, domain.AuthEvent{Type: domain.EventSignedIn, Session: copySession(sess)})
	return copySession(sess), nil
}

func (p *LocalProvider) GetUser(ctx context.Context) (*domain.AuthUser, error) {
	current := p.current()
	if current == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return p.authority.GetUser(ctx, current.AccessToken)
}

// Refresh rotates the session's tokens and notifies subscribers with
// TOKEN_REFRESHED.
func (p *LocalProvider) Refresh(ctx context.Context) error {
	current := p.current()
	if current == nil {
		return apperrors.ErrUnauthorized
	}
	sess, err := p.authority.SetSession(ctx, current.AccessToken, current.RefreshToken)
	if err != nil {
		return err
	}
	p.setCurrent(sess)
	p.emit(ctx, domain.AuthEvent{Type: domain.EventTokenRefreshed, Session: copySession(sess)})
	return nil
}

// OnAuthStateChange subscribes to session changes until ctx is done or
// Unsubscribe is called.
func (p *LocalProvider) OnAuthStateChange(ctx context.Context) portssvc.Subscription {
	sub := &subscription{
		events:   make(chan domain.AuthEvent, subscriberBuffer),
		done:     make(chan struct{}),
		provider: p,
	}
	p.emitMu.Lock()
	sub.id = p.nextSub
	p.nextSub++
	p.subscribers[sub.id] = sub
	p.emitMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			sub.Unsubscribe()
		case <-sub.done:
		}
	}()
	return sub
}

func (p *LocalProvider) emit(ctx context.Context, ev domain.AuthEvent) {
	p.emitMu.Lock()
	defer p.emitMu.Unlock()
	for _, sub := range p.subscribers {
		select {
		case sub.events <- ev:
		case <-sub.done:
		case <-ctx.Done():
			p.logger.Warn("Auth event not delivered", slog.String("event", string(ev.Type)), slog.String("error", ctx.Err().Error()))
			return
		}
	}
}

func (p *LocalProvider) current() *domain.AuthSession {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copySession(p.session)
}

func (p *LocalProvider) setCurrent(sess *domain.AuthSession) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = copySession(sess)
}

func copySession(sess *domain.AuthSession) *domain.AuthSession {
	if sess == nil {
		return nil
	}
	c := *sess
	return &c
}

type subscription struct {
	id       uint64
	events   chan domain.AuthEvent
	done     chan struct{}
	once     sync.Once
	provider *LocalProvider
}

func (s *subscription) Events() <-chan domain.AuthEvent { return s.events }

// Unsubscribe closes done first so a broadcast blocked on this subscriber
// gives up before the channel is closed.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.done)
		s.provider.emitMu.Lock()
		delete(s.provider.subscribers, s.id)
		close(s.events)
		s.provider.emitMu.Unlock()
	})
}
