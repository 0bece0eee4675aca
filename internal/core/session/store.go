package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/SscSPs/rental_management_app/internal/core/session")

// ErrNotRunning is returned by operations that need a started store.
var ErrNotRunning = errors.New("session store is not running")

type command struct {
	apply func(State) State
	reply chan struct{}
}

// Store holds the identity of one client. A single goroutine applies every
// transition: the startup restore, provider events in emission order, and
// role switches. Each event's profile fetch finishes before the next
// transition is applied.
type Store struct {
	provider portssvc.IdentityProvider
	profiles portssvc.ProfileSvcFacade

	logger          *slog.Logger
	fetchTimeout    time.Duration
	allowRoleSwitch bool
	hooks           []func(from, to State)

	mu          sync.RWMutex
	state       State
	watchers    map[uint64]chan State
	nextWatcher uint64

	commands     chan command
	resolved     chan struct{}
	resolvedOnce sync.Once

	sub       portssvc.Subscription
	cancel    context.CancelFunc
	done      chan struct{}
	started   bool
	startOnce sync.Once
	closeOnce sync.Once
}

// NewStore creates an uninitialized store. Call Start to begin resolution.
func NewStore(provider portssvc.IdentityProvider, profiles portssvc.ProfileSvcFacade, opts ...Option) *Store {
	s := &Store{
		provider:     provider,
		profiles:     profiles,
		logger:       slog.Default(),
		fetchTimeout: DefaultFetchTimeout,
		state:        State{Status: StatusUninitialized},
		watchers:     make(map[uint64]chan State),
		commands:     make(chan command),
		resolved:     make(chan struct{}),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to provider events and restores any stored session.
// The subscription lives until Close or until ctx is cancelled.
func (s *Store) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		runCtx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		s.transition(loading())
		// Subscribe before the restore so no event emitted meanwhile is lost.
		s.sub = s.provider.OnAuthStateChange(runCtx)
		s.mu.Lock()
		s.started = true
		s.mu.Unlock()
		go s.run(runCtx)
	})
}

// Close releases the provider subscription and stops the store. Watcher
// channels are closed.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.mu.RLock()
		started := s.started
		s.mu.RUnlock()
		if started {
			s.cancel()
			s.sub.Unsubscribe()
			<-s.done
		}
		s.mu.Lock()
		for id, ch := range s.watchers {
			close(ch)
			delete(s.watchers, id)
		}
		s.mu.Unlock()
	})
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	s.restore(ctx)

	events := s.sub.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			s.handleEvent(ctx, ev)
		case cmd := <-s.commands:
			s.transition(cmd.apply(s.State()))
			close(cmd.reply)
		}
	}
}

func (s *Store) restore(ctx context.Context) {
	sess, err := s.provider.GetSession(ctx)
	if err != nil {
		s.logger.Warn("Session restore failed", slog.String("error", err.Error()))
		s.transition(anonymous())
		return
	}
	if sess == nil {
		s.transition(anonymous())
		return
	}
	s.transition(s.resolve(ctx, sess))
}

func (s *Store) handleEvent(ctx context.Context, ev domain.AuthEvent) {
	s.logger.Debug("Auth state change", slog.String("event", string(ev.Type)))
	if ev.Type == domain.EventSignedOut || ev.Session == nil {
		s.transition(anonymous())
		return
	}
	s.transition(s.resolve(ctx, ev.Session))
}

type fetchResult struct {
	profile *domain.Profile
	err     error
}

// resolve fetches the profile behind sess. Any failure, including a fetch
// that outlives the timeout, resolves to Anonymous and is not retried.
func (s *Store) resolve(ctx context.Context, sess *domain.AuthSession) State {
	ctx, span := tracer.Start(ctx, "session.resolve")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", sess.User.ID))

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	results := make(chan fetchResult, 1)
	go func() {
		p, err := s.profiles.FetchProfile(fetchCtx, sess.User.ID)
		results <- fetchResult{profile: p, err: err}
	}()

	var res fetchResult
	select {
	case res = <-results:
	case <-fetchCtx.Done():
		res.err = apperrors.NewProfileFetchError(sess.User.ID, fmt.Errorf("profile fetch timed out: %w", fetchCtx.Err()))
	}

	if res.err != nil {
		span.RecordError(res.err)
		span.SetStatus(codes.Error, "profile fetch failed")
		s.logger.Warn("Profile fetch failed, treating session as signed out",
			slog.String("user_id", sess.User.ID), slog.String("error", res.err.Error()))
		return anonymous()
	}

	id, err := IdentityFromProfile(res.profile, sess.User)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "role resolution failed")
		s.logger.Warn("Profile role could not be resolved",
			slog.String("user_id", sess.User.ID), slog.String("error", err.Error()))
		return anonymous()
	}
	return authenticated(*id)
}

// transition is the only writer of the store's state.
func (s *Store) transition(next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	for _, ch := range s.watchers {
		publish(ch, next)
	}
	s.mu.Unlock()

	if next.Resolved() {
		s.resolvedOnce.Do(func() { close(s.resolved) })
	}
	if prev.Status != next.Status {
		s.logger.Debug("Session state changed",
			slog.String("from", prev.Status.String()), slog.String("to", next.Status.String()))
	}
	for _, h := range s.hooks {
		h(prev, next)
	}
}

// publish keeps only the newest state in a watcher's one-slot buffer.
func publish(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}

// submit runs apply on the consumer goroutine and waits until it has been applied.
func (s *Store) submit(ctx context.Context, apply func(State) State) error {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return ErrNotRunning
	}
	cmd := command{apply: apply, reply: make(chan struct{})}
	select {
	case s.commands <- cmd:
	case <-s.done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cmd.reply:
		return nil
	case <-s.done:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentIdentity returns a copy of the resolved identity, or nil.
func (s *Store) CurrentIdentity() *domain.Identity {
	st := s.State()
	if st.Identity == nil {
		return nil
	}
	id := *st.Identity
	return &id
}

func (s *Store) IsLoading() bool {
	return s.State().Status == StatusLoading
}

func (s *Store) IsAuthenticated() bool {
	return s.State().Status == StatusAuthenticated
}

// Subscribe returns a channel that always holds the newest state, starting
// with the current one. Call cancel to stop watching.
func (s *Store) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)
	s.mu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = ch
	ch <- s.state
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			if _, ok := s.watchers[id]; ok {
				delete(s.watchers, id)
				close(ch)
			}
			s.mu.Unlock()
		})
	}
}

// WaitResolved blocks until the store first leaves Loading.
func (s *Store) WaitResolved(ctx context.Context) (State, error) {
	select {
	case <-s.resolved:
		return s.State(), nil
	case <-ctx.Done():
		return s.State(), ctx.Err()
	}
}

// SignUp registers a new account. The store does not transition here; the
// provider's SIGNED_IN event drives it.
func (s *Store) SignUp(ctx context.Context, email, password, fullName string, role domain.Role) error {
	switch {
	case strings.TrimSpace(email) == "":
		return apperrors.NewValidationError("email", "is required")
	case password == "":
		return apperrors.NewValidationError("password", "is required")
	case strings.TrimSpace(fullName) == "":
		return apperrors.NewValidationError("fullName", "is required")
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	err := s.provider.SignUp(ctx,
		domain.Credentials{Email: strings.TrimSpace(email), Password: password},
		domain.SignUpMetadata{FullName: strings.TrimSpace(fullName), Role: role})
	if err != nil {
		return toAuthError(err)
	}
	return nil
}

// SignIn authenticates with a password. The store does not transition here.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email", "is required")
	}
	if password == "" {
		return apperrors.NewValidationError("password", "is required")
	}
	if _, err := s.provider.SignInWithPassword(ctx, domain.Credentials{Email: strings.TrimSpace(email), Password: password}); err != nil {
		return toAuthError(err)
	}
	return nil
}

// SignOut ends the session. The store becomes Anonymous even when the
// provider call fails.
func (s *Store) SignOut(ctx context.Context) error {
	providerErr := s.provider.SignOut(ctx)
	if providerErr != nil {
		s.logger.Warn("Provider sign-out failed", slog.String("error", providerErr.Error()))
	}
	if err := s.submit(ctx, func(State) State { return anonymous() }); err != nil && !errors.Is(err, ErrNotRunning) {
		return err
	}
	if providerErr != nil {
		return toAuthError(providerErr)
	}
	return nil
}

// SwitchRole persists a new role for the current user and swaps it into the
// identity, keeping id and email. Only enabled by WithDemoRoleSwitch.
func (s *Store) SwitchRole(ctx context.Context, role domain.Role) error {
	if !s.allowRoleSwitch {
		return apperrors.ErrFeatureDisabled
	}
	parsed, ok := domain.ParseRole(string(role))
	if !ok {
		return apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	current := s.CurrentIdentity()
	if current == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.profiles.UpdateRole(ctx, current.ID, parsed); err != nil {
		return fmt.Errorf("failed to switch role: %w", err)
	}
	return s.submit(ctx, func(st State) State {
		if st.Status != StatusAuthenticated || st.Identity == nil || st.Identity.ID != current.ID {
			return st
		}
		next := *st.Identity
		next.Role = parsed
		return authenticated(next)
	})
}

func toAuthError(err error) error {
	var authErr *apperrors.AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.NewAuthError(apperrors.ReasonInvalidCredentials, err)
	}
	return apperrors.NewAuthError(apperrors.ReasonNetwork, err)
}
