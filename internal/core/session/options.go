package session

import (
	"log/slog"
	"time"
)

// DefaultFetchTimeout bounds the profile fetch that follows every session event.
const DefaultFetchTimeout = 10 * time.Second

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFetchTimeout bounds each profile fetch. A fetch that does not finish in
// time resolves the session as anonymous.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithDemoRoleSwitch enables SwitchRole. Demo and test builds only.
func WithDemoRoleSwitch() Option {
	return func(s *Store) { s.allowRoleSwitch = true }
}

// WithTransitionHook registers fn to run after every state transition.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(s *Store) {
		if fn != nil {
			s.hooks = append(s.hooks, fn)
		}
	}
}
