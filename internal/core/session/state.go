// Package session owns the authenticated identity of one client and decides
// which routes that client may render.
package session

import "github.com/SscSPs/rental_management_app/internal/core/domain"

// Status is the phase of the session state machine.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is an immutable snapshot. Identity is set only when Authenticated.
type State struct {
	Status   Status           `json:"status"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// Resolved reports whether session resolution has finished.
func (s State) Resolved() bool {
	return s.Status == StatusAuthenticated || s.Status == StatusAnonymous
}

func loading() State   { return State{Status: StatusLoading} }
func anonymous() State { return State{Status: StatusAnonymous} }

func authenticated(id domain.Identity) State {
	return State{Status: StatusAuthenticated, Identity: &id}
}
