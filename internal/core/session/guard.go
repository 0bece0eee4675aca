package session

import (
	"fmt"
	"strings"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// DecisionKind is the outcome of a route check.
type DecisionKind int

const (
	// Placeholder means resolution is still running; render a loading view.
	Placeholder DecisionKind = iota
	Redirect
	Permit
	NotFound
)

func (k DecisionKind) String() string {
	switch k {
	case Placeholder:
		return "placeholder"
	case Redirect:
		return "redirect"
	case Permit:
		return "permit"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

func (k DecisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DecisionKind) UnmarshalText(text []byte) error {
	for _, candidate := range []DecisionKind{Placeholder, Redirect, Permit, NotFound} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown decision kind %q", text)
}

// Decision tells the caller what to render for a path. Location is set
// only for Redirect.
type Decision struct {
	Kind     DecisionKind `json:"kind"`
	Location string       `json:"location,omitempty"`
}

const CallbackRoute = "/auth/callback"

func placeholder() Decision { return Decision{Kind: Placeholder} }
func permit() Decision { return Decision{Kind: Permit} }
func notFound() Decision { return Decision{Kind: NotFound} }
func redirectTo(loc string) Decision { return Decision{Kind: Redirect, Location: loc} }

// Decide checks path against the state. Either role may enter either
// subtree; see DecideScoped for the stricter form.
func Decide(st State, path string) Decision {
	if !st.Resolved() {
		return placeholder()
	}
	p := normalizePath(path)
	if isPublic(p) {
		return permit()
	}
	if p != "/" && subtreeRole(p) == "" {
		return notFound()
	}
	if st.Status != StatusAuthenticated || st.Identity == nil {
		return redirectTo(domain.LoginRoute)
	}
	if p == "/" {
		return redirectTo(st.Identity.Role.HomeRoute())
	}
	return permit()
}

// DecideScoped is Decide plus subtree scoping: a user entering the other
// role's subtree is sent to their own home.
func DecideScoped(st State, path string) Decision {
	d := Decide(st, path)
	if d.Kind != Permit || st.Identity == nil {
		return d
	}
	owner := subtreeRole(normalizePath(path))
	if owner != "" && owner != st.Identity.Role {
		return redirectTo(st.Identity.Role.HomeRoute())
	}
	return d
}

func isPublic(p string) bool {
	return p == domain.LoginRoute || p == CallbackRoute
}

// subtreeRole returns the role whose subtree contains p, or "".
func subtreeRole(p string) domain.Role {
	switch {
	case underRoot(p, domain.LandlordHome):
		return domain.RoleLandlord
	case underRoot(p, domain.TenantHome):
		return domain.RoleTenant
	}
	return ""
}

func underRoot(p, root string) bool {
	return p == root || strings.HasPrefix(p, root+"/")
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
