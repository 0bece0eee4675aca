package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/session"
)

const (
	defaultResolveTimeout = 10 * time.Second
	identityCacheSize     = 1024
	defaultIdentityTTL    = 15 * time.Second
)

// sessionResolver resolves bearer tokens the same way the session store
// resolves sessions: token to user to profile, failing closed.
// Concurrent resolutions of one token share a single lookup.
type sessionResolver struct {
	BaseService
	authority portssvc.IdentityAuthority
	profiles  portssvc.ProfileSvcFacade
	timeout   time.Duration
	group     singleflight.Group
	cache     *expirable.LRU[string, domain.Identity]

	// generations is bumped per user by Forget. A lookup only caches its
	// result when the generation it started under is still current.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewSessionResolver caches resolved identities for cacheTTL. A zero TTL
// uses the default and a negative one disables the cache.
func NewSessionResolver(authority portssvc.IdentityAuthority, profiles portssvc.ProfileSvcFacade, timeout, cacheTTL time.Duration, opts ...Option) portssvc.SessionResolverSvc {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	r := &sessionResolver{
		BaseService: newBaseService(opts),
		authority:   authority,
		profiles:    profiles,
		timeout:     timeout,
		generations: make(map[string]uint64),
	}
	if cacheTTL == 0 {
		cacheTTL = defaultIdentityTTL
	}
	if cacheTTL > 0 {
		r.cache = expirable.NewLRU[string, domain.Identity](identityCacheSize, nil, cacheTTL)
	}
	return r
}

var _ portssvc.SessionResolverSvc = (*sessionResolver)(nil)

func (r *sessionResolver) ResolveIdentity(ctx context.Context, accessToken string) (*domain.Identity, error) {
	if accessToken == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if r.cache != nil {
		if id, ok := r.cache.Get(accessToken); ok {
			return &id, nil
		}
	}

	ch := r.group.DoChan(accessToken, func() (any, error) {
		// Detached from any single caller so that one cancelled request
		// does not fail the others sharing the lookup.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		return r.resolve(rctx, accessToken)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		id := res.Val.(domain.Identity)
		return &id, nil
	}
}

func (r *sessionResolver) resolve(ctx context.Context, accessToken string) (domain.Identity, error) {
	ctx, span := tracer.Start(ctx, "SessionResolver.Resolve")
	defer span.End()

	user, err := r.authority.GetUser(ctx, accessToken)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return domain.Identity{}, err
		}
		r.LogError(ctx, err, "Failed to look up session user")
		return domain.Identity{}, apperrors.NewAuthError(apperrors.ReasonNetwork, err)
	}
	span.SetAttributes(attribute.String("user.id", user.ID))
	gen := r.generation(user.ID)

	profile, err := r.profiles.FetchProfile(ctx, user.ID)
	if err != nil {
		span.RecordError(err)
		return domain.Identity{}, err
	}
	id, err := session.IdentityFromProfile(profile, *user)
	if err != nil {
		r.LogError(ctx, err, "Profile has no usable role", slog.String("user_id", user.ID))
		return domain.Identity{}, apperrors.NewAuthError(apperrors.ReasonProfileNotFound, err)
	}

	r.store(accessToken, *id, gen)
	return *id, nil
}

func (r *sessionResolver) generation(userID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[userID]
}

// store caches id unless Forget ran for its user since gen was read.
func (r *sessionResolver) store(accessToken string, id domain.Identity, gen uint64) {
	if r.cache == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generations[id.ID] != gen {
		return
	}
	r.cache.Add(accessToken, id)
}

// Forget evicts every cached identity of userID. Lookups already in flight
// for the user are not cached when they finish.
func (r *sessionResolver) Forget(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations[userID]++
	if r.cache == nil {
		return
	}
	for _, token := range r.cache.Keys() {
		if id, ok := r.cache.Peek(token); ok && id.ID == userID {
			r.cache.Remove(token)
		}
	}
}
