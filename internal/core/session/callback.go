package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
)

// ParseCallbackFragment extracts the token pair from an OAuth redirect
// fragment. The leading "#" is optional.
func ParseCallbackFragment(fragment string) (access, refresh string, ok bool) {
	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return "", "", false
	}
	access = values.Get("access_token")
	refresh = values.Get("refresh_token")
	if access == "" || refresh == "" {
		return "", "", false
	}
	return access, refresh, true
}

// CallbackExchanger turns an auth redirect into an established session and
// the route to land on.
type CallbackExchanger struct {
	provider portssvc.IdentityProvider
	profiles portssvc.ProfileSvcFacade
	logger   *slog.Logger
}

func NewCallbackExchanger(provider portssvc.IdentityProvider, profiles portssvc.ProfileSvcFacade, logger *slog.Logger) *CallbackExchanger {
	if logger == nil {
		logger = slog.Default()
	}
	return &CallbackExchanger{provider: provider, profiles: profiles, logger: logger}
}

// SessionFragment encodes a token pair the way auth redirects carry it.
func SessionFragment(sess *domain.AuthSession) string {
	return url.Values{
		"access_token":  {sess.AccessToken},
		"refresh_token": {sess.RefreshToken},
	}.Encode()
}

// LoginWithError is the login route carrying a failure reason.
func LoginWithError(reason apperrors.AuthReason) string {
	return domain.LoginRoute + "?error=" + url.QueryEscape(string(reason))
}

// Exchange always yields a location. err is non-nil whenever the location
// is a login route. When establishing the session rotated the token pair,
// the new pair rides along as the location's fragment; the old one is
// revoked.
func (c *CallbackExchanger) Exchange(ctx context.Context, fragment string) (location string, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Auth callback panicked", slog.Any("panic", r))
			location = LoginWithError(apperrors.ReasonCallbackFailed)
			err = apperrors.NewAuthError(apperrors.ReasonCallbackFailed, fmt.Errorf("panic: %v", r))
		}
	}()

	access, refresh, ok := ParseCallbackFragment(fragment)
	if !ok {
		return domain.LoginRoute, apperrors.NewAuthError(apperrors.ReasonMalformedCallback, nil)
	}

	sess, err := c.provider.SetSession(ctx, access, refresh)
	if err != nil {
		c.logger.Warn("Callback session could not be established", slog.String("error", err.Error()))
		return LoginWithError(apperrors.ReasonSessionFailed), apperrors.NewAuthError(apperrors.ReasonSessionFailed, err)
	}

	user, err := c.provider.GetUser(ctx)
	if err != nil || user == nil {
		c.logger.Warn("Callback user lookup failed", slog.Any("error", err))
		return LoginWithError(apperrors.ReasonUserNotFound), apperrors.NewAuthError(apperrors.ReasonUserNotFound, err)
	}

	profile, err := c.profiles.FetchProfile(ctx, user.ID)
	if err != nil {
		c.logger.Warn("Callback profile lookup failed", slog.String("user_id", user.ID), slog.String("error", err.Error()))
		return LoginWithError(apperrors.ReasonProfileNotFound), apperrors.NewAuthError(apperrors.ReasonProfileNotFound, err)
	}

	role, err := ResolveRole(profile)
	if err != nil {
		c.logger.Warn("Callback profile has no usable role", slog.String("user_id", user.ID), slog.String("error", err.Error()))
		return LoginWithError(apperrors.ReasonCallbackFailed), apperrors.NewAuthError(apperrors.ReasonCallbackFailed, err)
	}
	location = role.HomeRoute()
	if sess != nil && (sess.AccessToken != access || sess.RefreshToken != refresh) {
		location += "#" + SessionFragment(sess)
	}
	return location, nil
}
