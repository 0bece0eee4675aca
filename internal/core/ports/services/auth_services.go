package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleSignInSvc drives the Google authorization code flow up to a
// verified ID token. Turning that token into a session is the authority's job.
type GoogleSignInSvc interface {
	// NewState returns an unguessable value for the OAuth state parameter.
	NewState(ctx context.Context) (string, error)
	LoginURL(ctx context.Context, state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyIDToken checks signature and audience against the configured client.
	VerifyIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error)
}
