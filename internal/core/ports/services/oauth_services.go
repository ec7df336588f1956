package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// GoogleOAuthHandlerSvcFacade wraps the external Google OAuth provider.
// Any provider exposing this capability surface is substitutable; the rest
// of the application only ever sees domain.GoogleUserInfo.
type GoogleOAuthHandlerSvcFacade interface {
	// Enabled reports whether OAuth credentials are configured. Disabled
	// OAuth is a supported degraded state, not an error.
	Enabled() bool

	// GenerateStateString creates a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the provider URL to redirect the user to.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token's signature and audience
	// and extracts the user info the application needs.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}
