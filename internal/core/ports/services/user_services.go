package services

import (
	"context"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/Harsha9951/travel_management_app/internal/dto"
)

// UserSvcFacade defines user account operations. Passwords never leave this
// layer unhashed; externally authenticated users carry no password at all.
type UserSvcFacade interface {
	// Register creates a new user with a bcrypt-hashed password. Returns
	// apperrors.ErrDuplicate if the email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email and password, returning the user on
	// success and apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// SwitchRole changes the user's acting role. This is a demo affordance
	// mirroring the role switcher in the UI; it validates the role but
	// applies no authorization beyond authentication.
	SwitchRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error)

	// FindOrCreateGoogleUser resolves an externally authenticated Google
	// identity to a local user, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateRefreshTokenDetails stores the hash and expiry of a rotated
	// refresh token.
	UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// ClearRefreshToken invalidates the stored refresh token on sign-out.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade handles JWT access tokens and opaque refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user, returning the
	// token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	// Only the hash is ever stored.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the user's stored hash and expiry, returning the user when valid.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}
