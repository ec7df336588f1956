package repositories

import (
	"context"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if a user
	// with the same email already exists.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser overwrites an existing user's record.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of a freshly rotated
	// refresh token. Empty hash and nil expiry clear the stored token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time, now time.Time) error
}
