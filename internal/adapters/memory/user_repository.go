package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
)

// UserRepository is an in-memory implementation of the user repository.
// The application owns no durable store; users live for the process lifetime.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // normalized email -> userID
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SaveUser persists a new user, rejecting duplicate emails.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return apperrors.ErrDuplicate
	}
	r.byID[user.UserID] = user
	r.byEmail[email] = user.UserID
	return nil
}

// FindUserByID retrieves a user by ID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// FindUserByEmail retrieves a user by email address.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := r.byID[userID]
	return &user, nil
}

// UpdateUser overwrites an existing user's record.
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if normalizeEmail(existing.Email) != normalizeEmail(user.Email) {
		delete(r.byEmail, normalizeEmail(existing.Email))
		r.byEmail[normalizeEmail(user.Email)] = user.UserID
	}
	r.byID[user.UserID] = user
	return nil
}

// UpdateRefreshToken stores (or clears) the user's refresh token hash.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.RefreshTokenHash = tokenHash
	user.RefreshTokenExpiryTime = expiry
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID
	r.byID[userID] = user
	return nil
}
