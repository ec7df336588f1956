package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/utils"
	"github.com/google/uuid"
)

// Auth provider identifiers stored on the user record.
const (
	authProviderLocal  = "local"
	authProviderGoogle = "google"
)

// UserService implements user account operations. Every new account starts
// as an employee; the role switcher is a demo affordance, not an admin tool.
type UserService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleEmployee,
		Department:   req.Department,
		PasswordHash: hash,
		AuthProvider: authProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.LogInfo(ctx, "user registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Authenticate verifies email and password. Failures collapse to
// ErrUnauthorized so the response never reveals whether the email exists.
func (s *UserService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// GetUserByID retrieves a user by their unique identifier.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SwitchRole changes the user's acting role. Only authentication is
// required; any user may try on any role.
func (s *UserService) SwitchRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	s.LogInfo(ctx, "user switched role", slog.String("user_id", userID), slog.String("role", string(role)))
	return user, nil
}

// FindOrCreateGoogleUser resolves an externally authenticated Google
// identity to a local user, creating one on first sign-in. Google users
// carry no password hash.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	created := domain.User{
		UserID:       uuid.NewString(),
		Name:         info.Name,
		Email:        info.Email,
		Role:         domain.RoleEmployee,
		AuthProvider: authProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	s.LogInfo(ctx, "google user created", slog.String("user_id", created.UserID))
	return &created, nil
}

// UpdateRefreshTokenDetails stores the hash and expiry of a rotated refresh
// token.
func (s *UserService) UpdateRefreshTokenDetails(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiry, time.Now()); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken invalidates the stored refresh token on sign-out.
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now()); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
