package repositories

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// TripRepository defines storage operations for per-user trip registries.
type TripRepository interface {
	// SaveTrip appends a trip to the owner's registry.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// FindTripByID retrieves a single trip from the owner's registry.
	// Returns apperrors.ErrNotFound if absent.
	FindTripByID(ctx context.Context, ownerID string, tripID string) (*domain.Trip, error)

	// ListTripsByOwner returns the owner's trips in insertion order.
	ListTripsByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error)

	// UpdateTrip overwrites an existing trip record.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip. Returns apperrors.ErrNotFound if absent.
	DeleteTrip(ctx context.Context, ownerID string, tripID string) error

	// ReplaceTrips swaps the owner's entire registry, used when re-seeding.
	ReplaceTrips(ctx context.Context, ownerID string, trips []domain.Trip) error
}
