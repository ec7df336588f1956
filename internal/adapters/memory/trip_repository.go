package memory

import (
	"context"
	"sync"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
)

// TripRepository is an in-memory implementation of the trip repository.
// Trips are kept per owner in insertion order.
type TripRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]domain.Trip
}

// NewTripRepository creates an empty in-memory trip repository.
func NewTripRepository() *TripRepository {
	return &TripRepository{byOwner: make(map[string][]domain.Trip)}
}

var _ portsrepo.TripRepository = (*TripRepository)(nil)

// SaveTrip appends a trip to the owner's registry.
func (r *TripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[trip.OwnerID] = append(r.byOwner[trip.OwnerID], trip)
	return nil
}

// FindTripByID retrieves a single trip from the owner's registry.
func (r *TripRepository) FindTripByID(ctx context.Context, ownerID string, tripID string) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, trip := range r.byOwner[ownerID] {
		if trip.TripID == tripID {
			t := trip
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTripsByOwner returns the owner's trips in insertion order.
func (r *TripRepository) ListTripsByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := r.byOwner[ownerID]
	out := make([]domain.Trip, len(trips))
	copy(out, trips)
	return out, nil
}

// UpdateTrip overwrites an existing trip record in place.
func (r *TripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips := r.byOwner[trip.OwnerID]
	for i := range trips {
		if trips[i].TripID == trip.TripID {
			trips[i] = trip
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// DeleteTrip removes a trip from the owner's registry.
func (r *TripRepository) DeleteTrip(ctx context.Context, ownerID string, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips := r.byOwner[ownerID]
	for i := range trips {
		if trips[i].TripID == tripID {
			r.byOwner[ownerID] = append(trips[:i:i], trips[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// ReplaceTrips swaps the owner's entire registry.
func (r *TripRepository) ReplaceTrips(ctx context.Context, ownerID string, trips []domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]domain.Trip, len(trips))
	copy(replacement, trips)
	r.byOwner[ownerID] = replacement
	return nil
}
