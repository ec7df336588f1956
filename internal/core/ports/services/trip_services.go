package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/Harsha9951/travel_management_app/internal/dto"
)

// TripReaderSvc defines read operations on a user's trip registry.
type TripReaderSvc interface {
	// ListTrips returns the owner's trips in insertion order, seeding the
	// registry with demo trips if absent.
	ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error)

	// Summarize aggregates the registry's cost against the owner's budget
	// total (spent recomputed from trips, remaining clamped to zero).
	Summarize(ctx context.Context, ownerID string) (*domain.TripSummary, error)
}

// TripWriterSvc defines write operations on a user's trip registry.
type TripWriterSvc interface {
	// CreateTrip appends a new trip with a fresh time-ordered ID. Empty
	// destination or non-positive cost is rejected with ErrValidation.
	CreateTrip(ctx context.Context, ownerID string, req dto.CreateTripRequest) (*domain.Trip, error)

	// DeleteTrip removes a trip. Deleting an absent trip is a no-op.
	DeleteTrip(ctx context.Context, ownerID string, tripID string) error

	// UpdateTripStatus overwrites the trip's status. Any status is reachable
	// from any status; there is no transition-legality check.
	UpdateTripStatus(ctx context.Context, ownerID string, tripID string, status domain.TripStatus) (*domain.Trip, error)

	// RenameTrip replaces the trip's destination title. An empty title is a
	// no-op returning the trip unchanged.
	RenameTrip(ctx context.Context, ownerID string, tripID string, destination string) (*domain.Trip, error)

	// ResetTrips discards the registry and restores the demo seed trips.
	ResetTrips(ctx context.Context, ownerID string) ([]domain.Trip, error)
}

// TripSvcFacade combines all trip registry operations.
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
}
