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
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// seedTrips returns the demo trips a fresh registry starts from.
func seedTrips(ownerID string, now time.Time) []domain.Trip {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     ownerID,
		LastUpdatedAt: now,
		LastUpdatedBy: ownerID,
	}
	return []domain.Trip{
		{
			TripID:      utils.NextTimeOrderedID(),
			OwnerID:     ownerID,
			Destination: "Mumbai → Delhi",
			Purpose:     "Client meeting",
			Cost:        decimal.NewFromInt(8500),
			Date:        time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			Type:        domain.TripFlight,
			Status:      domain.TripBooked,
			Lat:         28.6139,
			Lng:         77.2090,
			AuditFields: audit,
		},
		{
			TripID:      utils.NextTimeOrderedID(),
			OwnerID:     ownerID,
			Destination: "Delhi Business Hotel",
			Purpose:     "Accommodation",
			Cost:        decimal.NewFromInt(6000),
			Date:        time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			Type:        domain.TripHotel,
			Status:      domain.TripBooked,
			Lat:         28.6304,
			Lng:         77.2177,
			AuditFields: audit,
		},
		{
			TripID:      utils.NextTimeOrderedID(),
			OwnerID:     ownerID,
			Destination: "Bangalore → Chennai",
			Purpose:     "Tech conference",
			Cost:        decimal.NewFromInt(12000),
			Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Type:        domain.TripFlight,
			Status:      domain.TripPlanned,
			Lat:         13.0827,
			Lng:         80.2707,
			AuditFields: audit,
		},
	}
}

// TripService implements the trip registry operations. Registries are seeded
// lazily per owner; summaries borrow the owner's budget total.
type TripService struct {
	BaseService
	tripRepo  portsrepo.TripRepository
	budgetSvc portssvc.BudgetSvcFacade
}

func NewTripService(tripRepo portsrepo.TripRepository, budgetSvc portssvc.BudgetSvcFacade) *TripService {
	return &TripService{tripRepo: tripRepo, budgetSvc: budgetSvc}
}

func (s *TripService) ensureSeeded(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTripsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	if len(trips) > 0 {
		return trips, nil
	}
	seeded := seedTrips(ownerID, time.Now())
	if err := s.tripRepo.ReplaceTrips(ctx, ownerID, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed trips: %w", err)
	}
	s.LogDebug(ctx, "seeded trip registry", slog.String("owner_id", ownerID))
	return seeded, nil
}

// ListTrips returns the owner's trips in insertion order, seeding the
// registry with demo trips on first access.
func (s *TripService) ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	return s.ensureSeeded(ctx, ownerID)
}

// Summarize aggregates the registry against the owner's budget total.
func (s *TripService) Summarize(ctx context.Context, ownerID string) (*domain.TripSummary, error) {
	trips, err := s.ensureSeeded(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgetSvc.GetBudget(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(trips, budget.Total)
	return &summary, nil
}

// CreateTrip appends a new trip with a fresh time-ordered ID.
func (s *TripService) CreateTrip(ctx context.Context, ownerID string, req dto.CreateTripRequest) (*domain.Trip, error) {
	if req.Destination == "" {
		return nil, fmt.Errorf("destination is required: %w", apperrors.ErrValidation)
	}
	if !req.Cost.IsPositive() {
		return nil, fmt.Errorf("cost must be positive: %w", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown trip type %q: %w", req.Type, apperrors.ErrValidation)
	}
	date, err := req.ParseDate()
	if err != nil {
		return nil, fmt.Errorf("invalid trip date %q: %w", req.Date, apperrors.ErrValidation)
	}

	// Make sure a fresh registry gets its seeds before the first insert,
	// otherwise the new trip would suppress seeding and show up alone.
	if _, err := s.ensureSeeded(ctx, ownerID); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:      utils.NextTimeOrderedID(),
		OwnerID:     ownerID,
		Destination: req.Destination,
		Purpose:     req.Purpose,
		Cost:        req.Cost,
		Date:        date,
		Type:        req.Type,
		Status:      domain.TripPlanned,
		Lat:         req.Lat,
		Lng:         req.Lng,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}
	return &trip, nil
}

// DeleteTrip removes a trip. Deleting an absent trip is a no-op so the
// operation stays idempotent for double-clicking users.
func (s *TripService) DeleteTrip(ctx context.Context, ownerID string, tripID string) error {
	err := s.tripRepo.DeleteTrip(ctx, ownerID, tripID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "delete of absent trip ignored", slog.String("trip_id", tripID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// UpdateTripStatus overwrites the trip's status. Any status is reachable
// from any status.
func (s *TripService) UpdateTripStatus(ctx context.Context, ownerID string, tripID string, status domain.TripStatus) (*domain.Trip, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown trip status %q: %w", status, apperrors.ErrValidation)
	}
	trip, err := s.tripRepo.FindTripByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}
	trip.Status = status
	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = ownerID
	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return trip, nil
}

// RenameTrip replaces the trip's destination title. An empty title is a
// no-op returning the trip unchanged.
func (s *TripService) RenameTrip(ctx context.Context, ownerID string, tripID string, destination string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}
	if destination == "" {
		return trip, nil
	}
	trip.Destination = destination
	trip.LastUpdatedAt = time.Now()
	trip.LastUpdatedBy = ownerID
	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return trip, nil
}

// ResetTrips discards the registry and restores the demo seed trips.
func (s *TripService) ResetTrips(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	seeded := seedTrips(ownerID, time.Now())
	if err := s.tripRepo.ReplaceTrips(ctx, ownerID, seeded); err != nil {
		return nil, fmt.Errorf("failed to reset trips: %w", err)
	}
	return seeded, nil
}
