package services_test

import (
	"context"
	"testing"

	"github.com/Harsha9951/travel_management_app/internal/adapters/memory"
	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/Harsha9951/travel_management_app/internal/core/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripService() *services.TripService {
	budgetSvc := services.NewBudgetService(memory.NewBudgetRepository())
	return services.NewTripService(memory.NewTripRepository(), budgetSvc)
}

func TestTripService_ListSeedsDemoTrips(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	trips, err := svc.ListTrips(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, trips, 3)

	assert.Equal(t, "Mumbai → Delhi", trips[0].Destination)
	assert.Equal(t, domain.TripBooked, trips[0].Status)
	assert.Equal(t, "Bangalore → Chennai", trips[2].Destination)
	assert.Equal(t, domain.TripPlanned, trips[2].Status)
	assert.True(t, domain.TotalCost(trips).Equal(decimal.NewFromInt(26500)))
	assert.True(t, domain.BookedCost(trips).Equal(decimal.NewFromInt(14500)))
}

func TestTripService_CreateListDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	created, err := svc.CreateTrip(ctx, ownerID, dto.CreateTripRequest{
		Destination: "Pune → Goa",
		Purpose:     "Offsite",
		Cost:        decimal.NewFromInt(4500),
		Date:        "2024-04-12",
		Type:        domain.TripCar,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TripPlanned, created.Status, "new trips start planned")

	trips, err := svc.ListTrips(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, trips, 4, "seeds plus the created trip")
	assert.Equal(t, created.TripID, trips[3].TripID, "insertion order preserved")

	require.NoError(t, svc.DeleteTrip(ctx, ownerID, created.TripID))

	trips, err = svc.ListTrips(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, trips, 3)
}

func TestTripService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	tests := []struct {
		name string
		req  dto.CreateTripRequest
	}{
		{
			name: "empty destination",
			req:  dto.CreateTripRequest{Cost: decimal.NewFromInt(100), Date: "2024-04-12", Type: domain.TripCar},
		},
		{
			name: "non-positive cost",
			req:  dto.CreateTripRequest{Destination: "Pune", Cost: decimal.Zero, Date: "2024-04-12", Type: domain.TripCar},
		},
		{
			name: "unknown type",
			req:  dto.CreateTripRequest{Destination: "Pune", Cost: decimal.NewFromInt(100), Date: "2024-04-12", Type: "BOAT"},
		},
		{
			name: "bad date",
			req:  dto.CreateTripRequest{Destination: "Pune", Cost: decimal.NewFromInt(100), Date: "12/04/2024", Type: domain.TripCar},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTrip(ctx, ownerID, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestTripService_DeleteAbsentTripIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	assert.NoError(t, svc.DeleteTrip(ctx, ownerID, "no-such-trip"))
}

func TestTripService_StatusIsFreelyRewritable(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	trips, err := svc.ListTrips(ctx, ownerID)
	require.NoError(t, err)
	tripID := trips[0].TripID

	// Walk the status backwards and forwards: no transition is illegal.
	for _, status := range []domain.TripStatus{domain.TripCompleted, domain.TripPlanned, domain.TripBooked} {
		updated, err := svc.UpdateTripStatus(ctx, ownerID, tripID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err = svc.UpdateTripStatus(ctx, ownerID, tripID, "CANCELLED")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTripService_RenameTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	trips, err := svc.ListTrips(ctx, ownerID)
	require.NoError(t, err)
	tripID := trips[0].TripID

	renamed, err := svc.RenameTrip(ctx, ownerID, tripID, "Mumbai → Jaipur")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai → Jaipur", renamed.Destination)

	// Empty title leaves the trip unchanged.
	unchanged, err := svc.RenameTrip(ctx, ownerID, tripID, "")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai → Jaipur", unchanged.Destination)
}

func TestTripService_SummarizeUsesBudgetTotal(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	summary, err := svc.Summarize(ctx, ownerID)
	require.NoError(t, err)

	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(26500)))
	assert.True(t, summary.BudgetTotal.Equal(decimal.NewFromInt(120000)))
	assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(93500)))
	assert.Equal(t, 22, summary.Percentage)
	assert.Equal(t, domain.BudgetUnder, summary.Status)
}

func TestTripService_ResetRestoresSeeds(t *testing.T) {
	ctx := context.Background()
	svc := newTripService()
	ownerID := uuid.NewString()

	_, err := svc.CreateTrip(ctx, ownerID, dto.CreateTripRequest{
		Destination: "Pune → Goa",
		Cost:        decimal.NewFromInt(4500),
		Date:        "2024-04-12",
		Type:        domain.TripCar,
	})
	require.NoError(t, err)

	trips, err := svc.ResetTrips(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, "Mumbai → Delhi", trips[0].Destination)
}
