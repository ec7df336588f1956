package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookingService serves the static redirect table and the pure price
// estimator. It holds no state: a "booking" in this system is an estimate
// plus a redirect, never a reservation.
type BookingService struct {
	BaseService
}

func NewBookingService() *BookingService {
	return &BookingService{}
}

// Links returns the fixed category-to-partner-URL redirect table.
func (s *BookingService) Links() []domain.BookingLink {
	return domain.BookingLinks
}

// Estimate computes the unscaled price estimate for a booking mode.
func (s *BookingService) Estimate(ctx context.Context, mode domain.BookingMode, params domain.EstimateParams) decimal.Decimal {
	return domain.Estimate(mode, params)
}
