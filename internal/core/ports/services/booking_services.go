package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookingSvcFacade covers the booking-intent surface: the static redirect
// table and the pure price estimator. There is no backend booking API; a
// submission only yields an estimate plus a redirect hint.
type BookingSvcFacade interface {
	// Links returns the fixed category-to-partner-URL redirect table.
	Links() []domain.BookingLink

	// Estimate computes the unscaled price estimate for a booking mode.
	Estimate(ctx context.Context, mode domain.BookingMode, params domain.EstimateParams) decimal.Decimal
}

// MapSvcFacade exposes the external map delegate's configuration: the API
// credential (when configured) and the markers derived from the owner's
// trips. A missing credential yields Enabled=false, not an error.
type MapSvcFacade interface {
	MapConfig(ctx context.Context, ownerID string) (*domain.MapConfig, error)
}
