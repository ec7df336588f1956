package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
)

// MapService assembles the external map delegate's configuration from the
// configured credential and the owner's trip markers. A missing credential
// is a supported degraded state, not an error.
type MapService struct {
	BaseService
	apiKey     string
	tripReader portssvc.TripReaderSvc
}

func NewMapService(apiKey string, tripReader portssvc.TripReaderSvc) *MapService {
	return &MapService{apiKey: apiKey, tripReader: tripReader}
}

// MapConfig returns what the client-side map should render for this owner.
func (s *MapService) MapConfig(ctx context.Context, ownerID string) (*domain.MapConfig, error) {
	trips, err := s.tripReader.ListTrips(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	markers := domain.MarkersFromTrips(trips)
	return &domain.MapConfig{
		Enabled: s.apiKey != "",
		APIKey:  s.apiKey,
		Center:  domain.BoundsCenter(markers),
		Markers: markers,
	}, nil
}
