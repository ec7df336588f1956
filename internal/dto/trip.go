package dto

import (
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for trip and booking dates.
const DateLayout = "2006-01-02"

// CreateTripRequest defines the data needed to add a trip to the registry.
type CreateTripRequest struct {
	Destination string          `json:"destination" binding:"required"`
	Purpose     string          `json:"purpose"`
	Cost        decimal.Decimal `json:"cost" binding:"required"`
	Date        string          `json:"date" binding:"required,tripdate"`
	Type        domain.TripType `json:"type" binding:"required,oneof=FLIGHT HOTEL CAR TRAIN"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
}

// ParseDate parses the request's date field in the wire format.
func (r CreateTripRequest) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// UpdateTripStatusRequest overwrites a trip's status.
type UpdateTripStatusRequest struct {
	Status domain.TripStatus `json:"status" binding:"required,oneof=PLANNED BOOKED COMPLETED"`
}

// RenameTripRequest replaces a trip's destination title.
type RenameTripRequest struct {
	Destination string `json:"destination" binding:"required"`
}

// TripResponse defines the data returned for a trip record.
type TripResponse struct {
	TripID      string            `json:"tripID"`
	Destination string            `json:"destination"`
	Purpose     string            `json:"purpose"`
	Cost        decimal.Decimal   `json:"cost"`
	Date        string            `json:"date"`
	Type        domain.TripType   `json:"type"`
	Status      domain.TripStatus `json:"status"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:      t.TripID,
		Destination: t.Destination,
		Purpose:     t.Purpose,
		Cost:        t.Cost,
		Date:        t.Date.Format(DateLayout),
		Type:        t.Type,
		Status:      t.Status,
		Lat:         t.Lat,
		Lng:         t.Lng,
		CreatedAt:   t.CreatedAt,
	}
}

// ToListTripResponse converts a slice of domain.Trip to TripResponse DTOs.
func ToListTripResponse(trips []domain.Trip) []TripResponse {
	res := make([]TripResponse, len(trips))
	for i, t := range trips {
		res[i] = ToTripResponse(&t)
	}
	return res
}

// ListTripsResponse wraps the list of trips.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// TripSummaryResponse mirrors domain.TripSummary on the wire.
type TripSummaryResponse struct {
	TotalCost   decimal.Decimal     `json:"totalCost"`
	BookedCost  decimal.Decimal     `json:"bookedCost"`
	BudgetTotal decimal.Decimal     `json:"budgetTotal"`
	Remaining   decimal.Decimal     `json:"remaining"`
	Percentage  int                 `json:"percentage"`
	Status      domain.BudgetStatus `json:"status"`
}

// ToTripSummaryResponse converts a domain.TripSummary to its DTO.
func ToTripSummaryResponse(s *domain.TripSummary) TripSummaryResponse {
	return TripSummaryResponse{
		TotalCost:   s.TotalCost,
		BookedCost:  s.BookedCost,
		BudgetTotal: s.BudgetTotal,
		Remaining:   s.Remaining,
		Percentage:  s.Percentage,
		Status:      s.Status,
	}
}
