package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripType identifies the travel mode a trip record was created for.
type TripType string

const (
	TripFlight TripType = "FLIGHT"
	TripHotel  TripType = "HOTEL"
	TripCar    TripType = "CAR"
	TripTrain  TripType = "TRAIN"
)

var validTripTypes = map[TripType]bool{
	TripFlight: true,
	TripHotel:  true,
	TripCar:    true,
	TripTrain:  true,
}

// IsValid returns true if the trip type is one of the known travel modes.
func (t TripType) IsValid() bool {
	return validTripTypes[t]
}

// TripStatus tracks a trip through its booking lifecycle. Any status is
// reachable from any other; there is deliberately no transition-legality
// check (a completed trip may be moved back to planned).
type TripStatus string

const (
	TripPlanned   TripStatus = "PLANNED"
	TripBooked    TripStatus = "BOOKED"
	TripCompleted TripStatus = "COMPLETED"
)

var validTripStatuses = map[TripStatus]bool{
	TripPlanned:   true,
	TripBooked:    true,
	TripCompleted: true,
}

// IsValid returns true if the status is one of the known trip statuses.
func (s TripStatus) IsValid() bool {
	return validTripStatuses[s]
}

// Trip represents a single planned or booked journey in a user's registry.
type Trip struct {
	TripID      string          `json:"tripID"`  // Time-ordered unique token, see utils.NextTimeOrderedID
	OwnerID     string          `json:"ownerID"` // UserID owning the registry instance
	Destination string          `json:"destination"`
	Purpose     string          `json:"purpose"`
	Cost        decimal.Decimal `json:"cost"`
	Date        time.Time       `json:"date"`
	Type        TripType        `json:"type"`
	Status      TripStatus      `json:"status"`
	Lat         float64         `json:"lat"` // Marker coordinates for the map delegate
	Lng         float64         `json:"lng"`
	AuditFields
}

// TotalCost sums the cost of all given trips. Registries are small, so this
// is recomputed on every read rather than bookkept incrementally.
func TotalCost(trips []Trip) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trips {
		sum = sum.Add(t.Cost)
	}
	return sum
}

// TripSummary aggregates a trip registry against the owner's budget total.
// Spent is recomputed from the registry on every mutation; remaining is
// clamped to zero.
type TripSummary struct {
	TotalCost   decimal.Decimal `json:"totalCost"`
	BookedCost  decimal.Decimal `json:"bookedCost"`
	BudgetTotal decimal.Decimal `json:"budgetTotal"`
	Remaining   decimal.Decimal `json:"remaining"`
	Percentage  int             `json:"percentage"`
	Status      BudgetStatus    `json:"status"`
}

// Summarize derives a TripSummary by treating the registry's total cost as
// the spent amount of a budget with the given total.
func Summarize(trips []Trip, budgetTotal decimal.Decimal) TripSummary {
	spent := TotalCost(trips)
	derived := Budget{Total: budgetTotal, Spent: spent}
	return TripSummary{
		TotalCost:   spent,
		BookedCost:  BookedCost(trips),
		BudgetTotal: budgetTotal,
		Remaining:   derived.Remaining(),
		Percentage:  derived.Percentage(),
		Status:      derived.Status(),
	}
}

// BookedCost sums the cost of trips whose status is BOOKED.
func BookedCost(trips []Trip) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trips {
		if t.Status == TripBooked {
			sum = sum.Add(t.Cost)
		}
	}
	return sum
}
