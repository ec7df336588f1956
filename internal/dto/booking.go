package dto

import (
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EstimateDisplayFactor converts the estimator's base unit into the display
// currency. This is a presentation concern only: the estimator itself always
// returns the unscaled value.
var EstimateDisplayFactor = decimal.NewFromInt(80)

// EstimateRequest carries the booking form inputs. Only the fields relevant
// to the mode are consulted; the rest may be left empty.
type EstimateRequest struct {
	Mode domain.BookingMode `json:"mode" binding:"required,oneof=FLIGHT HOTEL CAR TRAIN"`

	// Flight/train fields
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Passengers int    `json:"passengers,omitempty"`
	Class      string `json:"class,omitempty"`

	// Hotel/car fields
	Location string `json:"location,omitempty"`
	Rooms    int    `json:"rooms,omitempty"`
	Drivers  int    `json:"drivers,omitempty"`
	CarType  string `json:"carType,omitempty"`

	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
}

// ToEstimateParams maps the request onto estimator inputs. Unparseable or
// absent dates are treated as absent (at least one night is still charged).
func (r EstimateRequest) ToEstimateParams() domain.EstimateParams {
	params := domain.EstimateParams{
		Passengers: r.Passengers,
		Rooms:      r.Rooms,
		Drivers:    r.Drivers,
	}
	if from, err := time.Parse(DateLayout, r.DateFrom); err == nil {
		params.DateFrom = from
	}
	if to, err := time.Parse(DateLayout, r.DateTo); err == nil {
		params.DateTo = to
	}
	return params
}

// EstimateResponse returns both the estimator's unscaled value and the
// display-scaled amount the client shows.
type EstimateResponse struct {
	Mode            domain.BookingMode `json:"mode"`
	Nights          int                `json:"nights"`
	PartySize       int                `json:"partySize"`
	Estimate        decimal.Decimal    `json:"estimate"`
	DisplayAmount   decimal.Decimal    `json:"displayAmount"`
	DisplayCurrency string             `json:"displayCurrency"`
}

// ToEstimateResponse assembles the estimate DTO, applying the display
// conversion as the last step.
func ToEstimateResponse(mode domain.BookingMode, params domain.EstimateParams, estimate decimal.Decimal) EstimateResponse {
	nights := domain.NightsBetween(params.DateFrom, params.DateTo)
	if nights == 0 {
		nights = 1
	}
	return EstimateResponse{
		Mode:            mode,
		Nights:          nights,
		PartySize:       mode.PartySize(params),
		Estimate:        estimate,
		DisplayAmount:   estimate.Mul(EstimateDisplayFactor),
		DisplayCurrency: "INR",
	}
}

// BookingSubmissionResponse acknowledges a booking-intent submission. There
// is no backend booking API; the client shows the notification message and
// then follows RedirectURL to the auth page.
type BookingSubmissionResponse struct {
	EstimateResponse
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl"`
}

// BookingLinksResponse wraps the static category redirect table.
type BookingLinksResponse struct {
	Links []domain.BookingLink `json:"links"`
}
