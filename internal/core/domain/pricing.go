package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// BookingMode identifies which booking form a price estimate is for.
type BookingMode string

const (
	BookFlight BookingMode = "FLIGHT"
	BookHotel  BookingMode = "HOTEL"
	BookCar    BookingMode = "CAR"
	BookTrain  BookingMode = "TRAIN"
)

// Per-night unit rates in the estimator's base unit. The display-currency
// conversion is a presentation concern and lives in the DTO layer.
var modeRates = map[BookingMode]int64{
	BookFlight: 200,
	BookTrain:  80,
	BookHotel:  150,
	BookCar:    70,
}

// IsValid returns true if the mode is one of the known booking modes.
func (m BookingMode) IsValid() bool {
	_, ok := modeRates[m]
	return ok
}

// EstimateParams carries the estimator inputs. Only the party-size field
// matching the mode is consulted; the others are ignored.
type EstimateParams struct {
	Passengers int
	Rooms      int
	Drivers    int
	DateFrom   time.Time
	DateTo     time.Time
}

// NightsBetween returns the number of nights between two dates, rounding
// partial days up and never going negative. Zero dates yield 0.
func NightsBetween(from, to time.Time) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	d := to.Sub(from)
	if d < 0 {
		d = 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// PartySize returns the quantity multiplying the per-night rate for the
// mode: passengers for flight/train, rooms for hotel, drivers for car.
// Missing or non-positive values default to 1.
func (m BookingMode) PartySize(p EstimateParams) int {
	var n int
	switch m {
	case BookFlight, BookTrain:
		n = p.Passengers
	case BookHotel:
		n = p.Rooms
	case BookCar:
		n = p.Drivers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Estimate computes rate × party size × nights for the mode. At least one
// night is always charged, also when dates are absent. Unknown modes
// estimate to zero.
func Estimate(mode BookingMode, p EstimateParams) decimal.Decimal {
	rate, ok := modeRates[mode]
	if !ok {
		return decimal.Zero
	}
	nights := NightsBetween(p.DateFrom, p.DateTo)
	if nights == 0 {
		nights = 1
	}
	return decimal.NewFromInt(rate).
		Mul(decimal.NewFromInt(int64(mode.PartySize(p)))).
		Mul(decimal.NewFromInt(int64(nights)))
}
