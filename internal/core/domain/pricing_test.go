package domain_test

import (
	"testing"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "three full nights", from: day(0), to: day(3), want: 3},
		{name: "same day", from: day(0), to: day(0), want: 0},
		{name: "reversed range clamps to zero", from: day(3), to: day(0), want: 0},
		{name: "partial day rounds up", from: day(0), to: day(1).Add(6 * time.Hour), want: 2},
		{name: "zero dates", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NightsBetween(tt.from, tt.to))
		})
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		mode   domain.BookingMode
		params domain.EstimateParams
		want   int64
	}{
		{
			name:   "hotel two rooms three nights",
			mode:   domain.BookHotel,
			params: domain.EstimateParams{Rooms: 2, DateFrom: day(0), DateTo: day(3)},
			want:   900, // 150 * 2 * 3
		},
		{
			name:   "flight per passenger",
			mode:   domain.BookFlight,
			params: domain.EstimateParams{Passengers: 3, DateFrom: day(0), DateTo: day(2)},
			want:   1200, // 200 * 3 * 2
		},
		{
			name:   "train per passenger",
			mode:   domain.BookTrain,
			params: domain.EstimateParams{Passengers: 2, DateFrom: day(0), DateTo: day(1)},
			want:   160,
		},
		{
			name:   "car per driver",
			mode:   domain.BookCar,
			params: domain.EstimateParams{Drivers: 1, DateFrom: day(0), DateTo: day(4)},
			want:   280,
		},
		{
			name:   "absent dates charge one night",
			mode:   domain.BookHotel,
			params: domain.EstimateParams{Rooms: 2},
			want:   300,
		},
		{
			name:   "same-day range charges one night",
			mode:   domain.BookFlight,
			params: domain.EstimateParams{Passengers: 1, DateFrom: day(0), DateTo: day(0)},
			want:   200,
		},
		{
			name:   "missing party size defaults to one",
			mode:   domain.BookHotel,
			params: domain.EstimateParams{DateFrom: day(0), DateTo: day(2)},
			want:   300,
		},
		{
			name:   "wrong-mode party fields are ignored",
			mode:   domain.BookHotel,
			params: domain.EstimateParams{Passengers: 9, Drivers: 9, DateFrom: day(0), DateTo: day(1)},
			want:   150,
		},
		{
			name:   "unknown mode estimates to zero",
			mode:   domain.BookingMode("CRUISE"),
			params: domain.EstimateParams{Passengers: 2, DateFrom: day(0), DateTo: day(2)},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Estimate(tt.mode, tt.params)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "estimate = %s, want %d", got, tt.want)
		})
	}
}
