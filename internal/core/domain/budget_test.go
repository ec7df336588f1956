package domain_test

import (
	"testing"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Status(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		spent int64
		want  domain.BudgetStatus
	}{
		{name: "well under budget", total: 120000, spent: 68000, want: domain.BudgetUnder},
		{name: "just below warning band", total: 100, spent: 74, want: domain.BudgetUnder},
		{name: "warning band lower boundary", total: 100, spent: 75, want: domain.BudgetWarning},
		{name: "inside warning band", total: 100, spent: 89, want: domain.BudgetWarning},
		{name: "over band lower boundary", total: 100, spent: 90, want: domain.BudgetOver},
		{name: "fully spent", total: 100, spent: 100, want: domain.BudgetOver},
		{name: "overspent beyond total", total: 100, spent: 150, want: domain.BudgetOver},
		{name: "nothing spent", total: 100, spent: 0, want: domain.BudgetUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.Budget{
				Total: decimal.NewFromInt(tt.total),
				Spent: decimal.NewFromInt(tt.spent),
			}
			assert.Equal(t, tt.want, b.Status())
		})
	}
}

func TestBudget_Percentage_Rounds(t *testing.T) {
	b := domain.Budget{
		Total: decimal.NewFromInt(120000),
		Spent: decimal.NewFromInt(68000),
	}
	// 68000/120000 = 56.66..% rounds to 57
	assert.Equal(t, 57, b.Percentage())
}

func TestBudget_Percentage_ZeroTotal(t *testing.T) {
	b := domain.Budget{
		Total: decimal.Zero,
		Spent: decimal.NewFromInt(500),
	}
	assert.Equal(t, 0, b.Percentage())
	assert.Equal(t, domain.BudgetUnder, b.Status())
}

func TestBudget_Remaining_ClampsToZero(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		spent int64
		want  int64
	}{
		{name: "positive remainder", total: 120000, spent: 68000, want: 52000},
		{name: "exactly spent", total: 100, spent: 100, want: 0},
		{name: "overspent clamps to zero", total: 100, spent: 150, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.Budget{
				Total: decimal.NewFromInt(tt.total),
				Spent: decimal.NewFromInt(tt.spent),
			}
			assert.True(t, decimal.NewFromInt(tt.want).Equal(b.Remaining()),
				"remaining = %s, want %d", b.Remaining(), tt.want)
		})
	}
}
