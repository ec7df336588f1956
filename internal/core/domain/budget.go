package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies budget consumption into display bands.
type BudgetStatus string

const (
	BudgetUnder   BudgetStatus = "UNDER"
	BudgetWarning BudgetStatus = "WARNING"
	BudgetOver    BudgetStatus = "OVER"
)

// Budget represents a travel budget ledger: a total allowance and the amount
// spent against it. Remaining and percentage are derived on read, never stored.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (e.g., UUID)
	OwnerID  string          `json:"ownerID"`  // UserID owning this ledger instance
	Total    decimal.Decimal `json:"total"`
	Spent    decimal.Decimal `json:"spent"`
	AuditFields
}

// Remaining returns total minus spent, clamped to zero.
func (b Budget) Remaining() decimal.Decimal {
	remaining := b.Total.Sub(b.Spent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Percentage returns the spent share of the total as a rounded whole percent.
// A non-positive total yields 0 rather than dividing by zero.
func (b Budget) Percentage() int {
	if !b.Total.IsPositive() {
		return 0
	}
	pct := b.Spent.Div(b.Total).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// Status classifies the budget band. OVER is evaluated before WARNING; the
// order matters at the 90 percent boundary.
func (b Budget) Status() BudgetStatus {
	pct := b.Percentage()
	switch {
	case pct >= 90:
		return BudgetOver
	case pct >= 75:
		return BudgetWarning
	default:
		return BudgetUnder
	}
}
