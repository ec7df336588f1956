package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade defines operations on a user's budget ledger. The ledger
// is created lazily with demo seed values on first access.
//
// Mutating operations additionally report whether the change crossed the
// warning band downward into the under band; the crossing fires exactly once
// per downward transition and drives a one-shot celebratory effect on the
// client.
type BudgetSvcFacade interface {
	// GetBudget returns the owner's ledger, seeding it if absent.
	GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error)

	// SetTotal replaces the ledger total and recomputes derived fields.
	// A non-positive total is silently ignored: the ledger is returned
	// unchanged and nothing is persisted.
	SetTotal(ctx context.Context, ownerID string, total decimal.Decimal) (*domain.Budget, bool, error)

	// AddExpense adds the amount to spent unconditionally; there is no upper
	// bound check against the total.
	AddExpense(ctx context.Context, ownerID string, amount decimal.Decimal) (*domain.Budget, bool, error)

	// ResetBudget discards the ledger and restores the seed values.
	ResetBudget(ctx context.Context, ownerID string) (*domain.Budget, error)
}
