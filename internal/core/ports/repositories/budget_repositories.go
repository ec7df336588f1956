package repositories

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// BudgetRepository defines storage operations for per-user budget ledgers.
// Budgets live only in process memory; there is deliberately no durable
// store behind this interface.
type BudgetRepository interface {
	// FindBudgetByOwner retrieves the owner's budget ledger. Returns
	// apperrors.ErrNotFound if the owner has no ledger yet.
	FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error)

	// SaveBudget creates or replaces the owner's budget ledger.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudgetByOwner discards the owner's ledger so the next access
	// re-seeds it with defaults.
	DeleteBudgetByOwner(ctx context.Context, ownerID string) error
}
