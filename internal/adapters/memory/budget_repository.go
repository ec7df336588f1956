package memory

import (
	"context"
	"sync"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
)

// BudgetRepository is an in-memory implementation of the budget repository,
// one ledger per owner.
type BudgetRepository struct {
	mu      sync.RWMutex
	byOwner map[string]domain.Budget
}

// NewBudgetRepository creates an empty in-memory budget repository.
func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{byOwner: make(map[string]domain.Budget)}
}

var _ portsrepo.BudgetRepository = (*BudgetRepository)(nil)

// FindBudgetByOwner retrieves the owner's ledger.
func (r *BudgetRepository) FindBudgetByOwner(ctx context.Context, ownerID string) (*domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	budget, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &budget, nil
}

// SaveBudget creates or replaces the owner's ledger.
func (r *BudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[budget.OwnerID] = budget
	return nil
}

// DeleteBudgetByOwner discards the owner's ledger.
func (r *BudgetRepository) DeleteBudgetByOwner(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byOwner, ownerID)
	return nil
}
