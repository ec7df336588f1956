package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Demo seed values every fresh ledger starts from.
var (
	seedBudgetTotal = decimal.NewFromInt(120000)
	seedBudgetSpent = decimal.NewFromInt(68000)
)

// BudgetService implements the budget ledger operations. Ledgers are seeded
// lazily per owner and live in process memory only.
type BudgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

func (s *BudgetService) seedBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	now := time.Now()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  ownerID,
		Total:    seedBudgetTotal,
		Spent:    seedBudgetSpent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to seed budget: %w", err)
	}
	s.LogDebug(ctx, "seeded budget ledger", slog.String("owner_id", ownerID))
	return &budget, nil
}

// GetBudget returns the owner's ledger, creating it from the demo seed on
// first access.
func (s *BudgetService) GetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByOwner(ctx, ownerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.seedBudget(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// SetTotal replaces the ledger total. A non-positive total is silently
// ignored: the ledger is returned unchanged and nothing is persisted.
func (s *BudgetService) SetTotal(ctx context.Context, ownerID string, total decimal.Decimal) (*domain.Budget, bool, error) {
	budget, err := s.GetBudget(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}
	if !total.IsPositive() {
		s.LogDebug(ctx, "ignoring non-positive budget total", slog.String("owner_id", ownerID), slog.String("total", total.String()))
		return budget, false, nil
	}

	before := budget.Status()
	budget.Total = total
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = ownerID
	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		return nil, false, fmt.Errorf("failed to save budget: %w", err)
	}
	return budget, crossedIntoUnder(before, budget.Status()), nil
}

// AddExpense adds the amount to spent unconditionally; overspending is
// allowed and surfaces through the status band, not an error.
func (s *BudgetService) AddExpense(ctx context.Context, ownerID string, amount decimal.Decimal) (*domain.Budget, bool, error) {
	budget, err := s.GetBudget(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	before := budget.Status()
	budget.Spent = budget.Spent.Add(amount)
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = ownerID
	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		return nil, false, fmt.Errorf("failed to save budget: %w", err)
	}
	return budget, crossedIntoUnder(before, budget.Status()), nil
}

// ResetBudget discards the ledger and restores the demo seed values.
func (s *BudgetService) ResetBudget(ctx context.Context, ownerID string) (*domain.Budget, error) {
	if err := s.budgetRepo.DeleteBudgetByOwner(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to reset budget: %w", err)
	}
	return s.seedBudget(ctx, ownerID)
}

// crossedIntoUnder reports a downward warning-to-under crossing. The
// crossing is edge-triggered: it fires on the mutation that moves the
// ledger from warning into under, never while it stays there. A jump
// from over straight to under does not count.
func crossedIntoUnder(before, after domain.BudgetStatus) bool {
	return before == domain.BudgetWarning && after == domain.BudgetUnder
}
