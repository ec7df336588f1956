package dto

import (
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetTotalRequest replaces the budget total. Values at or below zero
// are accepted by binding but silently ignored by the service.
type SetBudgetTotalRequest struct {
	Total decimal.Decimal `json:"total" binding:"required"`
}

// AddExpenseRequest records additional spend against the budget.
type AddExpenseRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget ledger, including
// the derived fields the client renders directly.
type BudgetResponse struct {
	BudgetID   string              `json:"budgetID"`
	Total      decimal.Decimal     `json:"total"`
	Spent      decimal.Decimal     `json:"spent"`
	Remaining  decimal.Decimal     `json:"remaining"`
	Percentage int                 `json:"percentage"`
	Status     domain.BudgetStatus `json:"status"`
	// Celebrate is set on the single response in which the budget crossed
	// downward from the warning band into the under band.
	Celebrate bool `json:"celebrate,omitempty"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget, celebrate bool) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		Total:      b.Total,
		Spent:      b.Spent,
		Remaining:  b.Remaining(),
		Percentage: b.Percentage(),
		Status:     b.Status(),
		Celebrate:  celebrate,
	}
}
