package memory

import (
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up the full set of in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     NewUserRepository(),
		BudgetRepo:   NewBudgetRepository(),
		TripRepo:     NewTripRepository(),
		WorkflowRepo: NewWorkflowRepository(),
	}
}
