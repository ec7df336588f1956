package repositories

// RepositoryProvider bundles all repository implementations so they can be
// passed around and injected into the service container as one unit.
type RepositoryProvider struct {
	UserRepo     UserRepository
	BudgetRepo   BudgetRepository
	TripRepo     TripRepository
	WorkflowRepo WorkflowRepository
}
