package services

import (
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	// Budget first: the trip service borrows its total for summaries.
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Trip = NewTripService(repos.TripRepo, container.Budget)
	container.Approval = NewApprovalService(repos.WorkflowRepo, cfg.ApprovalLatency)
	container.Booking = NewBookingService()
	container.Map = NewMapService(cfg.GoogleMapsAPIKey, container.Trip)

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.UserSvcFacade     = (*UserService)(nil)
	_ portssvc.BudgetSvcFacade   = (*BudgetService)(nil)
	_ portssvc.TripSvcFacade     = (*TripService)(nil)
	_ portssvc.ApprovalSvcFacade = (*ApprovalService)(nil)
	_ portssvc.BookingSvcFacade  = (*BookingService)(nil)
	_ portssvc.MapSvcFacade      = (*MapService)(nil)
)
