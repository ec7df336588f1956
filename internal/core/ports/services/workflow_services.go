package services

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// ApprovalSvcFacade drives a user's approval workflow instance.
//
// Approve and Reject simulate the upstream approval provider's latency and
// are single-flight per workflow instance: while one transition is
// outstanding, any other Approve or Reject on the same instance is refused
// with apperrors.ErrConflict rather than queued or interleaved. Reset is not
// subject to the single-flight lock.
type ApprovalSvcFacade interface {
	// GetWorkflow returns the owner's workflow, seeding it if absent.
	GetWorkflow(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error)

	// Approve approves the current step on behalf of the given role. The
	// role is passed explicitly rather than read from ambient state so the
	// gate stays testable in isolation.
	Approve(ctx context.Context, ownerID string, role domain.UserRole) (*domain.ApprovalWorkflow, error)

	// Reject flags the named step rejected without moving the current step.
	Reject(ctx context.Context, ownerID string, step domain.WorkflowStep) (*domain.ApprovalWorkflow, error)

	// Reset restores the initial workflow state unconditionally.
	Reset(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error)
}
