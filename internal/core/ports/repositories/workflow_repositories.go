package repositories

import (
	"context"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// WorkflowRepository defines storage operations for per-user approval
// workflow instances.
type WorkflowRepository interface {
	// FindWorkflowByOwner retrieves the owner's workflow instance. Returns
	// apperrors.ErrNotFound if the owner has none yet.
	FindWorkflowByOwner(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error)

	// SaveWorkflow creates or replaces the owner's workflow instance.
	SaveWorkflow(ctx context.Context, workflow domain.ApprovalWorkflow) error
}
