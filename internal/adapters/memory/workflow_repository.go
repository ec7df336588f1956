package memory

import (
	"context"
	"sync"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
)

// WorkflowRepository is an in-memory implementation of the workflow
// repository, one approval workflow per owner.
type WorkflowRepository struct {
	mu      sync.RWMutex
	byOwner map[string]domain.ApprovalWorkflow
}

// NewWorkflowRepository creates an empty in-memory workflow repository.
func NewWorkflowRepository() *WorkflowRepository {
	return &WorkflowRepository{byOwner: make(map[string]domain.ApprovalWorkflow)}
}

var _ portsrepo.WorkflowRepository = (*WorkflowRepository)(nil)

// FindWorkflowByOwner retrieves the owner's workflow instance.
func (r *WorkflowRepository) FindWorkflowByOwner(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wf, ok := r.byOwner[ownerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := wf
	out.Steps = make(map[domain.WorkflowStep]domain.StepStatus, len(wf.Steps))
	for step, status := range wf.Steps {
		out.Steps[step] = status
	}
	return &out, nil
}

// SaveWorkflow creates or replaces the owner's workflow instance.
func (r *WorkflowRepository) SaveWorkflow(ctx context.Context, workflow domain.ApprovalWorkflow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := workflow
	stored.Steps = make(map[domain.WorkflowStep]domain.StepStatus, len(workflow.Steps))
	for step, status := range workflow.Steps {
		stored.Steps[step] = status
	}
	r.byOwner[workflow.OwnerID] = stored
	return nil
}
