package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/adapters/memory"
	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/Harsha9951/travel_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApprovalService(latency time.Duration) *services.ApprovalService {
	return services.NewApprovalService(memory.NewWorkflowRepository(), latency)
}

func TestApprovalService_SeedsInitialState(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	wf, err := svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepManager, wf.CurrentStep)
	assert.Equal(t, 25, wf.Progress)
	assert.Equal(t, domain.StepCompleted, wf.Steps[domain.StepRequest])
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepManager])
}

func TestApprovalService_HappyPathToCompletion(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	wf, err := svc.Approve(ctx, ownerID, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFinance, wf.CurrentStep)
	assert.Equal(t, 75, wf.Progress)

	wf, err = svc.Approve(ctx, ownerID, domain.RoleFinance)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmed, wf.CurrentStep)
	assert.Equal(t, 100, wf.Progress)
	assert.Equal(t, domain.StepCompleted, wf.Steps[domain.StepConfirmed])

	_, err = svc.Approve(ctx, ownerID, domain.RoleFinance)
	assert.ErrorIs(t, err, domain.ErrWorkflowComplete)
}

func TestApprovalService_RoleGateIsExactMatch(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	for _, role := range []domain.UserRole{domain.RoleEmployee, domain.RoleFinance, domain.RoleAdmin} {
		_, err := svc.Approve(ctx, ownerID, role)
		assert.ErrorIs(t, err, domain.ErrRoleNotPermitted, "role %s must not pass the manager gate", role)
	}

	wf, err := svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepManager, wf.CurrentStep, "refused approvals must not move the workflow")
	assert.Equal(t, 25, wf.Progress)
}

func TestApprovalService_RejectDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	wf, err := svc.Reject(ctx, ownerID, domain.StepManager)
	require.NoError(t, err)
	assert.Equal(t, domain.StepRejected, wf.Steps[domain.StepManager])
	assert.Equal(t, domain.StepManager, wf.CurrentStep)

	// The flagged step can still be approved afterwards.
	wf, err = svc.Approve(ctx, ownerID, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFinance, wf.CurrentStep)
}

func TestApprovalService_ConcurrentTransitionConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(200 * time.Millisecond)
	ownerID := uuid.NewString()

	// Seed outside the race so both calls operate on the same instance.
	_, err := svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var approveErr error
	go func() {
		defer wg.Done()
		_, approveErr = svc.Approve(ctx, ownerID, domain.RoleManager)
	}()

	// Give the approval time to take the single-flight slot.
	time.Sleep(50 * time.Millisecond)
	_, rejectErr := svc.Reject(ctx, ownerID, domain.StepManager)
	assert.ErrorIs(t, rejectErr, apperrors.ErrConflict)

	wg.Wait()
	require.NoError(t, approveErr)

	wf, err := svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepFinance, wf.CurrentStep, "only the first transition may apply")
	assert.NotEqual(t, domain.StepRejected, wf.Steps[domain.StepManager])
}

func TestApprovalService_ResetWinsOverInFlightApprove(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(300 * time.Millisecond)
	ownerID := uuid.NewString()

	_, err := svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var approveErr error
	go func() {
		defer wg.Done()
		_, approveErr = svc.Approve(ctx, ownerID, domain.RoleManager)
	}()

	// Reset while the approval is still inside its simulated latency.
	time.Sleep(100 * time.Millisecond)
	wf, err := svc.Reset(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepManager, wf.CurrentStep)

	wg.Wait()
	assert.ErrorIs(t, approveErr, apperrors.ErrConflict, "a superseded approval must not apply")

	wf, err = svc.GetWorkflow(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepManager, wf.CurrentStep, "the reset state must survive the in-flight approval")
	assert.Equal(t, 25, wf.Progress)
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepManager])
}

func TestApprovalService_ResetRestoresInitialState(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	_, err := svc.Approve(ctx, ownerID, domain.RoleManager)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, ownerID, domain.RoleFinance)
	require.NoError(t, err)

	wf, err := svc.Reset(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepManager, wf.CurrentStep)
	assert.Equal(t, 25, wf.Progress)
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepFinance])
}

func TestApprovalService_ErrorsAreSentinelWrapped(t *testing.T) {
	ctx := context.Background()
	svc := newApprovalService(0)
	ownerID := uuid.NewString()

	_, err := svc.Approve(ctx, ownerID, domain.RoleEmployee)
	assert.True(t, errors.Is(err, domain.ErrRoleNotPermitted))
}
