package domain_test

import (
	"testing"

	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApprovalWorkflow_InitialState(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")

	assert.Equal(t, domain.StepManager, wf.CurrentStep)
	assert.Equal(t, domain.StepCompleted, wf.Steps[domain.StepRequest])
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepManager])
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepFinance])
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepConfirmed])
	assert.Equal(t, 25, wf.Progress)
}

func TestApprovalWorkflow_ApproveHappyPath(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")

	require.NoError(t, wf.Approve(domain.RoleManager))
	assert.Equal(t, domain.StepFinance, wf.CurrentStep)
	assert.Equal(t, domain.StepApproved, wf.Steps[domain.StepManager])
	assert.Equal(t, 75, wf.Progress)

	require.NoError(t, wf.Approve(domain.RoleFinance))
	assert.Equal(t, domain.StepConfirmed, wf.CurrentStep)
	assert.Equal(t, domain.StepApproved, wf.Steps[domain.StepFinance])
	assert.Equal(t, domain.StepCompleted, wf.Steps[domain.StepConfirmed])
	assert.Equal(t, 100, wf.Progress)
}

func TestApprovalWorkflow_ApproveRoleGate(t *testing.T) {
	tests := []struct {
		name string
		role domain.UserRole
	}{
		{name: "employee cannot approve manager step", role: domain.RoleEmployee},
		{name: "finance cannot approve manager step", role: domain.RoleFinance},
		{name: "admin does not bypass the manager gate", role: domain.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := domain.NewApprovalWorkflow("wf-1", "user-1")
			err := wf.Approve(tt.role)
			assert.ErrorIs(t, err, domain.ErrRoleNotPermitted)
			// no state change on a refused approval
			assert.Equal(t, domain.StepManager, wf.CurrentStep)
			assert.Equal(t, domain.StepPending, wf.Steps[domain.StepManager])
			assert.Equal(t, 25, wf.Progress)
		})
	}
}

func TestApprovalWorkflow_ApproveAfterComplete(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")
	require.NoError(t, wf.Approve(domain.RoleManager))
	require.NoError(t, wf.Approve(domain.RoleFinance))

	err := wf.Approve(domain.RoleManager)
	assert.ErrorIs(t, err, domain.ErrWorkflowComplete)
	assert.Equal(t, 100, wf.Progress)
}

func TestApprovalWorkflow_RejectDoesNotAdvance(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")

	wf.Reject(domain.StepManager)

	assert.Equal(t, domain.StepRejected, wf.Steps[domain.StepManager])
	assert.Equal(t, domain.StepManager, wf.CurrentStep)
	assert.Equal(t, 25, wf.Progress)

	// a rejected workflow is not terminal: it can still be approved
	require.NoError(t, wf.Approve(domain.RoleManager))
	assert.Equal(t, domain.StepFinance, wf.CurrentStep)
}

func TestApprovalWorkflow_RejectUnknownStepIgnored(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")
	wf.Reject(domain.WorkflowStep("LEGAL"))
	assert.Len(t, wf.Steps, 4)
}

func TestApprovalWorkflow_Reset(t *testing.T) {
	wf := domain.NewApprovalWorkflow("wf-1", "user-1")
	require.NoError(t, wf.Approve(domain.RoleManager))
	wf.Reject(domain.StepFinance)

	wf.Reset()

	assert.Equal(t, domain.StepManager, wf.CurrentStep)
	assert.Equal(t, domain.StepCompleted, wf.Steps[domain.StepRequest])
	assert.Equal(t, domain.StepPending, wf.Steps[domain.StepFinance])
	assert.Equal(t, 25, wf.Progress)
}

func TestWorkflowStep_RequiredRole(t *testing.T) {
	role, gated := domain.StepManager.RequiredRole()
	assert.True(t, gated)
	assert.Equal(t, domain.RoleManager, role)

	role, gated = domain.StepFinance.RequiredRole()
	assert.True(t, gated)
	assert.Equal(t, domain.RoleFinance, role)

	_, gated = domain.StepRequest.RequiredRole()
	assert.False(t, gated)
	_, gated = domain.StepConfirmed.RequiredRole()
	assert.False(t, gated)
}
