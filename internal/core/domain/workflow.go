package domain

import "errors"

// WorkflowStep represents a stage in the trip approval lifecycle.
type WorkflowStep string

const (
	StepRequest   WorkflowStep = "REQUEST"
	StepManager   WorkflowStep = "MANAGER"
	StepFinance   WorkflowStep = "FINANCE"
	StepConfirmed WorkflowStep = "CONFIRMED"
)

// WorkflowSteps is the fixed, ordered set of approval stages.
var WorkflowSteps = []WorkflowStep{StepRequest, StepManager, StepFinance, StepConfirmed}

// Index returns the position of the step in the fixed order, or -1 if unknown.
func (s WorkflowStep) Index() int {
	for i, step := range WorkflowSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// IsValid returns true if the step is one of the fixed approval stages.
func (s WorkflowStep) IsValid() bool {
	return s.Index() >= 0
}

// RequiredRole returns the role gating approval of this step. The second
// return value is false for steps with no approver gate (request, confirmed).
func (s WorkflowStep) RequiredRole() (UserRole, bool) {
	switch s {
	case StepManager:
		return RoleManager, true
	case StepFinance:
		return RoleFinance, true
	default:
		return "", false
	}
}

// StepStatus tracks the outcome of a single workflow step.
type StepStatus string

const (
	StepPending   StepStatus = "PENDING"
	StepApproved  StepStatus = "APPROVED"
	StepRejected  StepStatus = "REJECTED"
	StepCompleted StepStatus = "COMPLETED"
)

// ErrRoleNotPermitted is returned when the acting role does not match the
// approver gate of the current step.
var ErrRoleNotPermitted = errors.New("role not permitted to approve current step")

// ErrWorkflowComplete is returned for approvals attempted after the terminal
// step has completed.
var ErrWorkflowComplete = errors.New("workflow already complete")

// ApprovalWorkflow is the four-stage linear approval state machine for a trip
// request. Exactly one step is current at a time; rejection flags the
// rejected step without moving the current step (the workflow stays
// re-approvable or resettable, rejection is not terminal).
type ApprovalWorkflow struct {
	WorkflowID  string                      `json:"workflowID"` // Primary Key (e.g., UUID)
	OwnerID     string                      `json:"ownerID"`
	CurrentStep WorkflowStep                `json:"currentStep"`
	Steps       map[WorkflowStep]StepStatus `json:"steps"`
	Progress    int                         `json:"progress"` // 0..100
	AuditFields
}

// NewApprovalWorkflow returns a workflow in its initial state: the request
// step is already submitted (completed) and the manager step is awaiting
// action, at 25 percent progress.
func NewApprovalWorkflow(workflowID, ownerID string) *ApprovalWorkflow {
	wf := &ApprovalWorkflow{
		WorkflowID: workflowID,
		OwnerID:    ownerID,
	}
	wf.Reset()
	return wf
}

// Reset restores the initial state unconditionally.
func (w *ApprovalWorkflow) Reset() {
	w.CurrentStep = StepManager
	w.Steps = map[WorkflowStep]StepStatus{
		StepRequest:   StepCompleted,
		StepManager:   StepPending,
		StepFinance:   StepPending,
		StepConfirmed: StepPending,
	}
	w.Progress = 25
}

// Approve marks the current step approved on behalf of the given role and
// advances the workflow. The manager step may only be approved by a manager
// and the finance step only by finance; on a gate mismatch the state is left
// untouched and ErrRoleNotPermitted is returned. Advancing into the terminal
// step marks it completed and sets progress to 100.
func (w *ApprovalWorkflow) Approve(role UserRole) error {
	if w.Steps[StepConfirmed] == StepCompleted {
		return ErrWorkflowComplete
	}
	if required, gated := w.CurrentStep.RequiredRole(); gated && role != required {
		return ErrRoleNotPermitted
	}

	idx := w.CurrentStep.Index()
	if idx == len(WorkflowSteps)-1 {
		w.Steps[w.CurrentStep] = StepCompleted
		w.Progress = 100
		return nil
	}

	w.Steps[w.CurrentStep] = StepApproved
	next := WorkflowSteps[idx+1]
	w.CurrentStep = next
	if next == WorkflowSteps[len(WorkflowSteps)-1] {
		w.Steps[next] = StepCompleted
		w.Progress = 100
		return nil
	}
	w.Progress = (next.Index() + 1) * 100 / len(WorkflowSteps)
	return nil
}

// Reject flags the named step as rejected. The current step does not move:
// of the two historical behaviors (reset-to-request vs. flag-in-place) the
// flag-in-place policy is authoritative here, so the workflow remains where
// it was and can still be reset or re-approved.
func (w *ApprovalWorkflow) Reject(step WorkflowStep) {
	if !step.IsValid() {
		return
	}
	w.Steps[step] = StepRejected
}
