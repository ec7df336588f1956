package dto

import (
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
)

// RejectStepRequest names the workflow step to flag as rejected.
type RejectStepRequest struct {
	Step domain.WorkflowStep `json:"step" binding:"required,oneof=REQUEST MANAGER FINANCE CONFIRMED"`
}

// WorkflowResponse defines the data returned for an approval workflow.
type WorkflowResponse struct {
	WorkflowID  string                                    `json:"workflowID"`
	CurrentStep domain.WorkflowStep                       `json:"currentStep"`
	Steps       map[domain.WorkflowStep]domain.StepStatus `json:"steps"`
	Progress    int                                       `json:"progress"`
}

// ToWorkflowResponse converts a domain.ApprovalWorkflow to WorkflowResponse DTO.
func ToWorkflowResponse(w *domain.ApprovalWorkflow) WorkflowResponse {
	return WorkflowResponse{
		WorkflowID:  w.WorkflowID,
		CurrentStep: w.CurrentStep,
		Steps:       w.Steps,
		Progress:    w.Progress,
	}
}
