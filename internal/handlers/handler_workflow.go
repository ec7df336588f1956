package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workflowHandler handles HTTP requests related to the approval workflow.
// Approvals act on behalf of the caller's current role, so the handler also
// needs the user service to resolve it.
type workflowHandler struct {
	approvalService portssvc.ApprovalSvcFacade
	userService     portssvc.UserSvcFacade
}

func newWorkflowHandler(as portssvc.ApprovalSvcFacade, us portssvc.UserSvcFacade) *workflowHandler {
	return &workflowHandler{approvalService: as, userService: us}
}

// registerWorkflowRoutes registers routes related to the approval workflow.
func registerWorkflowRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade, userService portssvc.UserSvcFacade) {
	h := newWorkflowHandler(approvalService, userService)

	workflow := rg.Group("/workflow")
	{
		workflow.GET("", h.getWorkflow)
		workflow.POST("/approve", h.approve)
		workflow.POST("/reject", h.reject)
		workflow.POST("/reset", h.reset)
	}
}

// getWorkflow godoc
// @Summary Get the approval workflow
// @Description Returns the workflow state. A fresh user gets a workflow with the request step already submitted and the manager step pending.
// @Tags workflow
// @Produce json
// @Success 200 {object} dto.WorkflowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workflow [get]
func (h *workflowHandler) getWorkflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wf, err := h.approvalService.GetWorkflow(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get workflow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workflow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkflowResponse(wf))
}

// approve godoc
// @Summary Approve the current step
// @Description Approves the current step on behalf of the caller's acting role. The manager step requires the manager role and the finance step the finance role, exact match. While another approval or rejection is in flight the request is refused with 409.
// @Tags workflow
// @Produce json
// @Success 200 {object} dto.WorkflowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Acting role does not match the step's approver gate"
// @Failure 409 {object} ErrorResponse "Another transition is in flight, or the workflow is already complete"
// @Security BearerAuth
// @Router /workflow/approve [post]
func (h *workflowHandler) approve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve acting role", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve acting role"})
		return
	}

	wf, err := h.approvalService.Approve(c.Request.Context(), userID, user.Role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Another approval is already in progress"})
		case errors.Is(err, domain.ErrRoleNotPermitted):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrWorkflowComplete):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to approve workflow step", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve workflow step"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkflowResponse(wf))
}

// reject godoc
// @Summary Reject a step
// @Description Flags the named step as rejected. The current step does not move; the workflow stays re-approvable or resettable.
// @Tags workflow
// @Accept json
// @Produce json
// @Param step body dto.RejectStepRequest true "Step to reject"
// @Success 200 {object} dto.WorkflowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Another transition is in flight"
// @Security BearerAuth
// @Router /workflow/reject [post]
func (h *workflowHandler) reject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RejectStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wf, err := h.approvalService.Reject(c.Request.Context(), userID, req.Step)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Another approval is already in progress"})
			return
		}
		logger.Error("Failed to reject workflow step", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject workflow step"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkflowResponse(wf))
}

// reset godoc
// @Summary Reset the approval workflow
// @Description Restores the initial workflow state. Reset always wins, even against an in-flight transition.
// @Tags workflow
// @Produce json
// @Success 200 {object} dto.WorkflowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workflow/reset [post]
func (h *workflowHandler) reset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wf, err := h.approvalService.Reset(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to reset workflow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset workflow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkflowResponse(wf))
}
