package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to the budget ledger.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// RegisterBudgetRoutes registers routes related to the budget ledger.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budget := rg.Group("/budget")
	{
		budget.GET("", h.getBudget)
		budget.PUT("/total", h.setTotal)
		budget.POST("/expenses", h.addExpense)
		budget.POST("/reset", h.resetBudget)
	}
}

// getBudget godoc
// @Summary Get the budget ledger
// @Description Returns the authenticated user's budget with derived remaining, percentage and status band. A fresh user gets the demo seed ledger.
// @Tags budget
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, false))
}

// setTotal godoc
// @Summary Set the budget total
// @Description Replaces the budget total. Totals at or below zero are silently ignored and the current ledger is returned unchanged.
// @Tags budget
// @Accept json
// @Produce json
// @Param total body dto.SetBudgetTotalRequest true "New budget total"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget/total [put]
func (h *budgetHandler) setTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetBudgetTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, celebrate, err := h.budgetService.SetTotal(c.Request.Context(), userID, req.Total)
	if err != nil {
		logger.Error("Failed to set budget total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget total"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, celebrate))
}

// addExpense godoc
// @Summary Record an expense
// @Description Adds the amount to the spent figure. Overspending is allowed; it surfaces through the status band rather than an error.
// @Tags budget
// @Accept json
// @Produce json
// @Param expense body dto.AddExpenseRequest true "Expense amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget/expenses [post]
func (h *budgetHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, celebrate, err := h.budgetService.AddExpense(c.Request.Context(), userID, req.Amount)
	if err != nil {
		logger.Error("Failed to add expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, celebrate))
}

// resetBudget godoc
// @Summary Reset the budget ledger
// @Description Discards the ledger and restores the demo seed values.
// @Tags budget
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget/reset [post]
func (h *budgetHandler) resetBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.ResetBudget(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to reset budget", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, false))
}
