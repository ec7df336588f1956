package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to the trip registry.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts}
}

// registerTripRoutes registers routes related to the trip registry.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/summary", h.getSummary)
		trips.POST("/reset", h.resetTrips)
		trips.DELETE("/:tripID", h.deleteTrip)
		trips.PATCH("/:tripID/status", h.updateTripStatus)
		trips.PATCH("/:tripID/title", h.renameTrip)
	}
}

// createTrip godoc
// @Summary Create a trip
// @Description Adds a trip to the registry. New trips always start in the planned status.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create trip", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips
// @Description Returns the registry in insertion order. A fresh user gets the demo seed trips.
// @Tags trips
// @Produce json
// @Success 200 {object} dto.ListTripsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTripsResponse{Trips: dto.ToListTripResponse(trips)})
}

// getSummary godoc
// @Summary Summarize the trip registry
// @Description Aggregates trip costs against the budget total, with remaining clamped to zero.
// @Tags trips
// @Produce json
// @Success 200 {object} dto.TripSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/summary [get]
func (h *tripHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.tripService.Summarize(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to summarize trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize trips"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripSummaryResponse(summary))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Removes a trip from the registry. Deleting a trip that does not exist succeeds silently.
// @Tags trips
// @Param tripID path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, c.Param("tripID")); err != nil {
		logger.Error("Failed to delete trip", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	c.Status(http.StatusNoContent)
}

// updateTripStatus godoc
// @Summary Update a trip's status
// @Description Overwrites the status. Any status may be set from any other, including moving completed trips back to planned.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param status body dto.UpdateTripStatusRequest true "Target status"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/status [patch]
func (h *tripHandler) updateTripStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTripStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.UpdateTripStatus(c.Request.Context(), userID, c.Param("tripID"), req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update trip status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// renameTrip godoc
// @Summary Rename a trip
// @Description Replaces the trip's destination title.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param title body dto.RenameTripRequest true "New destination title"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/title [patch]
func (h *tripHandler) renameTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RenameTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.RenameTrip(c.Request.Context(), userID, c.Param("tripID"), req.Destination)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		logger.Error("Failed to rename trip", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename trip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// resetTrips godoc
// @Summary Reset the trip registry
// @Description Discards the registry and restores the demo seed trips.
// @Tags trips
// @Produce json
// @Success 200 {object} dto.ListTripsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/reset [post]
func (h *tripHandler) resetTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trips, err := h.tripService.ResetTrips(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to reset trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset trips"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTripsResponse{Trips: dto.ToListTripResponse(trips)})
}
