package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mapHandler handles HTTP requests for the external map delegate's
// configuration.
type mapHandler struct {
	mapService portssvc.MapSvcFacade
}

func newMapHandler(ms portssvc.MapSvcFacade) *mapHandler {
	return &mapHandler{mapService: ms}
}

// registerMapRoutes registers routes related to the map view.
func registerMapRoutes(rg *gin.RouterGroup, mapService portssvc.MapSvcFacade) {
	h := newMapHandler(mapService)

	maps := rg.Group("/maps")
	{
		maps.GET("/config", h.getConfig)
	}
}

// getConfig godoc
// @Summary Get map configuration
// @Description Returns the map credential, center and trip markers. When no credential is configured, enabled is false and the client renders a placeholder.
// @Tags maps
// @Produce json
// @Success 200 {object} domain.MapConfig
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /maps/config [get]
func (h *mapHandler) getConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cfg, err := h.mapService.MapConfig(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build map config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build map config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
