package handlers

import (
	"fmt"
	"net/http"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to booking links and the
// price estimator.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("/links", h.getLinks)
		bookings.POST("/estimate", h.estimate)
		bookings.POST("/submit", h.submit)
	}
}

// getLinks godoc
// @Summary List booking redirect links
// @Description Returns the fixed table of travel categories and external partner URLs.
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.BookingLinksResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/links [get]
func (h *bookingHandler) getLinks(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BookingLinksResponse{Links: h.bookingService.Links()})
}

// estimate godoc
// @Summary Estimate a booking price
// @Description Computes the price estimate for a booking mode from the form inputs. The displayAmount field carries the client-facing INR figure.
// @Tags bookings
// @Accept json
// @Produce json
// @Param estimate body dto.EstimateRequest true "Booking form inputs"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/estimate [post]
func (h *bookingHandler) estimate(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Invalid request format: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	params := req.ToEstimateParams()
	estimate := h.bookingService.Estimate(c.Request.Context(), req.Mode, params)

	c.JSON(http.StatusOK, dto.ToEstimateResponse(req.Mode, params, estimate))
}

// submit godoc
// @Summary Submit a booking intent
// @Description Acknowledges a booking submission with the estimate and a redirect hint. There is no reservation backend; the client shows the message and follows the redirect to the auth page.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.EstimateRequest true "Booking form inputs"
// @Success 200 {object} dto.BookingSubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/submit [post]
func (h *bookingHandler) submit(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Invalid request format: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	params := req.ToEstimateParams()
	estimate := h.bookingService.Estimate(c.Request.Context(), req.Mode, params)
	resp := dto.ToEstimateResponse(req.Mode, params, estimate)

	c.JSON(http.StatusOK, dto.BookingSubmissionResponse{
		EstimateResponse: resp,
		Message:          fmt.Sprintf("Booking request received, estimated fare %s. Please sign in to continue.", utils.FormatINR(resp.DisplayAmount)),
		RedirectURL:      "/auth",
	})
}
