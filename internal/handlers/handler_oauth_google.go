package handlers

import (
	"net/http"
	"strings"

	"log/slog"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	portssvc "github.com/Harsha9951/travel_management_app/internal/core/ports/services"
	"github.com/Harsha9951/travel_management_app/internal/dto"
	"github.com/Harsha9951/travel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google OAuth related requests. It depends on the
// Google OAuth service for the provider flow, the user service to resolve
// identities and the token service to issue application tokens.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes under the public
// auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)

	google := rg.Group("/google")
	{
		google.GET("/login-url", h.GoogleLoginURL)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// GoogleLoginURL godoc
// @Summary Get Google login URL
// @Description Returns the Google OAuth consent URL and a CSRF state token. Responds 404 when OAuth is not configured.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Failure 404 {object} ErrorResponse "OAuth not configured"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) GoogleLoginURL(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleOAuthService.Enabled() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not configured"})
		return
	}

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to start Google sign-in.")
		c.JSON(appErr.Code, appErr)
		return
	}

	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// ExchangeCodeGoogle handles the POST request from the frontend containing
// the authorization code from Google. It exchanges the code for Google
// tokens, validates the ID token, creates or retrieves the user, and issues
// application tokens.
// @Summary Exchange authorization code for access token
// @Description Exchange a Google authorization code for an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 404 {object} ErrorResponse "OAuth not configured"
// @Failure 504 {object} ErrorResponse "Failed to reach Google"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleOAuthService.Enabled() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not configured"})
		return
	}

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		appErr := apperrors.NewBadRequestError("Invalid request payload: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	// 1. Exchange authorization code for Google tokens
	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	// 2. Validate Google's ID token and extract the identity
	info, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	// 3. Resolve to a local user, creating one on first sign-in
	user, err := h.userService.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to sign in with Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	// 4. Issue application tokens
	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to generate token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: accessExpiry,
		User:      dto.ToUserResponse(user),
	})
}
