package dto

import "time"

// LoginRequest defines the credentials for password sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token issued on successful sign-in or
// refresh. The refresh token itself travels in an HTTP-only cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleLoginURLResponse carries the provider redirect URL and CSRF state.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// ExchangeCodeRequest carries the authorization code from the OAuth callback.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
