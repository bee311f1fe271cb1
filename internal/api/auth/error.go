package auth

import "Quickblog/pkg/response"

var (
	ErrSessionNotFound = response.NewError(401, "session not found")
	ErrLoginFailed     = response.NewError(401, "failed to login")
	ErrSignupFailed    = response.NewError(400, "failed to signup")
)
