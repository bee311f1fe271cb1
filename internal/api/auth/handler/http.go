package authHandler

import (
	authService "Quickblog/internal/api/auth/service"
	"Quickblog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: as,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	// Auth-only pages: authenticated users are bounced to the landing route.
	srv.Get("/login", h.middleware.PreventAuth, h.LoginPage)
	srv.Post("/login", h.middleware.PreventAuth, h.Login)
	srv.Get("/signup", h.middleware.PreventAuth, h.SignupPage)
	srv.Post("/signup", h.middleware.PreventAuth, h.Signup)

	srv.Post("/logout", h.Logout)
}
