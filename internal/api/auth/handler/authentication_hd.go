package authHandler

import (
	"strings"
	"time"

	"Quickblog/internal/api/auth"
	"Quickblog/internal/middleware"
	contextPkg "Quickblog/pkg/context"
	"Quickblog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) LoginPage(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{
		"From": ctx.Query("from"),
	}, "layouts/main")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing login request")

	var req auth.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.renderLoginError(ctx, req.Email)
	}

	if err := h.validator.Struct(req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Login validation failed")
		return h.renderLoginError(ctx, req.Email)
	}

	sessionID, _, err := h.authService.Login(c, req)
	if err != nil {
		return h.renderLoginError(ctx, req.Email)
	}

	h.setSessionCookie(ctx, sessionID)
	return ctx.Redirect(redirectTarget(ctx.FormValue("from")), fiber.StatusFound)
}

func (h *AuthHandler) SignupPage(ctx *fiber.Ctx) error {
	return ctx.Render("signup", fiber.Map{
		"From": ctx.Query("from"),
	}, "layouts/main")
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing signup request")

	var req auth.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.renderSignupError(ctx, req, "Failed to signup")
	}

	if err := h.validator.Struct(req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Signup validation failed")
		return h.renderSignupError(ctx, req, "Failed to signup")
	}

	sessionID, _, err := h.authService.Signup(c, req)
	if err != nil {
		// Signup is the one flow that surfaces the server-supplied message.
		return h.renderSignupError(ctx, req, err.Error())
	}

	h.setSessionCookie(ctx, sessionID)
	return ctx.Redirect(redirectTarget(ctx.FormValue("from")), fiber.StatusFound)
}

// Logout clears the persisted session and the cookie, then lands on the
// public home route. Logging out while already logged out is harmless.
func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	sessionID := ctx.Cookies(middleware.SessionCookie)
	if err := h.authService.Logout(c, sessionID); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Logout failed")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return ctx.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookie(ctx *fiber.Ctx, sessionID string) {
	// No Expires: the cookie lives for the browser session, like the tab
	// storage it replaces.
	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func (h *AuthHandler) renderLoginError(ctx *fiber.Ctx, email string) error {
	return ctx.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
		"Error": "Login failed",
		"Email": email,
		"From":  ctx.FormValue("from"),
	}, "layouts/main")
}

func (h *AuthHandler) renderSignupError(ctx *fiber.Ctx, req auth.SignupRequest, message string) error {
	return ctx.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
		"Error": message,
		"Name":  req.Name,
		"Email": req.Email,
		"From":  ctx.FormValue("from"),
	}, "layouts/main")
}

// redirectTarget keeps post-login navigation on this site: only local paths
// are honored, everything else falls back to the dashboard.
func redirectTarget(from string) string {
	if strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") {
		return from
	}
	return "/dashboard"
}
