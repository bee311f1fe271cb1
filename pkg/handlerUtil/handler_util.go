package handlerUtil

import (
	"errors"

	"Quickblog/internal/api/auth"
	blogs "Quickblog/internal/api/blog"
	"Quickblog/pkg/log"
	"Quickblog/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps a domain error onto the web surface. Per the platform's error
// contract, everything the user sees is a generic message; the specifics
// stay in the log.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	if errors.Is(err, blogs.ErrBlogNotFound) {
		h.logger.WithFields(fields).Warn("Blog not found")
		return h.renderError(c, fiber.StatusNotFound, "Blog not found.")
	}

	if errors.Is(err, auth.ErrSessionNotFound) {
		h.logger.WithFields(fields).Warn("Session not found")
		return c.Redirect("/login", fiber.StatusFound)
	}

	if code := response.CodeOf(err); code != 0 {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return h.renderError(c, code, "Action failed.")
	}

	h.logger.WithFields(fields).Error("Unexpected error")
	return h.renderError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return h.renderError(c, fiber.StatusBadRequest, "Please fill all fields!")
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
	}).Warn("Unauthorized access")

	return c.Redirect("/login", fiber.StatusFound)
}

func (h *ErrorHandler) renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Status":  status,
		"Message": message,
	}, "layouts/main")
}
