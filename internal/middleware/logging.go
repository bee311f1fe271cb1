package middleware

import (
	"net/url"
	"strings"
	"time"

	"Quickblog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func LoggerConfig(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"host":          c.Hostname(),
			"user_agent":    c.Get("User-Agent"),
			"referer":       c.Get("Referer"),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(string(body))
		}

		if status >= 500 {
			logger.WithFields(logFields).Error("Server error")
		} else if status >= 400 {
			logger.WithFields(logFields).Warn("Client error")
		} else {
			logger.WithFields(logFields).Info("Success")
		}

		return err
	}
}

// sanitizeRequestBody redacts credential fields from the form-encoded
// bodies the pages post before they reach the log.
func sanitizeRequestBody(body string) string {
	values, err := url.ParseQuery(body)
	if err != nil {
		return "[unparseable body]"
	}

	sensitiveFields := []string{"password", "token", "secret"}

	for _, field := range sensitiveFields {
		if values.Has(field) {
			values.Set(field, "[SECRET]")
		}
	}

	sanitized := values.Encode()
	if len(sanitized) > 2048 {
		sanitized = sanitized[:2048] + "..."
	}

	return strings.ReplaceAll(sanitized, "%5BSECRET%5D", "[SECRET]")
}
