package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, buf
}

// The request logger runs on whatever logger it is given; it must not
// depend on any process-global initialization.
func TestLoggerConfigUsesInjectedLogger(t *testing.T) {
	logger, buf := newCapturedLogger()

	app := fiber.New()
	app.Use(LoggerConfig(logger))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, buf.String(), "Success")
	assert.Contains(t, buf.String(), `"method":"GET"`)
}

func TestLoggerConfigLevelsFollowStatus(t *testing.T) {
	logger, buf := newCapturedLogger()

	app := fiber.New()
	app.Use(LoggerConfig(logger))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	res.Body.Close()
	assert.Contains(t, buf.String(), "Client error")

	buf.Reset()

	req, _ = http.NewRequest(http.MethodGet, "/broken", nil)
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	res.Body.Close()
	assert.Contains(t, buf.String(), "Server error")
}

func TestLoggerConfigRedactsCredentials(t *testing.T) {
	logger, buf := newCapturedLogger()

	app := fiber.New()
	app.Use(LoggerConfig(logger))
	app.Post("/login", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	body := strings.NewReader("email=ana%40mail.com&password=hunter22secret")
	req, _ := http.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Contains(t, buf.String(), "[SECRET]")
	assert.NotContains(t, buf.String(), "hunter22secret")
}
