package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, viewsDir string) *fiber.App {
	engine := html.New(viewsDir, ".html")

	app := fiber.New(
		fiber.Config{
			AppName:           "QuickBlog Web",
			BodyLimit:         10 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     false,
			CaseSensitive:     true,
			EnablePrintRoutes: true,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			Views:             engine,
		})

	return app
}

func NewValidator() *validator.Validate {
	return validator.New()
}
