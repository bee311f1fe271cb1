package config

import (
	"fmt"
	"os"

	authHandler "Quickblog/internal/api/auth/handler"
	authService "Quickblog/internal/api/auth/service"
	blogHandler "Quickblog/internal/api/blog/handler"
	blogService "Quickblog/internal/api/blog/service"
	"Quickblog/internal/cache"
	"Quickblog/internal/middleware"
	"Quickblog/pkg/quickblog"
	"Quickblog/pkg/sanitize"
	"Quickblog/pkg/sessionstore"
	"Quickblog/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	validator    *validator.Validate
	apiClient    quickblog.IQuickblog
	sessionStore sessionstore.ISessionStore
	cache        *cache.Store
	sanitizer    sanitize.ISanitizer
	utils        utils.IUtils
	middleware   middleware.Middleware
	handlers     []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.apiClient == nil {
		return nil, fmt.Errorf("QuickBlog API client is required")
	}
	if server.sessionStore == nil {
		return nil, fmt.Errorf("session store is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithAPIClient(client quickblog.IQuickblog) ServerOption {
	return func(s *Server) error {
		s.apiClient = client
		return nil
	}
}

func WithSessionStore(store sessionstore.ISessionStore) ServerOption {
	return func(s *Server) error {
		s.sessionStore = store
		return nil
	}
}

func WithCache() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before cache")
		}
		s.cache = cache.New(s.log)
		return nil
	}
}

func WithSanitizer() ServerOption {
	return func(s *Server) error {
		s.sanitizer = sanitize.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authServices := authService.New(s.log, s.apiClient, s.sessionStore)
	// The route guards resolve sessions through the auth service, so the
	// middleware is wired here rather than as an option.
	s.middleware = middleware.New(s.log, authServices)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Blog Domain
	blogServices := blogService.New(s.log, s.apiClient, s.cache, s.sanitizer, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.cache.Subscribe(func() {
		s.log.Debug("Blog cache updated")
	})

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers)
}

// mount registers the global middleware chain and the domain handlers on
// the engine.
func (s *Server) mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig(s.log))
	s.engine.Use(s.middleware.NewSessionMiddleware)
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	s.mount()

	// Warm once at startup, asynchronously; failures are logged and
	// swallowed, never fatal.
	go s.cache.Warm(context.Background(), s.apiClient)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
