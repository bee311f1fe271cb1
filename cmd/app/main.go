package main

import (
	"os"
	"os/signal"
	"syscall"

	"Quickblog/internal/config"
	"Quickblog/pkg/log"
	"Quickblog/pkg/quickblog"
	"Quickblog/pkg/sessionstore"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger, "./web/views")
	validator := config.NewValidator()
	apiClient := quickblog.New(logger)

	var sessions sessionstore.ISessionStore
	if os.Getenv("SESSION_BACKEND") == "memory" {
		sessions = sessionstore.NewMemory()
	} else {
		sessions = sessionstore.NewRedis()
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithAPIClient(apiClient),
		config.WithSessionStore(sessions),
		config.WithCache(),
		config.WithSanitizer(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
