package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"

	"github.com/threadforgehq/thread-generator-backend/docs"
	"github.com/threadforgehq/thread-generator-backend/internal/database"
	"github.com/threadforgehq/thread-generator-backend/internal/database/repository"
	"github.com/threadforgehq/thread-generator-backend/internal/executor"
	"github.com/threadforgehq/thread-generator-backend/internal/router"
	"github.com/threadforgehq/thread-generator-backend/internal/services"
	"github.com/threadforgehq/thread-generator-backend/internal/services/auth"
	"github.com/threadforgehq/thread-generator-backend/internal/utils"
)

// @title Thread Generator API
// @version 1.0
// @description Generates Twitter threads, tweets and bios from YouTube videos and topics

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by a token from /api/v1/auth/token, or `ApiKey ` followed by your API key

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Set Swagger host dynamically
	port := getEnv("PORT", "8000")
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", port)

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize auth service and make sure an API key exists
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	authService := auth.NewAuthService(apiKeyRepo)

	if bootstrapKey, err := authService.BootstrapAPIKey(); err != nil {
		logrus.Warnf("Failed to bootstrap API key: %v", err)
	} else if bootstrapKey != "" {
		logrus.Infof("No API keys found, created bootstrap key: %s (shown once, store it now)", bootstrapKey)
	}

	// Initialize the completion client
	anthropicService, err := services.NewAnthropicService()
	if err != nil {
		logrus.Fatalf("Failed to initialize Anthropic client: %v", err)
	}
	logrus.Infof("Anthropic client initialized (model: %s)", anthropicService.Model())

	// Initialize transcript extraction
	transcriptService := services.NewTranscriptService(executor.New(), &youtube.Client{})

	// Initialize RabbitMQ event publishing (optional)
	var publisher services.EventPublisher
	rabbitMQService, err := services.NewRabbitMQService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ, events disabled: %v", err)
	} else {
		defer rabbitMQService.Close()
		publisher = rabbitMQService
	}

	// Wire the thread generation pipeline
	threadRepo := repository.NewThreadRepository(db)
	threadService := services.NewThreadService(transcriptService, anthropicService, threadRepo, publisher)

	// Initialize router
	exportsDir := getEnv("EXPORTS_DIR", "exports")
	r := router.SetupRouter(db, threadService, authService, exportsDir)

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
