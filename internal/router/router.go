package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/threadforgehq/thread-generator-backend/internal/database/repository"
	"github.com/threadforgehq/thread-generator-backend/internal/handlers"
	"github.com/threadforgehq/thread-generator-backend/internal/middleware"
	"github.com/threadforgehq/thread-generator-backend/internal/services"
	"github.com/threadforgehq/thread-generator-backend/internal/services/auth"
	"github.com/threadforgehq/thread-generator-backend/internal/services/excel"
)

// SetupRouter configures the Gin router with all endpoints
func SetupRouter(db *gorm.DB, threadService *services.ThreadService, authService *auth.AuthService, exportsDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories and services backing the management API
	threadRepo := repository.NewThreadRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	excelService := excel.NewExcelService(threadRepo, exportsDir)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	threadHandler := handlers.NewThreadHandler(threadService)
	generateHandler := handlers.NewGenerateHandler(threadService)
	historyHandler := handlers.NewHistoryHandler(threadRepo, excelService)
	authHandler := handlers.NewAuthHandler(authService)
	apiKeyHandler := handlers.NewAPIKeyHandler(authService, apiKeyRepo)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Core contract: thread generation at the root path
	r.POST("/generate-thread", threadHandler.GenerateThread)

	// API v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Generation routes (public, like the root contract)
		api.POST("/generate-thread", threadHandler.GenerateThread)
		api.POST("/generate-tweet", generateHandler.GenerateTweet)
		api.POST("/generate-bio", generateHandler.GenerateBio)

		// Auth routes (public; the API key travels in the body)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/token", authHandler.Token)
		}

		// Protected management routes
		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			threads := protected.Group("/threads")
			{
				threads.GET("", historyHandler.ListThreads)
				threads.GET("/export", historyHandler.ExportThreads)
				threads.GET("/:id", historyHandler.GetThread)
			}

			apiKeys := protected.Group("/api-keys")
			{
				apiKeys.POST("", apiKeyHandler.CreateAPIKey)
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.DELETE("/:id", apiKeyHandler.DeleteAPIKey)
			}
		}
	}

	return r
}
