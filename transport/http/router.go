package http

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deepgram-starters/text-to-speech-go/service"
)

// SetupRouter sets up the Gin router. assetsDir, when non-empty, is
// served under /assets for the built frontend.
func SetupRouter(handlers *Handlers, sessions *service.SessionService, log *slog.Logger, assetsDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Session-Nonce"},
	}))

	router.GET("/", handlers.Index)

	if assetsDir != "" {
		router.Static("/assets", assetsDir)
	}

	api := router.Group("/api")
	{
		api.GET("/session", handlers.Session)
		api.GET("/metadata", handlers.Metadata)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(AuthMiddleware(sessions))
	{
		protected.POST("/text-to-speech", handlers.TextToSpeech)
	}

	return router
}
