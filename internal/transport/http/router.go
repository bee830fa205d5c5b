package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-n/internal/transport/http/middleware"
	"go.uber.org/zap"
)

// RouterConfig holds everything the spectator router needs.
type RouterConfig struct {
	Watch          *WatchHandler
	Auth           gin.HandlerFunc
	WebSocket      gin.HandlerFunc
	AllowedOrigins []string
	Log            *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.Log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Watch / Spectator Routes
	protected := router.Group("/")
	protected.Use(cfg.Auth)
	{
		protected.GET("/api/watch", cfg.Watch.GetGame)
		protected.GET("/api/watch/board", cfg.Watch.GetBoard)
		protected.GET("/ws/watch", cfg.WebSocket)
	}

	return router
}
