package server

import (
	"github.com/gin-gonic/gin"

	"advisor-backend/internal/advice"
	"advisor-backend/internal/savedadvice"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, adviceHandler *advice.Handler, savedHandler *savedadvice.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"status":  "API is running!",
			"message": "Use POST /api/advice to get advice",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	adviceHandler.RegisterRoutes(api)
	savedHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
