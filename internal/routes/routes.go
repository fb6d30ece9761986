package routes

import (
	"agm_backend/internal/handlers"
	"agm_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public health check and the guarded /api/v1 API.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.NotificationHandler.RegisterRoutes(api, authMiddleware)
	}

	logger.Debug("routes registered", "count", len(ginRouter.Routes()))
}
