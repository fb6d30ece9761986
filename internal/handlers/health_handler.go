package handlers

import (
	"context"
	"net/http"
	"time"

	"agm_backend/internal/logger"
	"agm_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health pings the database with a short timeout. It is not behind the
// auth guard.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Status: "ok", Database: "up"}
	code := http.StatusOK

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(ctx, "health check: database unreachable", err)
		status = healthStatus{Status: "degraded", Database: "down"}
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.Result[healthStatus]{
		Success: err == nil,
		Message: status.Status,
		Data:    status,
	})
}
