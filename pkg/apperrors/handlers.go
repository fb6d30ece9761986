package apperrors

import (
	"log/slog"

	"agm_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// ErrorResponse mirrors the success envelope so every response has the same
// top-level shape.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    ErrorCode   `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.ErrorContext(c.Request.Context(), "server error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
	}

	details := appErr.Details
	if appErr.HTTPCode >= 500 && !h.Debug {
		details = nil
	}

	tag := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Localize(tag),
		Data:    nil,
		Code:    appErr.Code,
		Details: details,
	})
}

var debug bool

// SetDebug controls whether details of 5xx errors reach the client.
func SetDebug(v bool) {
	debug = v
}

func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debug}
	handler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
