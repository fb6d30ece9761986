package handlers

import (
	"context"
	"net/http"

	"agm_backend/internal/services/dto"
	"agm_backend/pkg/apperrors"
	"agm_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type toggleFunc func(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error)

type markAllFunc func(ctx context.Context, db *gorm.DB, recipientID uint) (int64, error)

func (h *NotificationHandler) toggle(c *gin.Context, fn toggleFunc, msgKey string) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := fn(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, notification, msgKey)
}

func (h *NotificationHandler) markAll(c *gin.Context, param string, fn markAllFunc) {
	recipientID, err := ParseParamID(c, param)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	count, err := fn(c.Request.Context(), h.GetDB(c), recipientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, dto.MarkAllReadResponse{Count: count}, i18n.MsgMarkedAllRead, count)
}

func badBody(err error) error {
	return apperrors.NewBadRequestError(i18n.MsgInvalidBody, err.Error())
}
