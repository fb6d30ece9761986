package handlers

import (
	"encoding/json"
	"net/http"

	"agm_backend/internal/services"
	"agm_backend/internal/services/dto"
	"agm_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// RegisterRoutes mounts /notifications behind the given auth guard.
func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.POST("", h.CreateNotification)
		notifications.GET("", h.ListNotifications)
		notifications.POST("/batch", h.CreateBatch)

		notifications.GET("/user/:userId", h.GetUserNotifications)
		notifications.GET("/user/:userId/unread-count", h.GetUnreadCount)
		notifications.PUT("/user/:userId/read-all", h.MarkAllAsReadUser)

		notifications.GET("/shareholder/:shareholderId", h.GetShareholderNotifications)
		notifications.GET("/shareholder/:shareholderId/unread-count", h.GetUnreadCountShareholder)
		notifications.PUT("/shareholder/:shareholderId/read-all", h.MarkAllAsReadShareholder)

		notifications.GET("/meeting/:meetingId", h.GetMeetingNotifications)

		notifications.GET("/:id", h.GetNotification)
		notifications.PUT("/:id", h.UpdateNotification)
		notifications.DELETE("/:id", h.DeleteNotification)
		notifications.PUT("/:id/read", h.MarkAsRead)
		notifications.PUT("/:id/unread", h.MarkAsUnread)
		notifications.PUT("/:id/send", h.MarkAsSent)
	}
}

// --- Creation ---

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusCreated, notification, i18n.MsgCreated)
}

// CreateBatch takes a JSON array of creation payloads. Items are decoded one
// by one, so a malformed item is reported in the summary like any other
// failure; only a body that is not an array is rejected outright.
func (h *NotificationHandler) CreateBatch(c *gin.Context) {
	var items []json.RawMessage
	if err := c.ShouldBindJSON(&items); err != nil {
		h.HandleServiceError(c, badBody(err))
		return
	}

	result, err := h.notificationService.CreateBatch(c.Request.Context(), h.GetDB(c), items)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result.Localize(h.Language(c))
	respond(h.BaseHandler, c, http.StatusCreated, result, i18n.MsgBatchProcessed, result.Success, result.Total)
}

// --- Queries ---

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var query dto.NotificationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.notificationService.ListNotifications(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, list, i18n.MsgListed)
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userID, err := ParseParamID(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var query dto.RecipientFeedQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	feed, err := h.notificationService.GetUserNotifications(c.Request.Context(), h.GetDB(c), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, feed, i18n.MsgListed)
}

func (h *NotificationHandler) GetShareholderNotifications(c *gin.Context) {
	shareholderID, err := ParseParamID(c, "shareholderId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var query dto.RecipientFeedQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	feed, err := h.notificationService.GetShareholderNotifications(c.Request.Context(), h.GetDB(c), shareholderID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, feed, i18n.MsgListed)
}

func (h *NotificationHandler) GetMeetingNotifications(c *gin.Context) {
	meetingID, err := ParseParamID(c, "meetingId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notifications, err := h.notificationService.GetMeetingNotifications(c.Request.Context(), h.GetDB(c), meetingID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, notifications, i18n.MsgListed)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notification, err := h.notificationService.GetNotification(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, notification, i18n.MsgFetched)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, err := ParseParamID(c, "userId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	count, err := h.notificationService.GetUnreadCount(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, dto.UnreadCountResponse{UnreadCount: count}, i18n.MsgUnreadCount)
}

func (h *NotificationHandler) GetUnreadCountShareholder(c *gin.Context) {
	shareholderID, err := ParseParamID(c, "shareholderId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	count, err := h.notificationService.GetUnreadCountShareholder(c.Request.Context(), h.GetDB(c), shareholderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, dto.UnreadCountResponse{UnreadCount: count}, i18n.MsgUnreadCount)
}

// --- Mutations ---

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleServiceError(c, badBody(err))
		return
	}

	notification, err := h.notificationService.UpdateNotification(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, notification, i18n.MsgUpdated)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(h.BaseHandler, c, http.StatusOK, dto.DeleteNotificationResponse{ID: id}, i18n.MsgDeleted)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	h.toggle(c, h.notificationService.MarkAsRead, i18n.MsgMarkedRead)
}

func (h *NotificationHandler) MarkAsUnread(c *gin.Context) {
	h.toggle(c, h.notificationService.MarkAsUnread, i18n.MsgMarkedUnread)
}

func (h *NotificationHandler) MarkAsSent(c *gin.Context) {
	h.toggle(c, h.notificationService.MarkAsSent, i18n.MsgMarkedSent)
}

func (h *NotificationHandler) MarkAllAsReadUser(c *gin.Context) {
	h.markAll(c, "userId", h.notificationService.MarkAllAsReadUser)
}

func (h *NotificationHandler) MarkAllAsReadShareholder(c *gin.Context) {
	h.markAll(c, "shareholderId", h.notificationService.MarkAllAsReadShareholder)
}
