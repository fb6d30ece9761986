package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"agm_backend/internal/logger"
	"agm_backend/internal/models"
	"agm_backend/internal/repositories"
	"agm_backend/internal/services/dto"
	"agm_backend/internal/validator"
	"agm_backend/pkg/apperrors"
	"agm_backend/pkg/i18n"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	maxTitleLength   = 255
	maxMessageLength = 5000
)

type NotificationService interface {
	// Creation
	CreateNotification(ctx context.Context, db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	CreateBatch(ctx context.Context, db *gorm.DB, items []json.RawMessage) (*dto.BatchResult, error)

	// Queries
	ListNotifications(ctx context.Context, db *gorm.DB, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	GetUserNotifications(ctx context.Context, db *gorm.DB, userID uint, query *dto.RecipientFeedQuery) (*dto.RecipientFeedResponse, error)
	GetShareholderNotifications(ctx context.Context, db *gorm.DB, shareholderID uint, query *dto.RecipientFeedQuery) (*dto.RecipientFeedResponse, error)
	GetMeetingNotifications(ctx context.Context, db *gorm.DB, meetingID uint) ([]*dto.NotificationResponse, error)
	GetNotification(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error)
	GetUnreadCount(ctx context.Context, db *gorm.DB, userID uint) (int64, error)
	GetUnreadCountShareholder(ctx context.Context, db *gorm.DB, shareholderID uint) (int64, error)

	// Mutations
	UpdateNotification(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	DeleteNotification(ctx context.Context, db *gorm.DB, id uint) error
	MarkAsRead(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error)
	MarkAsUnread(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error)
	MarkAsSent(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error)
	MarkAllAsReadUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error)
	MarkAllAsReadShareholder(ctx context.Context, db *gorm.DB, shareholderID uint) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	shareholderRepo  repositories.ShareholderRepository
	meetingRepo      repositories.MeetingRepository
	validator        *validator.Validator
	now              func() time.Time
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	shareholderRepo repositories.ShareholderRepository,
	meetingRepo repositories.MeetingRepository,
	v *validator.Validator,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		shareholderRepo:  shareholderRepo,
		meetingRepo:      meetingRepo,
		validator:        v,
		now:              time.Now,
	}
}

// ---------------- Creation ----------------

func (s *notificationService) CreateNotification(ctx context.Context, db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	db = db.WithContext(ctx)

	notification, err := s.prepareNotification(db, req)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.CtxWithError(ctx, "failed to create notification", err)
		return nil, apperrors.ErrDatabase(err)
	}

	created, err := s.notificationRepo.FindByID(db, notification.ID)
	if err != nil {
		return nil, handleNotificationError(err, notification.ID)
	}

	recipient := models.RecipientOf(created)
	logger.CtxInfo(ctx, "notification created",
		"notification_id", created.ID,
		"type", created.Type,
		"recipient", recipient.Kind,
		"recipient_id", recipient.ID,
	)
	return buildNotificationResponse(created), nil
}

// CreateBatch decodes and creates each item on its own. A failing item,
// including one that does not decode, is recorded in the result and does not
// stop the rest.
func (s *notificationService) CreateBatch(ctx context.Context, db *gorm.DB, items []json.RawMessage) (*dto.BatchResult, error) {
	if len(items) == 0 || len(items) > dto.MaxBatchSize {
		return nil, apperrors.NewBadRequestError(i18n.MsgBatchSize, dto.MaxBatchSize)
	}

	result := dto.NewBatchResult(len(items))
	for i, raw := range items {
		created, err := s.createBatchItem(ctx, db, raw)
		if err != nil {
			logger.CtxWarn(ctx, "batch item rejected", "position", i+1, "error", err.Error())
			result.AddFailure(i+1, err)
			continue
		}
		result.AddCreated(created)
	}

	logger.CtxInfo(ctx, "notification batch processed",
		"total", result.Total,
		"success", result.Success,
		"failed", len(result.Errors),
	)
	return result, nil
}

func (s *notificationService) createBatchItem(ctx context.Context, db *gorm.DB, raw json.RawMessage) (*dto.NotificationResponse, error) {
	var req dto.CreateNotificationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, apperrors.NewBadRequestError(i18n.MsgInvalidBody, err.Error())
	}
	return s.CreateNotification(ctx, db, &req)
}

// prepareNotification runs every check a new notification must pass and
// returns the row to insert.
func (s *notificationService) prepareNotification(db *gorm.DB, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	recipient, err := models.NewRecipient(req.UserID, req.ShareholderID)
	if err != nil {
		return nil, apperrors.ErrInvalidInput("notification", i18n.MsgRecipientAmbiguous)
	}
	if recipient.IsNone() {
		return nil, apperrors.ErrInvalidInput("notification", i18n.MsgRecipientRequired)
	}

	if err := s.checkRecipient(db, recipient); err != nil {
		return nil, err
	}
	if req.MeetingID != nil {
		if err := s.checkMeeting(db, *req.MeetingID); err != nil {
			return nil, err
		}
	}

	if err := checkTitle(req.Title); err != nil {
		return nil, err
	}
	if err := checkMessage(req.Message); err != nil {
		return nil, err
	}

	data, err := marshalData(req.Data)
	if err != nil {
		return nil, err
	}

	userID, shareholderID := recipient.Columns()
	notification := &models.Notification{
		UserID:        userID,
		ShareholderID: shareholderID,
		MeetingID:     req.MeetingID,
		Type:          req.Type,
		Title:         req.Title,
		Message:       req.Message,
		Data:          data,
		IsRead:        false,
	}
	if req.IsSent != nil && *req.IsSent {
		sentAt := s.now()
		notification.IsSent = true
		notification.SentAt = &sentAt
	}

	return notification, nil
}

// ---------------- Queries ----------------

func (s *notificationService) ListNotifications(ctx context.Context, db *gorm.DB, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	query.Normalize()

	filter := repositories.NotificationFilter{
		UserID:        query.UserID,
		ShareholderID: query.ShareholderID,
		MeetingID:     query.MeetingID,
		IsRead:        query.IsRead,
		IsSent:        query.IsSent,
		Search:        query.Search,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	if query.Type != "" {
		t := query.Type
		filter.Type = &t
	}

	var (
		notifications []models.Notification
		total         int64
	)
	err := readSnapshot(db.WithContext(ctx), func(tx *gorm.DB) error {
		var err error
		notifications, total, err = s.notificationRepo.FindWithFilter(tx, filter)
		return err
	})
	if err != nil {
		logger.CtxWithError(ctx, "failed to list notifications", err)
		return nil, apperrors.ErrDatabase(err)
	}

	return buildListResponse(notifications, total, query.Pagination), nil
}

func (s *notificationService) GetUserNotifications(ctx context.Context, db *gorm.DB, userID uint, query *dto.RecipientFeedQuery) (*dto.RecipientFeedResponse, error) {
	return s.recipientFeed(ctx, db, models.UserRecipient(userID), query)
}

func (s *notificationService) GetShareholderNotifications(ctx context.Context, db *gorm.DB, shareholderID uint, query *dto.RecipientFeedQuery) (*dto.RecipientFeedResponse, error) {
	return s.recipientFeed(ctx, db, models.ShareholderRecipient(shareholderID), query)
}

// recipientFeed reads the page, its total and the recipient's overall unread
// count from one snapshot.
func (s *notificationService) recipientFeed(ctx context.Context, db *gorm.DB, recipient models.Recipient, query *dto.RecipientFeedQuery) (*dto.RecipientFeedResponse, error) {
	query.Normalize()

	userID, shareholderID := recipient.Columns()
	filter := repositories.NotificationFilter{
		UserID:        userID,
		ShareholderID: shareholderID,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	if query.UnreadOnly {
		unread := false
		filter.IsRead = &unread
	}

	var (
		notifications []models.Notification
		total         int64
		unreadCount   int64
	)
	err := readSnapshot(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := s.requireRecipient(tx, recipient); err != nil {
			return err
		}

		var err error
		notifications, total, err = s.notificationRepo.FindWithFilter(tx, filter)
		if err != nil {
			return err
		}
		unreadCount, err = s.notificationRepo.CountUnread(tx, recipient)
		return err
	})
	if err != nil {
		return nil, asServiceError(ctx, err, "failed to load recipient feed")
	}

	return &dto.RecipientFeedResponse{
		NotificationListResponse: *buildListResponse(notifications, total, query.Pagination),
		UnreadCount:              unreadCount,
	}, nil
}

func (s *notificationService) GetMeetingNotifications(ctx context.Context, db *gorm.DB, meetingID uint) ([]*dto.NotificationResponse, error) {
	db = db.WithContext(ctx)

	if err := s.requireMeeting(db, meetingID); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.FindByMeeting(db, meetingID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to load meeting notifications", err, "meeting_id", meetingID)
		return nil, apperrors.ErrDatabase(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *notificationService) GetNotification(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, handleNotificationError(err, id)
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	return s.unreadCount(ctx, db, models.UserRecipient(userID))
}

func (s *notificationService) GetUnreadCountShareholder(ctx context.Context, db *gorm.DB, shareholderID uint) (int64, error) {
	return s.unreadCount(ctx, db, models.ShareholderRecipient(shareholderID))
}

func (s *notificationService) unreadCount(ctx context.Context, db *gorm.DB, recipient models.Recipient) (int64, error) {
	db = db.WithContext(ctx)

	if err := s.requireRecipient(db, recipient); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.CountUnread(db, recipient)
	if err != nil {
		logger.CtxWithError(ctx, "failed to count unread notifications", err)
		return 0, apperrors.ErrDatabase(err)
	}
	return count, nil
}

// ---------------- Mutations ----------------

// UpdateNotification applies only the fields present in req. Giving a
// recipient of one kind clears the other kind.
func (s *notificationService) UpdateNotification(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	db = db.WithContext(ctx)

	existing, err := s.notificationRepo.FindByID(db, id)
	if err != nil {
		return nil, handleNotificationError(err, id)
	}

	fields := make(map[string]interface{})
	now := s.now()

	if err := s.applyRecipientUpdate(db, req, fields); err != nil {
		return nil, err
	}

	if req.MeetingID.Set {
		if req.MeetingID.HasValue() {
			if err := s.checkMeeting(db, req.MeetingID.Value); err != nil {
				return nil, err
			}
		}
		fields["meeting_id"] = req.MeetingID.Ptr()
	}

	if req.Type.Set {
		if !req.Type.HasValue() || !req.Type.Value.IsValid() {
			return nil, apperrors.ErrInvalidInput("notification", i18n.MsgInvalidType, string(req.Type.Value))
		}
		fields["type"] = req.Type.Value
	}

	if req.Title.Set {
		if err := checkTitle(req.Title.Value); err != nil {
			return nil, err
		}
		fields["title"] = req.Title.Value
	}

	if req.Message.Set {
		if err := checkMessage(req.Message.Value); err != nil {
			return nil, err
		}
		fields["message"] = req.Message.Value
	}

	if req.Data.Set {
		data, err := marshalData(req.Data.Value)
		if err != nil {
			return nil, err
		}
		fields["data"] = data
	}

	if req.IsRead.HasValue() {
		for k, v := range repositories.ReadFields(req.IsRead.Value, now) {
			fields[k] = v
		}
	}
	if req.IsSent.HasValue() {
		for k, v := range repositories.SentFields(req.IsSent.Value, now) {
			fields[k] = v
		}
	}

	if leavesNoRecipient(existing, fields) {
		logger.CtxWarn(ctx, "notification updated without a recipient", "notification_id", id)
	}

	if err := s.notificationRepo.Update(db, id, fields); err != nil {
		return nil, handleNotificationError(err, id)
	}

	return s.reload(ctx, db, id)
}

func (s *notificationService) applyRecipientUpdate(db *gorm.DB, req *dto.UpdateNotificationRequest, fields map[string]interface{}) error {
	if req.UserID.HasValue() && req.ShareholderID.HasValue() {
		return apperrors.ErrInvalidInput("notification", i18n.MsgRecipientAmbiguous)
	}

	switch {
	case req.UserID.HasValue():
		if err := s.checkRecipient(db, models.UserRecipient(req.UserID.Value)); err != nil {
			return err
		}
		fields["user_id"] = req.UserID.Value
		fields["shareholder_id"] = nil
	case req.ShareholderID.HasValue():
		if err := s.checkRecipient(db, models.ShareholderRecipient(req.ShareholderID.Value)); err != nil {
			return err
		}
		fields["shareholder_id"] = req.ShareholderID.Value
		fields["user_id"] = nil
	}

	if req.UserID.Set && req.UserID.Null {
		fields["user_id"] = nil
	}
	if req.ShareholderID.Set && req.ShareholderID.Null {
		fields["shareholder_id"] = nil
	}
	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, db *gorm.DB, id uint) error {
	db = db.WithContext(ctx)

	if _, err := s.notificationRepo.FindByID(db, id); err != nil {
		return handleNotificationError(err, id)
	}
	if err := s.notificationRepo.Delete(db, id); err != nil {
		return handleNotificationError(err, id)
	}

	logger.CtxInfo(ctx, "notification deleted", "notification_id", id)
	return nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error) {
	return s.toggle(ctx, db, id, func(tx *gorm.DB) error {
		return s.notificationRepo.SetRead(tx, id, true)
	})
}

func (s *notificationService) MarkAsUnread(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error) {
	return s.toggle(ctx, db, id, func(tx *gorm.DB) error {
		return s.notificationRepo.SetRead(tx, id, false)
	})
}

func (s *notificationService) MarkAsSent(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error) {
	return s.toggle(ctx, db, id, func(tx *gorm.DB) error {
		return s.notificationRepo.SetSent(tx, id, true)
	})
}

func (s *notificationService) toggle(ctx context.Context, db *gorm.DB, id uint, apply func(db *gorm.DB) error) (*dto.NotificationResponse, error) {
	db = db.WithContext(ctx)

	if _, err := s.notificationRepo.FindByID(db, id); err != nil {
		return nil, handleNotificationError(err, id)
	}
	if err := apply(db); err != nil {
		return nil, handleNotificationError(err, id)
	}
	return s.reload(ctx, db, id)
}

func (s *notificationService) MarkAllAsReadUser(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	return s.markAllAsRead(ctx, db, models.UserRecipient(userID))
}

func (s *notificationService) MarkAllAsReadShareholder(ctx context.Context, db *gorm.DB, shareholderID uint) (int64, error) {
	return s.markAllAsRead(ctx, db, models.ShareholderRecipient(shareholderID))
}

func (s *notificationService) markAllAsRead(ctx context.Context, db *gorm.DB, recipient models.Recipient) (int64, error) {
	db = db.WithContext(ctx)

	if err := s.requireRecipient(db, recipient); err != nil {
		return 0, err
	}

	count, err := s.notificationRepo.MarkAllAsRead(db, recipient)
	if err != nil {
		logger.CtxWithError(ctx, "failed to mark notifications as read", err)
		return 0, apperrors.ErrDatabase(err)
	}

	logger.CtxInfo(ctx, "notifications marked as read",
		"recipient", recipient.Kind,
		"recipient_id", recipient.ID,
		"count", count,
	)
	return count, nil
}

// ---------------- Reference checks ----------------

// checkRecipient rejects a reference to a missing user or shareholder as bad
// input.
func (s *notificationService) checkRecipient(db *gorm.DB, recipient models.Recipient) error {
	found, msg, err := s.recipientExists(db, recipient)
	if err != nil {
		return apperrors.ErrDatabase(err)
	}
	if !found {
		return apperrors.ErrInvalidInput(string(recipient.Kind), msg, recipient.ID)
	}
	return nil
}

// requireRecipient is checkRecipient for lookups: a miss is a 404.
func (s *notificationService) requireRecipient(db *gorm.DB, recipient models.Recipient) error {
	found, _, err := s.recipientExists(db, recipient)
	if err != nil {
		return apperrors.ErrDatabase(err)
	}
	if !found {
		msg := i18n.MsgUserNotFound
		if recipient.Kind == models.RecipientShareholder {
			msg = i18n.MsgShareholderNotFound
		}
		return apperrors.ErrNotFound(string(recipient.Kind), msg, recipient.ID)
	}
	return nil
}

func (s *notificationService) recipientExists(db *gorm.DB, recipient models.Recipient) (bool, string, error) {
	switch recipient.Kind {
	case models.RecipientUser:
		found, err := s.userRepo.Exists(db, recipient.ID)
		return found, i18n.MsgUserNotExist, err
	case models.RecipientShareholder:
		found, err := s.shareholderRepo.Exists(db, recipient.ID)
		return found, i18n.MsgShareholderNotExist, err
	}
	return false, i18n.MsgRecipientRequired, nil
}

func (s *notificationService) checkMeeting(db *gorm.DB, meetingID uint) error {
	found, err := s.meetingRepo.Exists(db, meetingID)
	if err != nil {
		return apperrors.ErrDatabase(err)
	}
	if !found {
		return apperrors.ErrInvalidInput("meeting", i18n.MsgMeetingNotExist, meetingID)
	}
	return nil
}

func (s *notificationService) requireMeeting(db *gorm.DB, meetingID uint) error {
	found, err := s.meetingRepo.Exists(db, meetingID)
	if err != nil {
		return apperrors.ErrDatabase(err)
	}
	if !found {
		return apperrors.ErrNotFound("meeting", i18n.MsgMeetingNotFound, meetingID)
	}
	return nil
}

// ---------------- Helpers ----------------

func (s *notificationService) reload(ctx context.Context, db *gorm.DB, id uint) (*dto.NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(db, id)
	if err != nil {
		return nil, handleNotificationError(err, id)
	}
	logger.CtxDebug(ctx, "notification updated", "notification_id", id)
	return buildNotificationResponse(notification), nil
}

// checkTitle and checkMessage accept text as the client sent it. Only blank
// or over-long values are rejected; nothing is rewritten.
func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewBadRequestError(i18n.MsgTitleEmpty)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return apperrors.NewBadRequestError(i18n.MsgTitleTooLong, maxTitleLength)
	}
	return nil
}

func checkMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return apperrors.NewBadRequestError(i18n.MsgMessageEmpty)
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return apperrors.NewBadRequestError(i18n.MsgMessageTooLong, maxMessageLength)
	}
	return nil
}

// leavesNoRecipient reports whether applying fields to n would leave it
// with neither a user nor a shareholder.
func leavesNoRecipient(n *models.Notification, fields map[string]interface{}) bool {
	hasUser := n.UserID != nil
	if v, ok := fields["user_id"]; ok {
		hasUser = !isNil(v)
	}
	hasShareholder := n.ShareholderID != nil
	if v, ok := fields["shareholder_id"]; ok {
		hasShareholder = !isNil(v)
	}
	return !hasUser && !hasShareholder
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	p, ok := v.(*uint)
	return ok && p == nil
}

func marshalData(data map[string]interface{}) (datatypes.JSON, error) {
	if data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, apperrors.NewBadRequestError(i18n.MsgInvalidBody, err.Error())
	}
	return datatypes.JSON(raw), nil
}

func readSnapshot(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
}

func buildListResponse(notifications []models.Notification, total int64, page dto.Pagination) *dto.NotificationListResponse {
	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page.Page,
		Limit:         page.Limit,
		TotalPages:    dto.CalculateTotalPages(total, page.Limit),
	}
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	response := &dto.NotificationResponse{
		ID:            n.ID,
		UserID:        n.UserID,
		ShareholderID: n.ShareholderID,
		MeetingID:     n.MeetingID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		IsSent:        n.IsSent,
		SentAt:        n.SentAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}

	if len(n.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(n.Data, &data); err == nil {
			response.Data = data
		}
	}

	if n.User != nil {
		response.User = &dto.UserSummary{
			ID:       n.User.ID,
			Email:    n.User.Email,
			FullName: n.User.FullName,
		}
	}
	if n.Shareholder != nil {
		response.Shareholder = &dto.ShareholderSummary{
			ID:              n.Shareholder.ID,
			ShareholderCode: n.Shareholder.ShareholderCode,
			FullName:        n.Shareholder.FullName,
			Email:           n.Shareholder.Email,
		}
	}
	if n.Meeting != nil {
		response.Meeting = &dto.MeetingSummary{
			ID:          n.Meeting.ID,
			MeetingCode: n.Meeting.MeetingCode,
			Title:       n.Meeting.Title,
			MeetingDate: n.Meeting.MeetingDate,
			Status:      n.Meeting.Status,
		}
	}

	return response
}

func handleNotificationError(err error, id uint) error {
	if errors.Is(err, repositories.ErrNotificationNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound("notification", i18n.MsgNotificationNotFound, id)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.ErrDatabase(err)
}

// asServiceError passes AppErrors through and logs anything else as a
// database failure.
func asServiceError(ctx context.Context, err error, msg string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	logger.CtxWithError(ctx, msg, err)
	return apperrors.ErrDatabase(err)
}
