package i18n

// Error messages.
const (
	MsgNotificationNotFound   = "Notification %d not found"
	MsgUserNotFound           = "User %d not found"
	MsgShareholderNotFound    = "Shareholder %d not found"
	MsgMeetingNotFound        = "Meeting %d not found"
	MsgUserNotExist           = "User %d does not exist"
	MsgShareholderNotExist    = "Shareholder %d does not exist"
	MsgMeetingNotExist        = "Meeting %d does not exist"
	MsgRecipientRequired      = "Either userId or shareholderId is required"
	MsgRecipientAmbiguous     = "A notification targets either a user or a shareholder, not both"
	MsgTitleEmpty             = "Title must not be empty"
	MsgMessageEmpty           = "Message must not be empty"
	MsgTitleTooLong           = "Title must be at most %d characters"
	MsgMessageTooLong         = "Message must be at most %d characters"
	MsgInvalidType            = "Invalid notification type: %s"
	MsgInvalidPathParam       = "Invalid path parameter: %s must be a positive integer"
	MsgInvalidBody            = "Invalid request body: %s"
	MsgInvalidQuery           = "Invalid query parameters: %s"
	MsgBatchSize              = "Batch must contain between 1 and %d notifications"
	MsgBatchItemFailed        = "Notification #%d: %s"
	MsgValidationFailed       = "Validation failed"
	MsgInternalError          = "Internal server error"
	MsgDatabaseError          = "Database operation failed"
	MsgAuthHeaderMissing      = "Authorization header missing or invalid"
	MsgInvalidToken           = "Invalid or expired token"
	MsgTokenExpired           = "Token has expired"
)

// Success messages.
const (
	MsgCreated         = "Notification created successfully"
	MsgListed          = "Notifications retrieved successfully"
	MsgFetched         = "Notification retrieved successfully"
	MsgUpdated         = "Notification updated successfully"
	MsgDeleted         = "Notification deleted successfully"
	MsgMarkedRead      = "Notification marked as read"
	MsgMarkedUnread    = "Notification marked as unread"
	MsgMarkedSent      = "Notification marked as sent"
	MsgMarkedAllRead   = "%d notifications marked as read"
	MsgUnreadCount     = "Unread count retrieved successfully"
	MsgBatchProcessed  = "Batch processed: %d of %d notifications created"
)

var vietnamese = map[string]string{
	MsgNotificationNotFound: "Không tìm thấy thông báo %d",
	MsgUserNotFound:         "Không tìm thấy người dùng %d",
	MsgShareholderNotFound:  "Không tìm thấy cổ đông %d",
	MsgMeetingNotFound:      "Không tìm thấy cuộc họp %d",
	MsgUserNotExist:         "Người dùng %d không tồn tại",
	MsgShareholderNotExist:  "Cổ đông %d không tồn tại",
	MsgMeetingNotExist:      "Cuộc họp %d không tồn tại",
	MsgRecipientRequired:    "Phải có userId hoặc shareholderId",
	MsgRecipientAmbiguous:   "Thông báo chỉ được gửi cho người dùng hoặc cổ đông, không phải cả hai",
	MsgTitleEmpty:           "Tiêu đề không được để trống",
	MsgMessageEmpty:         "Nội dung không được để trống",
	MsgTitleTooLong:         "Tiêu đề không được dài quá %d ký tự",
	MsgMessageTooLong:       "Nội dung không được dài quá %d ký tự",
	MsgInvalidType:          "Loại thông báo không hợp lệ: %s",
	MsgInvalidPathParam:     "Tham số đường dẫn không hợp lệ: %s phải là số nguyên dương",
	MsgInvalidBody:          "Dữ liệu yêu cầu không hợp lệ: %s",
	MsgInvalidQuery:         "Tham số truy vấn không hợp lệ: %s",
	MsgBatchSize:            "Lô phải chứa từ 1 đến %d thông báo",
	MsgBatchItemFailed:      "Thông báo #%d: %s",
	MsgValidationFailed:     "Dữ liệu không hợp lệ",
	MsgInternalError:        "Lỗi máy chủ nội bộ",
	MsgDatabaseError:        "Thao tác cơ sở dữ liệu thất bại",
	MsgAuthHeaderMissing:    "Thiếu hoặc sai tiêu đề Authorization",
	MsgInvalidToken:         "Mã xác thực không hợp lệ hoặc đã hết hạn",
	MsgTokenExpired:         "Mã xác thực đã hết hạn",

	MsgCreated:        "Tạo thông báo thành công",
	MsgListed:         "Lấy danh sách thông báo thành công",
	MsgFetched:        "Lấy thông báo thành công",
	MsgUpdated:        "Cập nhật thông báo thành công",
	MsgDeleted:        "Xóa thông báo thành công",
	MsgMarkedRead:     "Đã đánh dấu thông báo là đã đọc",
	MsgMarkedUnread:   "Đã đánh dấu thông báo là chưa đọc",
	MsgMarkedSent:     "Đã đánh dấu thông báo là đã gửi",
	MsgMarkedAllRead:  "Đã đánh dấu %d thông báo là đã đọc",
	MsgUnreadCount:    "Lấy số thông báo chưa đọc thành công",
	MsgBatchProcessed: "Đã xử lý lô: tạo %d trên %d thông báo",
}
