package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"vi", language.Vietnamese},
		{"vi-VN,vi;q=0.9,en;q=0.8", language.Vietnamese},
		{"en-US,en;q=0.9", language.English},
		{"fr-FR", language.English},
		{";;;garbage", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAcceptLanguage(tt.header))
		})
	}
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "Notification 12345 not found", Sprintf(language.English, MsgNotificationNotFound, 12345))
	assert.Equal(t, "Không tìm thấy thông báo 7", Sprintf(language.Vietnamese, MsgNotificationNotFound, 7))
	assert.Equal(t, MsgCreated, Sprintf(language.English, MsgCreated))
	assert.Equal(t, "Title must be at most 255 characters", Sprintf(language.English, MsgTitleTooLong, 255))
	assert.Equal(t, "Tiêu đề không được dài quá 255 ký tự", Sprintf(language.Vietnamese, MsgTitleTooLong, 255))
}

func TestEveryKeyHasVietnamese(t *testing.T) {
	for _, key := range []string{
		MsgNotificationNotFound, MsgUserNotFound, MsgShareholderNotFound, MsgMeetingNotFound,
		MsgUserNotExist, MsgShareholderNotExist, MsgMeetingNotExist,
		MsgRecipientRequired, MsgRecipientAmbiguous, MsgInvalidType,
		MsgTitleEmpty, MsgMessageEmpty, MsgTitleTooLong, MsgMessageTooLong,
		MsgBatchSize, MsgBatchItemFailed, MsgCreated, MsgBatchProcessed, MsgMarkedAllRead,
	} {
		_, ok := vietnamese[key]
		assert.True(t, ok, "missing translation for %q", key)
	}
}
