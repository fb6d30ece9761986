package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"agm_backend/pkg/apperrors"
	"agm_backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestOptional_DistinguishesAbsentNullAndValue(t *testing.T) {
	var req UpdateNotificationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"userId": 4, "meetingId": null, "title": ""}`), &req))

	assert.True(t, req.UserID.HasValue())
	assert.Equal(t, uint(4), req.UserID.Value)

	assert.True(t, req.MeetingID.Set)
	assert.True(t, req.MeetingID.Null)
	assert.Nil(t, req.MeetingID.Ptr())

	assert.True(t, req.Title.HasValue())
	assert.Equal(t, "", req.Title.Value)

	assert.False(t, req.ShareholderID.Set)
	assert.False(t, req.IsRead.Set)

	var bad UpdateNotificationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"userId": "four"}`), &bad))
}

func TestOptional_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
		C Optional[int] `json:"c"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null,"c":null}`, string(out))
}

func TestPagination(t *testing.T) {
	tests := []struct {
		in         Pagination
		page, size int
	}{
		{Pagination{}, 1, 10},
		{Pagination{Page: -2, Limit: -1}, 1, 10},
		{Pagination{Page: 3, Limit: 20}, 3, 20},
		{Pagination{Page: 1, Limit: 1000}, 1, MaxLimit},
	}
	for _, tt := range tests {
		p := tt.in
		p.Normalize()
		assert.Equal(t, tt.page, p.Page)
		assert.Equal(t, tt.size, p.Limit)
	}

	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestBatchResult(t *testing.T) {
	r := NewBatchResult(3)
	r.AddCreated(&NotificationResponse{ID: 1})
	r.AddFailure(2, apperrors.ErrInvalidInput("user", i18n.MsgUserNotExist, 5))
	r.AddFailure(3, apperrors.ErrDatabase(errors.New("UNIQUE constraint failed")))

	assert.Equal(t, 1, r.Success)
	assert.Equal(t, []string{
		"Notification #2: User 5 does not exist",
		"Notification #3: UNIQUE constraint failed",
	}, r.Errors)

	r.Localize(language.Vietnamese)
	require.Len(t, r.Errors, 2)
	assert.Equal(t,
		i18n.Sprintf(language.Vietnamese, i18n.MsgBatchItemFailed, 2, i18n.Sprintf(language.Vietnamese, i18n.MsgUserNotExist, 5)),
		r.Errors[0])

	out, err := json.Marshal(NewBatchResult(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":0,"success":0,"errors":[],"createdNotifications":[]}`, string(out))
}
