package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"agm_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestAppError_Messages(t *testing.T) {
	err := ErrNotFound("notification", i18n.MsgNotificationNotFound, 9)

	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "[notification:NOT_FOUND] Notification 9 not found", err.Error())
	assert.Equal(t, "Notification 9 not found", err.Localize(language.English))
	assert.Equal(t, "Không tìm thấy thông báo 9", err.Localize(language.Vietnamese))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("service: %w", ErrDatabase(cause))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDatabaseError, appErr.Code)
	assert.ErrorIs(t, err, cause)

	_, ok = AsAppError(cause)
	assert.False(t, ok)
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error, lang string) (*httptest.ResponseRecorder, ErrorResponse) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Accept-Language", lang)
		HandleError(c, err)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	w, body := render(ValidationError(map[string]string{"title": "required"}), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, CodeValidationFailed, body.Code)
	assert.NotNil(t, body.Details)

	w, body = render(ErrInvalidInput("user", i18n.MsgUserNotExist, 3), "vi")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidInput, body.Code)
	assert.Equal(t, i18n.Sprintf(language.Vietnamese, i18n.MsgUserNotExist, 3), body.Message)

	SetDebug(false)
	w, body = render(errors.New("raw failure"), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeInternalError, body.Code)
	assert.Nil(t, body.Details)
}
