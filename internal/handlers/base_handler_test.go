package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agm_backend/internal/handlers"
	"agm_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value string
		want  uint
		ok    bool
	}{
		{"1", 1, true},
		{"4294967295", 4294967295, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			got, err := handlers.ParseParamID(c, "id")
			if !tt.ok {
				appErr, isApp := apperrors.AsAppError(err)
				require.True(t, isApp)
				assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
				assert.Equal(t, "Invalid path parameter: id must be a positive integer", appErr.Localize(language.English))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDB_PanicsWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h := handlers.NewBaseHandler(nil)
	assert.Panics(t, func() { h.GetDB(c) })
}
