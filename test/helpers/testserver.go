package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agm_backend/internal/app"
	"agm_backend/internal/auth"
	"agm_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const TestJWTSecret = "test-secret-for-notification-api"

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

// NewTestServer runs the full router against a fresh SQLite database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := TestConfig()
	db := NewTestDB(t)

	server := httptest.NewServer(app.SetupRouter(cfg, db))
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Tokens: auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute),
	}
}

func TestConfig() *config.Config {
	var cfg config.Config
	cfg.Server.Port = 8080
	cfg.Server.Env = "test"
	cfg.Database.DSN = "sqlite://memory"
	cfg.JWT.Secret = TestJWTSecret
	cfg.JWT.TTL = 15
	cfg.CORS.AllowedOrigins = []string{"*"}
	return &cfg
}

// Token issues a valid bearer token for userID.
func (ts *TestServer) Token(t *testing.T, userID uint) string {
	t.Helper()
	token, err := ts.Tokens.GenerateToken(userID, "admin")
	require.NoError(t, err)
	return token
}

// SendRequest sends body as JSON and returns the response with its body read.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "build request")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "send request")
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "read response body")

	return res, string(resBody)
}

// DecodeData unmarshals the data field of an envelope into out.
func DecodeData(t *testing.T, body string, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope), body)
	require.NoError(t, json.Unmarshal(envelope.Data, out), body)
}
