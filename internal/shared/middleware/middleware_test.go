package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// captureLogs redirects the global logger into a buffer for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestLoggerLine(t *testing.T) {
	buf := captureLogs(t)
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping?limit=5&page=2", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, `"path":"/ping?limit=5&page=2"`, "query string belongs in the log")
	assert.Contains(t, line, `"request_id":"req-42"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"method":"GET"`)
}

func TestRequestIDGenerated(t *testing.T) {
	captureLogs(t)
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "an id is minted when the caller sends none")
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	buf := captureLogs(t)
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
}
