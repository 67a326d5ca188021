//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"coachdesk/internal/handler/httperr"
	"coachdesk/internal/handler/middleware"
	"coachdesk/internal/pkg/config"
	"coachdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLoggingMiddleware(t *testing.T) {
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, seen)
	httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: seen})

	t.Run("reuses a well-formed upstream id", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "upstream-1234abcd"})
		assert.Equal(t, "upstream-1234abcd", seen)
		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "upstream-1234abcd"})
	})

	t.Run("replaces a malformed upstream id", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "bad id with spaces"})
		assert.NotEqual(t, "bad id with spaces", seen)
		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: seen})
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://admin.coachdesk.test"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}))
	router.POST("/api/notifications/messages", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.PerformRequestWithHeaders(t, router, http.MethodOptions, "/api/notifications/messages", nil, map[string]string{
		"Origin":                         "http://admin.coachdesk.test",
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": middleware.CallerHeader,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{
		"Access-Control-Allow-Origin": "http://admin.coachdesk.test",
	})
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), strings.ToLower(middleware.CallerHeader))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "public error is rendered once",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusNotFound, errors.New("no channel"), "Channel not configured", nil)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Channel not configured",
		},
		{
			name: "recorded error without a write is rendered",
			handler: func(c *gin.Context) {
				_ = c.Error(gin.Error{
					Err:  errors.New("db down"),
					Type: gin.ErrorTypePublic,
					Meta: httperr.NewResponse(http.StatusInternalServerError, "Internal error", nil),
				})
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal error",
		},
		{
			name:       "panic is recovered",
			handler:    func(*gin.Context) { panic("boom") },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
			router.GET("/x", tt.handler)

			w := httptest.PerformRequest(t, router, http.MethodGet, "/x", nil)
			httptest.AssertErrorResponse(t, w, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestMaxBodySize(t *testing.T) {
	router := gin.New()
	router.POST("/upload", middleware.MaxBodySize(8), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/upload", "12345678")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/upload", "123456789")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
