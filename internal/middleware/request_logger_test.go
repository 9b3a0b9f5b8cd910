package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(log logrus.FieldLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	log, _ := test.NewNullLogger()
	router := setupRouter(log)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRequestIDPropagated(t *testing.T) {
	log, hook := test.NewNullLogger()
	router := setupRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, "/ok", entry.Data["path"])
}

func TestRequestLoggerLevels(t *testing.T) {
	testCases := []struct {
		path  string
		level logrus.Level
	}{
		{path: "/ok", level: logrus.InfoLevel},
		{path: "/missing", level: logrus.WarnLevel},
		{path: "/boom", level: logrus.ErrorLevel},
	}

	for _, tt := range testCases {
		t.Run(tt.path, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			router := setupRouter(log)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Len(t, hook.Entries, 1)
			assert.Equal(t, tt.level, hook.LastEntry().Level)
		})
	}
}
