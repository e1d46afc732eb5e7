package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGet_NopBeforeInit(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestRequestIDMiddleware_SetsHeaderAndContext(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestLeveled_WritesKeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLeveled(zap.New(core))

	l.Debug("performing request", "method", "GET", "url", "http://upstream/lookup.php")
	l.Warn("retrying", "attempt", 1)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "performing request", entries[0].Message)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}
