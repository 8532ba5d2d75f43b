package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveHealth(t *testing.T, ping func(context.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", healthCheck(ping))

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	return recorder
}

func TestHealthCheckOK(t *testing.T) {
	recorder := serveHealth(t, func(ctx context.Context) error { return nil })

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestHealthCheckDegraded(t *testing.T) {
	recorder := serveHealth(t, func(ctx context.Context) error {
		return errors.New("server selection timeout")
	})

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
}

func TestHealthCheckBoundsThePing(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	serveHealth(t, func(ctx context.Context) error {
		deadline, hasDeadline = ctx.Deadline()
		return nil
	})

	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(healthPingTimeout), deadline, time.Second)
}
