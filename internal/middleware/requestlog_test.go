package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serroba/linkstash/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	t.Run("logs method, path, and status", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		handler := middleware.RequestLogger(logger)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			}),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/links", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())

		entry := logs.All()[0]
		fields := entry.ContextMap()
		assert.Equal(t, "request", entry.Message)
		assert.Equal(t, http.MethodPost, fields["method"])
		assert.Equal(t, "/api/links", fields["path"])
		assert.Equal(t, int64(http.StatusCreated), fields["status"])
		assert.NotEmpty(t, fields["request_id"])
	})

	t.Run("defaults to 200 when the handler writes no status", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		handler := middleware.RequestLogger(logger)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
	})
}
