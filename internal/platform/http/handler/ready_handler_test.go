package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		checks         []Check
		expectedStatus int
		expected       ReadyResponse
	}{
		{
			name:           "all healthy",
			checks:         []Check{{Name: "db", Ping: ok}, {Name: "redis", Ping: ok}},
			expectedStatus: http.StatusOK,
			expected:       ReadyResponse{Status: "ok", Checks: map[string]string{"db": "ok", "redis": "ok"}},
		},
		{
			name:           "redis disabled",
			checks:         []Check{{Name: "db", Ping: ok}, {Name: "redis"}},
			expectedStatus: http.StatusOK,
			expected:       ReadyResponse{Status: "ok", Checks: map[string]string{"db": "ok", "redis": "disabled"}},
		},
		{
			name: "db down",
			checks: []Check{
				{Name: "db", Ping: func(context.Context) error { return errors.New("connection refused") }},
				{Name: "redis", Ping: ok},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expected:       ReadyResponse{Status: "unavailable", Checks: map[string]string{"db": "connection refused", "redis": "ok"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			r.GET("/readyz", Ready(time.Second, tt.checks...))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

			var got ReadyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReady_Timeout(t *testing.T) {
	t.Parallel()

	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	r := gin.New()
	r.GET("/readyz", Ready(20*time.Millisecond, Check{Name: "db", Ping: slow}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "deadline exceeded")
}
