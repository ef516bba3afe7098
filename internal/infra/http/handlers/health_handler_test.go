package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lembrete-consorcio/internal/storage"
)

type brokenKV struct{}

func (brokenKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (brokenKV) Set(ctx context.Context, key, value string) error { return nil }

func (brokenKV) Ping(ctx context.Context) error { return errors.New("conexão recusada") }

func healthCheck(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHealthHandlerHealthy(t *testing.T) {
	h := NewHealthHandler(storage.NewMemoryKV(), nil, "")

	code, resp := healthCheck(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["storage"])
	assert.Equal(t, "not configured", resp.Dependencies["rabbitmq"])
	assert.Equal(t, "not configured", resp.Dependencies["gate"])
}

func TestHealthHandlerReportsConfiguredGate(t *testing.T) {
	h := NewHealthHandler(storage.NewMemoryKV(), nil, "https://gate.exemplo.com")

	code, resp := healthCheck(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "configured", resp.Dependencies["gate"])
}

func TestHealthHandlerDegradedOnStorageFailure(t *testing.T) {
	h := NewHealthHandler(brokenKV{}, nil, "")

	code, resp := healthCheck(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Dependencies["storage"], "unhealthy")
}
