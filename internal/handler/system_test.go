package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthy(t *testing.T) {
	env := newEnv(t, false)
	env.mock.ExpectPing()

	rec := env.do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestUnhealthy(t *testing.T) {
	env := newEnv(t, false)
	env.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	rec := env.do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, map[string]any{"status": "unhealthy"}, withoutTiming(body["checks"].(map[string]any)["database"]))
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, env.logs.String(), "connection refused")
}

func withoutTiming(check any) map[string]any {
	out := map[string]any{}
	for k, v := range check.(map[string]any) {
		if k != "response_time" {
			out[k] = v
		}
	}
	return out
}

func TestDocs(t *testing.T) {
	env := newEnv(t, false)

	rec := env.do(http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	rec = env.do(http.MethodGet, "/static/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/products/{id}")
}
