package linearb_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linearbtools/linearb-mcp/internal/adapter/outbound/linearb"
	"github.com/linearbtools/linearb-mcp/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *linearb.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return linearb.NewClient(server.Client(), server.URL, "test-key", logger)
}

func TestClient_Do_GET(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/api/v1/deployments", r.URL.Path)
		assert.Equal("test-key", r.Header.Get("x-api-key"))
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		assert.Equal("linearb-mcp/1.0", r.Header.Get("User-Agent"))
		assert.Equal("10", r.URL.Query().Get("limit"))
		assert.Equal("published_at", r.URL.Query().Get("sort_by"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [], "total": 0}`))
	}))

	query := url.Values{}
	query.Set("limit", "10")
	query.Set("sort_by", "published_at")

	result, err := client.Do(context.Background(), http.MethodGet, "/api/v1/deployments", query, nil)
	require.NoError(err)
	assert.Equal(map[string]interface{}{"items": []interface{}{}, "total": float64(0)}, result)
}

func TestClient_Do_POSTBody(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		data, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		require.NoError(json.Unmarshal(data, &body))
		assert.Equal("1w", body["roll_up"])

		w.Write([]byte(`[{"metric": "pr.merged"}]`))
	}))

	result, err := client.Do(context.Background(), http.MethodPost, "/api/v2/measurements", nil,
		map[string]interface{}{"roll_up": "1w"})
	require.NoError(err)
	assert.Equal([]interface{}{map[string]interface{}{"metric": "pr.merged"}}, result)
}

func TestClient_Do_EmptyBodyIsSuccessAck(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	result, err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", nil, nil)
	require.NoError(err)
	assert.Equal(map[string]interface{}{
		"status":  "success",
		"message": "Operation completed successfully",
	}, result)
}

func TestClient_Do_NonJSONBody(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text response"))
	}))

	result, err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", nil, nil)
	require.NoError(err)
	assert.Equal("plain text response", result)
}

func TestClient_Do_UpstreamStatusError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))

	result, err := client.Do(context.Background(), http.MethodGet, "/api/v1/users", nil, nil)
	assert.Nil(result)

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(err, &upstreamErr)
	assert.Equal(http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Contains(upstreamErr.Body, "invalid api key")
	assert.Contains(err.Error(), "API request failed with status 401")
}

func TestClient_Do_TransportError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := linearb.NewClient(&http.Client{}, "http://127.0.0.1:1", "test-key", logger)

	result, err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", nil, nil)
	assert.Nil(result)

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(err, &upstreamErr)
	assert.Zero(upstreamErr.StatusCode)
	assert.Error(errors.Unwrap(upstreamErr))
}

func TestClient_Do_TrailingSlashBaseURL(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/v1/health", r.URL.Path)
		w.Write([]byte(`{"status": "ok"}`))
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := linearb.NewClient(server.Client(), server.URL+"/", "test-key", logger)

	_, err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", nil, nil)
	require.NoError(err)
}
