// Package linearb implements the outbound HTTP adapter for the LinearB
// public API. Every call is a single attempt; retries are the caller's
// responsibility.
package linearb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/linearbtools/linearb-mcp/internal/domain"
)

const userAgent = "linearb-mcp/1.0"

// Client calls the LinearB public API. It is safe for concurrent use by
// many in-flight tool invocations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a new Client. The http.Client carries the configured
// request timeout and connection pool.
func NewClient(httpClient *http.Client, baseURL, apiKey string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger.With("component", "linearb_client"),
	}
}

// Do executes a single request against the API. A non-2xx response or a
// transport failure is returned as a *domain.UpstreamError. Empty and 204
// responses are mapped to a generic success acknowledgement.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (interface{}, error) {
	log := c.logger.With(slog.String("method", method), slog.String("endpoint", endpoint))

	var requestBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.Error("Failed to marshal request body", slog.Any("error", err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, requestBody)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug("Executing API request", slog.String("url", req.URL.String()))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("API request failed", slog.Any("error", err))
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", slog.Any("error", err))
		return nil, &domain.UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("Received non-success status code",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response_body", string(respBody)))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return map[string]interface{}{
			"status":  "success",
			"message": "Operation completed successfully",
		}, nil
	}

	var result interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Warn("Failed to unmarshal JSON response, returning raw body as string", slog.Any("error", err))
		return string(respBody), nil
	}
	log.Debug("Received API response", slog.Int("status_code", resp.StatusCode))
	return result, nil
}

// Close releases the client's idle connections. Safe to call more than once.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
