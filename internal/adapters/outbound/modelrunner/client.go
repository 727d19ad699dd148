// Package modelrunner provides a client for an OpenL3-compatible audio
// feature model server that speaks MessagePack over HTTP.
package modelrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/vmihailenco/msgpack/v5"
)

const msgpackContentType = "application/msgpack"

// maxErrorBodyBytes caps how much of an error body ends up in error messages.
const maxErrorBodyBytes = 512

// FeatureModelAPIClient is a thin client for the feature model server API.
type FeatureModelAPIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewFeatureModelAPIClient creates a new client
func NewFeatureModelAPIClient(baseURL string, apiKey string, httpClient *http.Client) FeatureModelAPIClient {
	return FeatureModelAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Embeddings calls the /v1/audio/embeddings endpoint. The call is made once,
// even through a retrying client.
func (c FeatureModelAPIClient) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if len(req.Samples) == 0 {
		return nil, errors.New("samples are required")
	}
	if req.SampleRate <= 0 {
		return nil, errors.New("sample rate is required")
	}

	httpReq, err := c.newRequest(telemetry.WithoutRetries(ctx), http.MethodPost, "/v1/audio/embeddings", req)
	if err != nil {
		return nil, err
	}

	var out EmbeddingsResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Models calls the /v1/models endpoint.
func (c FeatureModelAPIClient) Models(ctx context.Context) (*ModelsResponse, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/v1/models", nil)
	if err != nil {
		return nil, err
	}

	var out ModelsResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c FeatureModelAPIClient) do(httpReq *http.Request, out any) error {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, describeErrorBody(resp.Header.Get("Content-Type"), respBody))
	}

	if err := msgpack.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c FeatureModelAPIClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := msgpack.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", msgpackContentType)
	}
	req.Header.Set("Accept", msgpackContentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// describeErrorBody extracts a readable message from an error response.
func describeErrorBody(contentType string, body []byte) string {
	if strings.HasPrefix(contentType, msgpackContentType) {
		var errResp ErrorResponse
		if err := msgpack.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return errResp.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBodyBytes {
		text = text[:maxErrorBodyBytes] + "..."
	}
	return text
}
