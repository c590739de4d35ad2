package ghclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// apiClient returns an HTTP client served by fn. Responses get their
// Request set the way a real transport would.
func apiClient(fn roundTripFunc) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := fn(req)
			if resp != nil && resp.Request == nil {
				resp.Request = req
			}
			return resp, err
		}),
	}
}

// countingClient is apiClient that also counts the requests that reach fn.
func countingClient(calls *int64, fn roundTripFunc) *http.Client {
	return apiClient(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt64(calls, 1)
		return fn(req)
	})
}

func mustJSONResponse(t *testing.T, statusCode int, payload any) *http.Response {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		t.Fatalf("build json response: %v", err)
	}
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(buf),
	}
}

func textResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func notFoundResponse(path string) *http.Response {
	return textResponse(http.StatusNotFound, fmt.Sprintf(`{"message":"not found: %s"}`, path))
}

func newTestClient(t *testing.T, httpClient *http.Client) *Client {
	t.Helper()
	c, err := NewClient(context.Background(), "test-token",
		WithHTTPClient(httpClient),
		WithBaseURL("https://api.test"),
	)
	if err != nil {
		t.Fatalf("NewClient error = %v, want nil", err)
	}
	return c
}

func user(login string) map[string]any {
	return map[string]any{"login": login}
}
