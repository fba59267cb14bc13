// Package helpers provides common test utilities for HTTP-level tests.
//
// This package includes request builders, envelope decoders, and
// assertion helpers for testing API endpoints.
package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    any
	rawBody string
	headers map[string]string
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body any) *RequestBuilder {
	rb.body = body
	return rb
}

// WithRawBody sets the request body verbatim, for malformed payloads
func (rb *RequestBuilder) WithRawBody(body string) *RequestBuilder {
	rb.rawBody = body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	switch {
	case rb.body != nil:
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	case rb.rawBody != "":
		bodyReader = bytes.NewReader([]byte(rb.rawBody))
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}
	return req
}

// Do builds the request and serves it through h
func (rb *RequestBuilder) Do(h http.Handler) *httptest.ResponseRecorder {
	rb.t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, rb.Build())
	return rr
}

// ============================================================================
// Response Helpers
// ============================================================================

// Envelope is the success body: {data, timestamp}
type Envelope[T any] struct {
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorEnvelope is the failure body: {error:{code, message, timestamp}}
type ErrorEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	} `json:"error"`
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// DecodeData decodes a success envelope and returns its payload
func DecodeData[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var env Envelope[T]
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("helpers: failed to decode envelope: %v. Body: %s", err, resp.Body.String())
	}
	if env.Timestamp == "" {
		t.Errorf("expected envelope timestamp, body: %s", resp.Body.String())
	}
	return env.Data
}

// AssertErrorCode checks the status and machine-readable code of an error body
func AssertErrorCode(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, expectedCode string) ErrorEnvelope {
	t.Helper()
	AssertStatus(t, resp, expectedStatus)

	var env ErrorEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("helpers: failed to decode error body: %v. Body: %s", err, resp.Body.String())
	}
	if env.Error.Code != expectedCode {
		t.Errorf("expected error code %q, got %q", expectedCode, env.Error.Code)
	}
	if env.Error.Timestamp == "" {
		t.Error("expected error timestamp")
	}
	return env
}

// ============================================================================
// Pointer Helpers
// ============================================================================

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}
