// Package api is a typed HTTP client for the Brand Studio backend API.
// It covers the company, brand-guideline, and content endpoints the web
// app depends on. All requests go to a single configurable base URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// DefaultTimeout bounds every request. The generation endpoints block on
// model calls and routinely run over a minute.
const DefaultTimeout = 120 * time.Second

// maxErrorBody caps how much of a non-JSON error body is surfaced to users.
const maxErrorBody = 300

// Client talks to the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (used in tests and
// for custom transport settings).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a Client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Error is a failed backend call. Message is already user-presentable:
// server-provided where the body was parseable, raw text or the bare
// status otherwise.
type Error struct {
	Endpoint string
	Status   int
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Message, e.Cause)
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.Status)
	default:
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// envelope is the backend's error/status wrapper. The backend reports some
// failures as 2xx bodies with success=false, so every response is checked.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (v envelope) failed() bool {
	return v.Success != nil && !*v.Success
}

func (v envelope) text() string {
	if v.Message != "" {
		return v.Message
	}
	return v.Err
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return &Error{Endpoint: path, Message: "build request", Cause: err}
	}
	return c.do(path, req, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Endpoint: path, Message: "encode request", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return &Error{Endpoint: path, Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(path, req, out)
}

// File is an in-memory file attached to a multipart request.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// postMultipart issues a multipart/form-data POST with the given text
// fields and files (all under the same field name) and decodes into out.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField string, files []File, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return &Error{Endpoint: path, Message: "encode form field", Cause: err}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(fileField, f.Name)
		if err != nil {
			return &Error{Endpoint: path, Message: "encode form file", Cause: err}
		}
		if _, err := part.Write(f.Data); err != nil {
			return &Error{Endpoint: path, Message: "encode form file", Cause: err}
		}
	}
	if err := w.Close(); err != nil {
		return &Error{Endpoint: path, Message: "finalize form", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return &Error{Endpoint: path, Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(path, req, out)
}

// do executes the request and decodes the body. Failure surfaces follow a
// fixed fallback chain: transport error, then JSON message on a non-2xx
// status, then raw body text, then the bare status code. A 2xx body with
// success=false counts as a failure too.
func (c *Client) do(endpoint string, req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Endpoint: endpoint, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Endpoint: endpoint, Status: resp.StatusCode, Message: "read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Endpoint: endpoint, Status: resp.StatusCode, Message: errorText(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.failed() {
		msg := env.text()
		if msg == "" {
			msg = "request failed"
		}
		return &Error{Endpoint: endpoint, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Endpoint: endpoint, Status: resp.StatusCode, Message: "decode response", Cause: err}
	}
	return nil
}

// errorText extracts a human-readable message from a non-2xx body.
func errorText(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if msg := env.text(); msg != "" {
			return msg
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return text
}
