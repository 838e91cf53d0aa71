// ABOUTME: HTTP client for the push-notify REST API with bearer auth injection
// ABOUTME: Unwraps the {code, message, data} envelope and maps failures to notifications

package api

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
	"time"

	"github.com/google/uuid"

	"github.com/pushnotify/console/internal/notify"
)

// SuccessCode is the envelope code the server uses to signal success.
const SuccessCode = 200

// DefaultTimeout is the uniform request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer credential. An empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Envelope is the uniform wrapper every server response uses.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1
	BaseURL string
	// Timeout applies uniformly to every request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Tokens supplies the bearer credential. May be nil.
	Tokens TokenSource
	// Notifier receives one notification per failed call. May be nil.
	Notifier notify.Notifier
	// Unauthorized is invoked after a 401 transport status, once per call,
	// so the session can be cleared and the user sent back to login.
	Unauthorized func()
	// HTTPClient overrides the underlying client. Used in tests.
	HTTPClient *http.Client
}

// Client issues requests against the REST boundary. All four verb methods
// decode the envelope and write the unwrapped data into out.
type Client struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	notifier     notify.Notifier
	unauthorized func()
	logger       *slog.Logger
}

// New creates a Client from the given options.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		http:         httpClient,
		tokens:       opts.Tokens,
		notifier:     opts.Notifier,
		unauthorized: opts.Unauthorized,
		logger:       slog.Default().With("component", "api"),
	}
}

// Get issues a GET request. Query parameters may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body. Body may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body. Body may be nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request. Body may be nil; the batch endpoints
// send ID lists in the body.
func (c *Client) Delete(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: timeout, refused connection, DNS failure
		c.notify("network connection failed")
		c.logger.Error("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notify("network connection failed")
		c.logger.Error("reading response failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.transportError(method, path, requestID, resp.StatusCode, respBody)
	}

	var env Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		c.notify("request failed")
		c.logger.Error("malformed envelope", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: decoding envelope: %w", method, path, err)
	}

	if env.Code != SuccessCode {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		c.notify(msg)
		c.logger.Error("server rejected request", "method", method, "path", path, "request_id", requestID, "code", env.Code, "message", env.Message)
		return &Error{Code: env.Code, Message: msg}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decoding data: %w", method, path, err)
		}
	}
	return nil
}

// transportError classifies a non-2xx HTTP status, notifies the user, and
// returns an error the caller can inspect. The 401 branch additionally
// invokes the Unauthorized callback so the session is cleared.
func (c *Client) transportError(method, path, requestID string, status int, body []byte) error {
	// The server may still have sent an envelope with a usable message
	var env Envelope
	_ = json.Unmarshal(body, &env)

	var msg string
	switch status {
	case http.StatusUnauthorized:
		msg = "session expired, please log in again"
	case http.StatusForbidden:
		msg = "no permission to access"
	case http.StatusNotFound:
		msg = "requested resource does not exist"
	case http.StatusInternalServerError:
		msg = "server error"
	default:
		msg = env.Message
		if msg == "" {
			msg = "request failed"
		}
	}

	c.notify(msg)
	c.logger.Error("transport error", "method", method, "path", path, "request_id", requestID, "status", status)

	if status == http.StatusUnauthorized && c.unauthorized != nil {
		c.unauthorized()
	}

	return &Error{Status: status, Code: env.Code, Message: msg}
}

func (c *Client) notify(msg string) {
	if c.notifier != nil {
		c.notifier.Error(msg)
	}
}
