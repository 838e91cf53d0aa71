// ABOUTME: Tests for the API client envelope handling and failure classification
// ABOUTME: Covers auth injection, status mapping, 401 session expiry, and notifications

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushnotify/console/internal/notify"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) (*Client, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := notify.NewRecorder()
	opts.BaseURL = srv.URL + "/api/v1"
	opts.Notifier = rec
	return New(opts), rec
}

func TestGet_UnwrapsEnvelope(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/repos", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"message": "ok",
			"data":    map[string]any{"name": "demo"},
		})
	}, Options{})

	var out struct {
		Name string `json:"name"`
	}
	query := url.Values{"page": {"1"}}
	require.NoError(t, c.Get(context.Background(), "/repos", query, &out))
	assert.Equal(t, "demo", out.Name)
	assert.Empty(t, rec.Records(), "silent success emits no notification")
}

func TestRequest_InjectsBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(Envelope{Code: 200})
	}, Options{Tokens: staticToken("tok-123")})

	require.NoError(t, c.Get(context.Background(), "/repos", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestRequest_EmptyTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Envelope{Code: 200})
	}, Options{Tokens: staticToken("")})

	require.NoError(t, c.Get(context.Background(), "/repos", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestEnvelope_NonSuccessCodeRejects(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code":    40001,
			"message": "duplicate name",
		})
	}, Options{})

	err := c.Post(context.Background(), "/repos", map[string]string{"name": "x"}, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40001, apiErr.Code)
	assert.Equal(t, "duplicate name", apiErr.Message)
	assert.False(t, apiErr.IsTransport())

	// Exactly one error notification with the server-supplied message
	assert.Equal(t, []string{"duplicate name"}, rec.ByLevel(notify.LevelError))
}

func TestEnvelope_EmptyMessageFallsBack(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Envelope{Code: 500})
	}, Options{})

	err := c.Get(context.Background(), "/repos", nil, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"request failed"}, rec.ByLevel(notify.LevelError))
}

func TestTransport_401ClearsSessionOnce(t *testing.T) {
	unauthorizedCalls := 0
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, Options{Unauthorized: func() { unauthorizedCalls++ }})

	err := c.Get(context.Background(), "/repos", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, apiErr.IsTransport())

	assert.Equal(t, 1, unauthorizedCalls, "session cleared exactly once")
	assert.Equal(t, []string{"session expired, please log in again"}, rec.ByLevel(notify.LevelError))
}

func TestTransport_StatusMessages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusForbidden, "no permission to access"},
		{http.StatusNotFound, "requested resource does not exist"},
		{http.StatusInternalServerError, "server error"},
	}

	for _, tt := range tests {
		c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}, Options{})

		err := c.Get(context.Background(), "/repos", nil, nil)
		require.Error(t, err)
		assert.Equal(t, []string{tt.want}, rec.ByLevel(notify.LevelError))
	}
}

func TestTransport_OtherStatusUsesEnvelopeMessage(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Envelope{Code: 400, Message: "page must be positive"})
	}, Options{})

	err := c.Get(context.Background(), "/repos", nil, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"page must be positive"}, rec.ByLevel(notify.LevelError))
}

func TestTransport_NoResponseNotifiesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	rec := notify.NewRecorder()
	c := New(Options{BaseURL: srv.URL + "/api/v1", Notifier: rec})

	err := c.Get(context.Background(), "/repos", nil, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"network connection failed"}, rec.ByLevel(notify.LevelError))
}

func TestEnvelope_NullDataLeavesOutUntouched(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 200, "message": "ok", "data": nil})
	}, Options{})

	out := map[string]string{"kept": "yes"}
	require.NoError(t, c.Delete(context.Background(), "/repos/1", nil, &out))
	assert.Equal(t, "yes", out["kept"])
}
