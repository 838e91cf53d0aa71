// ABOUTME: Tests for resource services against an httptest API server
// ABOUTME: Covers path/verb mapping, query encoding, and list page decoding

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushnotify/console/internal/api"
)

// recordedRequest captures what the handler saw for assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
}

func newServiceClient(t *testing.T, data any, rec *recordedRequest) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.Query()
		if r.Body != nil {
			var body json.RawMessage
			_ = json.NewDecoder(r.Body).Decode(&body)
			rec.Body = body
		}
		json.NewEncoder(w).Encode(map[string]any{"code": 200, "message": "success", "data": data})
	}))
	t.Cleanup(srv.Close)
	return api.New(api.Options{BaseURL: srv.URL + "/api/v1"})
}

func TestListQuery_Values(t *testing.T) {
	q := ListQuery{
		Page: 2,
		Size: 20,
		Filters: url.Values{
			"status":  {"active"},
			"keyword": {""}, // cleared filter must not be sent
		},
	}

	v := q.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "20", v.Get("size"))
	assert.Equal(t, "active", v.Get("status"))
	_, hasKeyword := v["keyword"]
	assert.False(t, hasKeyword)
}

func TestRepoService_List(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{
		"list": []map[string]any{
			{"id": 1, "name": "alpha"},
			{"id": 2, "name": "beta"},
		},
		"pagination": map[string]any{"page": 1, "size": 10, "total": 42},
	}, &rec)

	page, err := NewRepoService(c).List(context.Background(), ListQuery{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/repos", rec.Path)
	assert.Len(t, page.List, 2)
	assert.Equal(t, "alpha", page.List[0].Name)
	assert.Equal(t, 42, page.Pagination.Total)
}

func TestRepoService_UpdateHitsIDPath(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{"id": 7, "name": "renamed"}, &rec)

	repo, err := NewRepoService(c).Update(context.Background(), 7, Repo{Name: "renamed"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/api/v1/repos/7", rec.Path)
	assert.Equal(t, "renamed", repo.Name)
}

func TestRepoService_RemoveTargetPath(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, nil, &rec)

	require.NoError(t, NewRepoService(c).RemoveTarget(context.Background(), 3, 9))
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/api/v1/repos/3/targets/9", rec.Path)
}

func TestAuthService_Login(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{
		"access_token":  "at-1",
		"refresh_token": "rt-1",
		"expires_in":    3600,
	}, &rec)

	result, err := NewAuthService(c).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/auth/login", rec.Path)
	assert.JSONEq(t, `{"username":"admin","password":"secret"}`, string(rec.Body))
	assert.Equal(t, "at-1", result.AccessToken)
	assert.Equal(t, "rt-1", result.RefreshToken)
}

func TestPushService_BatchRetryBody(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{"succeeded": []int64{1, 2}, "failed": []int64{3}}, &rec)

	result, err := NewPushService(c).BatchRetry(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/pushes/batch-retry", rec.Path)
	assert.JSONEq(t, `{"push_ids":[1,2,3]}`, string(rec.Body))
	assert.Equal(t, []int64{3}, result.Failed)
}

func TestPushService_BatchDeleteSendsBody(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, nil, &rec)

	_, err := NewPushService(c).BatchDelete(context.Background(), []int64{4, 5})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.JSONEq(t, `{"push_ids":[4,5]}`, string(rec.Body))
}

func TestLogService_SearchMergesKeyword(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{"list": []any{}, "pagination": map[string]any{}}, &rec)

	_, err := NewLogService(c).Search(context.Background(), "timeout", ListQuery{
		Page:    1,
		Size:    10,
		Filters: url.Values{"level": {"error"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/logs/search", rec.Path)
	assert.Equal(t, "timeout", rec.Query.Get("keyword"))
	assert.Equal(t, "error", rec.Query.Get("level"))
	assert.Equal(t, "1", rec.Query.Get("page"))
}

func TestUserService_ResetPassword(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, map[string]any{"password": "n3w-pass"}, &rec)

	pw, err := NewUserService(c).ResetPassword(context.Background(), 11)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/users/11/reset-password", rec.Path)
	assert.Equal(t, "n3w-pass", pw)
}

func TestModelService_SetDefault(t *testing.T) {
	var rec recordedRequest
	c := newServiceClient(t, nil, &rec)

	require.NoError(t, NewModelService(c).SetDefault(context.Background(), 2))
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/models/2/default", rec.Path)
}
