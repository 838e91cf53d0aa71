// ABOUTME: Push record endpoints with retry, batch operations, and stats
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"
	"net/url"

	"github.com/pushnotify/console/internal/api"
)

// PushStats aggregates delivery outcomes over a date range.
type PushStats struct {
	Total    int `json:"total"`
	Success  int `json:"success"`
	Failed   int `json:"failed"`
	Pending  int `json:"pending"`
	Retrying int `json:"retrying"`
}

// BatchResult reports per-ID outcomes of a batch operation. The server
// processes batches best-effort; a partial failure is not rolled back.
type BatchResult struct {
	Succeeded []int64 `json:"succeeded"`
	Failed    []int64 `json:"failed"`
}

// PushService maps the /pushes endpoints.
type PushService struct {
	client *api.Client
}

// NewPushService creates a PushService on the given client.
func NewPushService(c *api.Client) *PushService {
	return &PushService{client: c}
}

// List returns one page of push records.
func (s *PushService) List(ctx context.Context, q ListQuery) (ListPage[Push], error) {
	var out ListPage[Push]
	err := s.client.Get(ctx, "/pushes", q.Values(), &out)
	return out, err
}

// Get returns one push record by ID.
func (s *PushService) Get(ctx context.Context, id int64) (*Push, error) {
	var out Push
	if err := s.client.Get(ctx, idPath("/pushes", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Retry re-queues a failed push for delivery.
func (s *PushService) Retry(ctx context.Context, id int64) error {
	return s.client.Post(ctx, idPath("/pushes", id)+"/retry", nil, nil)
}

// Delete removes a push record.
func (s *PushService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/pushes", id), nil, nil)
}

// BatchRetry re-queues the given pushes. Best-effort per ID.
func (s *PushService) BatchRetry(ctx context.Context, pushIDs []int64) (*BatchResult, error) {
	body := map[string][]int64{"push_ids": pushIDs}
	var out BatchResult
	if err := s.client.Post(ctx, "/pushes/batch-retry", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchDelete removes the given pushes. Best-effort per ID.
func (s *PushService) BatchDelete(ctx context.Context, pushIDs []int64) (*BatchResult, error) {
	body := map[string][]int64{"push_ids": pushIDs}
	var out BatchResult
	if err := s.client.Delete(ctx, "/pushes/batch-delete", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats aggregates delivery outcomes between two dates (YYYY-MM-DD).
func (s *PushService) Stats(ctx context.Context, startDate, endDate string) (*PushStats, error) {
	query := url.Values{"start_date": {startDate}, "end_date": {endDate}}
	var out PushStats
	if err := s.client.Get(ctx, "/pushes/stats", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
