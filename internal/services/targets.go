// ABOUTME: Push target resource endpoints including delivery test and repo links
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"

	"github.com/pushnotify/console/internal/api"
)

// TargetService maps the /targets endpoints.
type TargetService struct {
	client *api.Client
}

// NewTargetService creates a TargetService on the given client.
func NewTargetService(c *api.Client) *TargetService {
	return &TargetService{client: c}
}

// List returns one page of push targets.
func (s *TargetService) List(ctx context.Context, q ListQuery) (ListPage[Target], error) {
	var out ListPage[Target]
	err := s.client.Get(ctx, "/targets", q.Values(), &out)
	return out, err
}

// Get returns one push target by ID.
func (s *TargetService) Get(ctx context.Context, id int64) (*Target, error) {
	var out Target
	if err := s.client.Get(ctx, idPath("/targets", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new push target.
func (s *TargetService) Create(ctx context.Context, target Target) (*Target, error) {
	var out Target
	if err := s.client.Post(ctx, "/targets", target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a push target's mutable fields.
func (s *TargetService) Update(ctx context.Context, id int64, target Target) (*Target, error) {
	var out Target
	if err := s.client.Put(ctx, idPath("/targets", id), target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a push target.
func (s *TargetService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/targets", id), nil, nil)
}

// Test fires a test delivery through the target.
func (s *TargetService) Test(ctx context.Context, id int64) error {
	return s.client.Post(ctx, idPath("/targets", id)+"/test", nil, nil)
}

// AddRepos links repositories to a push target.
func (s *TargetService) AddRepos(ctx context.Context, targetID int64, repoIDs []int64) error {
	body := map[string][]int64{"repo_ids": repoIDs}
	return s.client.Post(ctx, idPath("/targets", targetID)+"/repos", body, nil)
}

// RemoveRepo unlinks a repository from a push target.
func (s *TargetService) RemoveRepo(ctx context.Context, targetID, repoID int64) error {
	return s.client.Delete(ctx, idPath(idPath("/targets", targetID)+"/repos", repoID), nil, nil)
}
