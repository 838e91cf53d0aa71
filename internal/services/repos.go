// ABOUTME: Repository resource endpoints including webhook test and target links
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"

	"github.com/pushnotify/console/internal/api"
)

// RepoService maps the /repos endpoints.
type RepoService struct {
	client *api.Client
}

// NewRepoService creates a RepoService on the given client.
func NewRepoService(c *api.Client) *RepoService {
	return &RepoService{client: c}
}

// List returns one page of repositories.
func (s *RepoService) List(ctx context.Context, q ListQuery) (ListPage[Repo], error) {
	var out ListPage[Repo]
	err := s.client.Get(ctx, "/repos", q.Values(), &out)
	return out, err
}

// Get returns one repository by ID.
func (s *RepoService) Get(ctx context.Context, id int64) (*Repo, error) {
	var out Repo
	if err := s.client.Get(ctx, idPath("/repos", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new repository.
func (s *RepoService) Create(ctx context.Context, repo Repo) (*Repo, error) {
	var out Repo
	if err := s.client.Post(ctx, "/repos", repo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a repository's mutable fields.
func (s *RepoService) Update(ctx context.Context, id int64, repo Repo) (*Repo, error) {
	var out Repo
	if err := s.client.Put(ctx, idPath("/repos", id), repo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a repository.
func (s *RepoService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/repos", id), nil, nil)
}

// TestWebhook asks the server to fire a test delivery for the repo's webhook.
func (s *RepoService) TestWebhook(ctx context.Context, id int64) error {
	return s.client.Post(ctx, idPath("/repos", id)+"/test", nil, nil)
}

// Targets returns the push targets linked to a repository.
func (s *RepoService) Targets(ctx context.Context, id int64) ([]Target, error) {
	var out []Target
	err := s.client.Get(ctx, idPath("/repos", id)+"/targets", nil, &out)
	return out, err
}

// AddTarget links a push target to a repository.
func (s *RepoService) AddTarget(ctx context.Context, repoID, targetID int64) error {
	body := map[string]int64{"target_id": targetID}
	return s.client.Post(ctx, idPath("/repos", repoID)+"/targets", body, nil)
}

// RemoveTarget unlinks a push target from a repository.
func (s *RepoService) RemoveTarget(ctx context.Context, repoID, targetID int64) error {
	return s.client.Delete(ctx, idPath(idPath("/repos", repoID)+"/targets", targetID), nil, nil)
}
