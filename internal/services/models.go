// ABOUTME: AI model resource endpoints with default selection and verification
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"

	"github.com/pushnotify/console/internal/api"
)

// ModelService maps the /models endpoints.
type ModelService struct {
	client *api.Client
}

// NewModelService creates a ModelService on the given client.
func NewModelService(c *api.Client) *ModelService {
	return &ModelService{client: c}
}

// List returns one page of AI models.
func (s *ModelService) List(ctx context.Context, q ListQuery) (ListPage[AIModel], error) {
	var out ListPage[AIModel]
	err := s.client.Get(ctx, "/models", q.Values(), &out)
	return out, err
}

// Get returns one model by ID.
func (s *ModelService) Get(ctx context.Context, id int64) (*AIModel, error) {
	var out AIModel
	if err := s.client.Get(ctx, idPath("/models", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new model.
func (s *ModelService) Create(ctx context.Context, m AIModel) (*AIModel, error) {
	var out AIModel
	if err := s.client.Post(ctx, "/models", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a model's mutable fields.
func (s *ModelService) Update(ctx context.Context, id int64, m AIModel) (*AIModel, error) {
	var out AIModel
	if err := s.client.Put(ctx, idPath("/models", id), m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a model.
func (s *ModelService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/models", id), nil, nil)
}

// SetDefault marks the model as the platform default.
func (s *ModelService) SetDefault(ctx context.Context, id int64) error {
	return s.client.Post(ctx, idPath("/models", id)+"/default", nil, nil)
}

// Logs returns one page of the model's invocation logs.
func (s *ModelService) Logs(ctx context.Context, id int64, q ListQuery) (ListPage[LogEntry], error) {
	var out ListPage[LogEntry]
	err := s.client.Get(ctx, idPath("/models", id)+"/logs", q.Values(), &out)
	return out, err
}

// Verify asks the server to probe the model endpoint with a test call.
func (s *ModelService) Verify(ctx context.Context, id int64) error {
	return s.client.Post(ctx, idPath("/models", id)+"/verify", nil, nil)
}
