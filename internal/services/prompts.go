// ABOUTME: AI prompt resource endpoints with test, rollback, and import/export
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"
	"encoding/json"

	"github.com/pushnotify/console/internal/api"
)

// PromptService maps the /prompts endpoints.
type PromptService struct {
	client *api.Client
}

// NewPromptService creates a PromptService on the given client.
func NewPromptService(c *api.Client) *PromptService {
	return &PromptService{client: c}
}

// List returns one page of prompts.
func (s *PromptService) List(ctx context.Context, q ListQuery) (ListPage[Prompt], error) {
	var out ListPage[Prompt]
	err := s.client.Get(ctx, "/prompts", q.Values(), &out)
	return out, err
}

// Get returns one prompt by ID.
func (s *PromptService) Get(ctx context.Context, id int64) (*Prompt, error) {
	var out Prompt
	if err := s.client.Get(ctx, idPath("/prompts", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new prompt.
func (s *PromptService) Create(ctx context.Context, p Prompt) (*Prompt, error) {
	var out Prompt
	if err := s.client.Post(ctx, "/prompts", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a prompt's mutable fields, bumping its version.
func (s *PromptService) Update(ctx context.Context, id int64, p Prompt) (*Prompt, error) {
	var out Prompt
	if err := s.client.Put(ctx, idPath("/prompts", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a prompt.
func (s *PromptService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/prompts", id), nil, nil)
}

// Test runs the prompt against sample data and returns the model output.
func (s *PromptService) Test(ctx context.Context, id int64, testData string) (string, error) {
	body := map[string]string{"test_data": testData}
	var out struct {
		Result string `json:"result"`
	}
	if err := s.client.Post(ctx, idPath("/prompts", id)+"/test", body, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

// Rollback restores a previous version of the prompt.
func (s *PromptService) Rollback(ctx context.Context, id int64, version int) error {
	body := map[string]int{"version": version}
	return s.client.Post(ctx, idPath("/prompts", id)+"/rollback", body, nil)
}

// Export returns the prompt as a portable JSON document.
func (s *PromptService) Export(ctx context.Context, id int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.client.Get(ctx, idPath("/prompts", id)+"/export", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Import creates a prompt from a previously exported document.
func (s *PromptService) Import(ctx context.Context, doc json.RawMessage) (*Prompt, error) {
	var out Prompt
	if err := s.client.Post(ctx, "/prompts/import", doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
