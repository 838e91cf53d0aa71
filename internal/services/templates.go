// ABOUTME: Message template resource endpoints with status, rollback, and generation
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"

	"github.com/pushnotify/console/internal/api"
)

// GenerateTemplateRequest asks the server to draft a template with AI.
type GenerateTemplateRequest struct {
	Type        string `json:"type"`
	Scene       string `json:"scene"`
	Description string `json:"description"`
	ModelID     *int64 `json:"model_id,omitempty"`
}

// TemplateService maps the /templates endpoints.
type TemplateService struct {
	client *api.Client
}

// NewTemplateService creates a TemplateService on the given client.
func NewTemplateService(c *api.Client) *TemplateService {
	return &TemplateService{client: c}
}

// List returns one page of templates.
func (s *TemplateService) List(ctx context.Context, q ListQuery) (ListPage[Template], error) {
	var out ListPage[Template]
	err := s.client.Get(ctx, "/templates", q.Values(), &out)
	return out, err
}

// Get returns one template by ID.
func (s *TemplateService) Get(ctx context.Context, id int64) (*Template, error) {
	var out Template
	if err := s.client.Get(ctx, idPath("/templates", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new template.
func (s *TemplateService) Create(ctx context.Context, tpl Template) (*Template, error) {
	var out Template
	if err := s.client.Post(ctx, "/templates", tpl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a template's mutable fields, bumping its version.
func (s *TemplateService) Update(ctx context.Context, id int64, tpl Template) (*Template, error) {
	var out Template
	if err := s.client.Put(ctx, idPath("/templates", id), tpl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a template.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/templates", id), nil, nil)
}

// SetStatus enables or disables a template.
func (s *TemplateService) SetStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.client.Put(ctx, idPath("/templates", id)+"/status", body, nil)
}

// Rollback restores a previous version of the template.
func (s *TemplateService) Rollback(ctx context.Context, id int64, version int) error {
	body := map[string]int{"version": version}
	return s.client.Post(ctx, idPath("/templates", id)+"/rollback", body, nil)
}

// Test renders the template and delivers it through the given target.
func (s *TemplateService) Test(ctx context.Context, id, targetID int64) error {
	body := map[string]int64{"target_id": targetID}
	return s.client.Post(ctx, idPath("/templates", id)+"/test", body, nil)
}

// Generate asks the server to draft a template from a description.
func (s *TemplateService) Generate(ctx context.Context, req GenerateTemplateRequest) (*Template, error) {
	var out Template
	if err := s.client.Post(ctx, "/templates/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
