// ABOUTME: Log browsing endpoints: system, operation, AI-call, search, export, stats
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"
	"net/url"

	"github.com/pushnotify/console/internal/api"
)

// LogStats aggregates log volumes per level over a date range.
type LogStats struct {
	Total   int            `json:"total"`
	ByLevel map[string]int `json:"by_level"`
	ByType  map[string]int `json:"by_type"`
}

// LogService maps the /logs endpoints. Logs are read-only from here.
type LogService struct {
	client *api.Client
}

// NewLogService creates a LogService on the given client.
func NewLogService(c *api.Client) *LogService {
	return &LogService{client: c}
}

// System returns one page of system logs.
func (s *LogService) System(ctx context.Context, q ListQuery) (ListPage[LogEntry], error) {
	var out ListPage[LogEntry]
	err := s.client.Get(ctx, "/logs/system", q.Values(), &out)
	return out, err
}

// Operations returns one page of operation logs.
func (s *LogService) Operations(ctx context.Context, q ListQuery) (ListPage[LogEntry], error) {
	var out ListPage[LogEntry]
	err := s.client.Get(ctx, "/logs/operations", q.Values(), &out)
	return out, err
}

// AICalls returns one page of AI invocation logs.
func (s *LogService) AICalls(ctx context.Context, q ListQuery) (ListPage[LogEntry], error) {
	var out ListPage[LogEntry]
	err := s.client.Get(ctx, "/logs/ai-calls", q.Values(), &out)
	return out, err
}

// Search returns logs matching a keyword across all types.
func (s *LogService) Search(ctx context.Context, keyword string, q ListQuery) (ListPage[LogEntry], error) {
	values := q.Values()
	values.Set("keyword", keyword)
	var out ListPage[LogEntry]
	err := s.client.Get(ctx, "/logs/search", values, &out)
	return out, err
}

// Export returns logs of one type in the given format (csv by default).
func (s *LogService) Export(ctx context.Context, logType, startTime, endTime, format string) (string, error) {
	if format == "" {
		format = "csv"
	}
	query := url.Values{
		"type":       {logType},
		"start_time": {startTime},
		"end_time":   {endTime},
		"format":     {format},
	}
	var out struct {
		Content string `json:"content"`
	}
	if err := s.client.Get(ctx, "/logs/export", query, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}

// Stats aggregates log volumes between two dates (YYYY-MM-DD).
func (s *LogService) Stats(ctx context.Context, startDate, endDate string) (*LogStats, error) {
	query := url.Values{"start_date": {startDate}, "end_date": {endDate}}
	var out LogStats
	if err := s.client.Get(ctx, "/logs/stats", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
