// ABOUTME: Row types and list envelope shapes for the push-notify resources
// ABOUTME: Mirrors the server's JSON models with int64 IDs and RFC3339 timestamps

package services

import (
	"net/url"
	"strconv"
	"time"
)

// Pagination describes the server's list pagination block.
type Pagination struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListPage is the uniform shape of every list endpoint:
// {"list": [...], "pagination": {...}}.
type ListPage[T any] struct {
	List       []T        `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery carries page, size, and free-form filters for list endpoints.
type ListQuery struct {
	Page    int
	Size    int
	Filters url.Values
}

// Values encodes the query as URL parameters. Empty filter values are
// omitted so a cleared search field does not reach the server.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	for key, vals := range q.Filters {
		for _, val := range vals {
			if val != "" {
				v.Add(key, val)
			}
		}
	}
	return v
}

// Repo is a monitored source repository.
type Repo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"` // github, gitlab, gitee
	ModelID   *int64    `json:"model_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Targets []Target `json:"targets,omitempty"`
}

// TargetConfig is the per-type delivery configuration of a push target.
type TargetConfig struct {
	AccessToken string            `json:"access_token,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Method      string            `json:"method,omitempty"`
	Secret      string            `json:"secret,omitempty"`
	WebhookURL  string            `json:"webhook_url,omitempty"`
}

// Target is a push delivery destination.
type Target struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"` // dingtalk, email
	Config    *TargetConfig `json:"config,omitempty"`
	Scope     string        `json:"scope"` // global, repo
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Template is a message template with versioning.
type Template struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`  // dingtalk, email
	Scene     string    `json:"scene"` // commit_notify, review_notify
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsDefault bool      `json:"is_default"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Prompt is an AI prompt with versioning.
type Prompt struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // codeview, message
	Scene     string    `json:"scene,omitempty"`
	Language  string    `json:"language,omitempty"`
	Content   string    `json:"content"`
	ModelID   *int64    `json:"model_id,omitempty"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AIModel is a configured AI model endpoint.
type AIModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Provider  string    `json:"provider,omitempty"`
	APIURL    string    `json:"api_url"`
	APIKey    string    `json:"api_key,omitempty"`
	Params    string    `json:"params,omitempty"`
	IsDefault bool      `json:"is_default"`
	CallCount int       `json:"call_count"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is a console account.
type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"password,omitempty"` // create/update only, never returned
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Push is one delivery attempt record.
type Push struct {
	ID             int64      `json:"id"`
	RepoID         int64      `json:"repo_id"`
	Repo           *Repo      `json:"repo,omitempty"`
	TargetID       int64      `json:"target_id"`
	Target         *Target    `json:"target,omitempty"`
	TemplateID     *int64     `json:"template_id,omitempty"`
	CommitID       string     `json:"commit_id"`
	CommitMsg      string     `json:"commit_msg"`
	Status         string     `json:"status"`
	Content        string     `json:"content"`
	ErrorMsg       string     `json:"error_msg,omitempty"`
	CodeviewStatus string     `json:"codeview_status,omitempty"`
	RetryCount     int        `json:"retry_count"`
	PushedAt       *time.Time `json:"pushed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// LogEntry is a system, operation, or AI-call log record.
type LogEntry struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`  // system, operation, ai_call
	Level     string    `json:"level"` // debug, info, warn, error
	Module    string    `json:"module,omitempty"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	UserID    *int64    `json:"user_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
