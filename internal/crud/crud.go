// ABOUTME: Generic list/search/create/edit/delete controller for one resource
// ABOUTME: Drives pagination, filters, and the modal edit session against a Resource

package crud

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"github.com/pushnotify/console/internal/notify"
	"github.com/pushnotify/console/internal/services"
)

// Mode of an open edit session, fixed at the moment it is opened.
type Mode string

// Edit session modes.
const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Controller errors.
var (
	ErrMissingOperation = errors.New("crud: List, Create, Update, and Delete are required")
	ErrMissingID        = errors.New("crud: an ID extractor is required")
	ErrNoEditSession    = errors.New("crud: no edit session open")
)

// DefaultPageSize is the initial page size of a fresh controller.
const DefaultPageSize = 10

// Result is the normalized outcome of a list operation.
type Result[T any] struct {
	Rows  []T
	Total int
}

// Resource supplies the four REST operations the controller drives.
type Resource[T any] struct {
	List   func(ctx context.Context, q services.ListQuery) (Result[T], error)
	Create func(ctx context.Context, draft T) error
	Update func(ctx context.Context, id int64, draft T) error
	Delete func(ctx context.Context, id int64) error
}

// Hooks customize the controller. Only ID is required; the rest default to
// identity behavior.
type Hooks[T any] struct {
	// ID extracts the row identifier used by Update in edit mode.
	ID func(T) int64
	// DefaultDraft seeds the draft when a create session opens.
	DefaultDraft T
	// Validate runs before Submit touches the network. A non-nil error
	// aborts the submit locally; the edit session stays open.
	Validate func(T) error
	// BeforeSubmit shapes the draft into the payload actually sent.
	BeforeSubmit func(T) T
	// AfterFetch post-processes each successful list result.
	AfterFetch func(Result[T]) Result[T]
	// MergeRow combines the default draft with the selected row when an
	// edit session opens. The default keeps the row as-is; supply this
	// when draft-only fields must survive the merge.
	MergeRow func(defaults, row T) T
}

// Controller owns the listing state and at most one edit session for a
// resource. Operations are not serialized against each other; instead every
// list fetch carries a generation number and a response is applied only if
// no newer fetch has started since, so stale results never overwrite fresh
// ones.
type Controller[T any] struct {
	res      Resource[T]
	hooks    Hooks[T]
	notifier notify.Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	items    []T
	total    int
	page     int
	size     int
	filters  url.Values
	loading  bool
	fetchGen uint64

	editOpen   bool
	mode       Mode
	draft      T
	submitting bool
}

// New builds a controller. All four resource operations and the ID hook are
// required.
func New[T any](res Resource[T], hooks Hooks[T], notifier notify.Notifier) (*Controller[T], error) {
	if res.List == nil || res.Create == nil || res.Update == nil || res.Delete == nil {
		return nil, ErrMissingOperation
	}
	if hooks.ID == nil {
		return nil, ErrMissingID
	}
	return &Controller[T]{
		res:      res,
		hooks:    hooks,
		notifier: notifier,
		logger:   slog.Default().With("component", "crud"),
		page:     1,
		size:     DefaultPageSize,
		filters:  url.Values{},
	}, nil
}

// Items returns the current page of rows.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the server-side row count across all pages.
func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the current page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the current page size.
func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Loading reports whether a list fetch is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// SetFilter sets one search filter value. An empty value clears it from the
// outgoing query but keeps the key so ResetFilters can enumerate it.
func (c *Controller[T]) SetFilter(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Set(name, value)
}

// Filters returns a copy of the current filter values.
func (c *Controller[T]) Filters() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.filters)
}

// FetchList loads the current page with the current filters. On success the
// items and total are replaced atomically; on failure the previous state is
// left untouched and one error notification is emitted. The busy flag is
// cleared on every exit path.
func (c *Controller[T]) FetchList(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.fetchGen++
	gen := c.fetchGen
	q := services.ListQuery{Page: c.page, Size: c.size, Filters: cloneValues(c.filters)}
	c.mu.Unlock()

	result, err := c.res.List(ctx, q)

	c.mu.Lock()
	latest := gen == c.fetchGen
	if latest {
		c.loading = false
	}
	if err != nil {
		c.mu.Unlock()
		c.notifier.Error("failed to load data")
		c.logger.Error("list fetch failed", "page", q.Page, "size", q.Size, "error", err)
		return err
	}
	if !latest {
		// A newer fetch superseded this one; drop the stale result.
		c.mu.Unlock()
		return nil
	}
	if c.hooks.AfterFetch != nil {
		result = c.hooks.AfterFetch(result)
	}
	c.items = result.Rows
	c.total = result.Total
	c.mu.Unlock()
	return nil
}

// Search resets to page 1 and fetches, so new filter results always start
// from the first page.
func (c *Controller[T]) Search(ctx context.Context) error {
	c.mu.Lock()
	c.page = 1
	c.mu.Unlock()
	return c.FetchList(ctx)
}

// ResetFilters clears every filter value, then searches.
func (c *Controller[T]) ResetFilters(ctx context.Context) error {
	c.mu.Lock()
	for key := range c.filters {
		c.filters.Set(key, "")
	}
	c.mu.Unlock()
	return c.Search(ctx)
}

// SetPage moves to the given page and re-fetches.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return c.FetchList(ctx)
}

// SetPageSize changes the page size and re-fetches.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	if size < 1 {
		size = DefaultPageSize
	}
	c.mu.Lock()
	c.size = size
	c.mu.Unlock()
	return c.FetchList(ctx)
}

// OpenCreate opens a create session with the draft reset to the default
// record. The listing state is untouched.
func (c *Controller[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeCreate
	c.draft = c.hooks.DefaultDraft
	c.editOpen = true
}

// OpenEdit opens an edit session for row. The draft is the default record
// merged with the row; opening again silently replaces the current draft.
func (c *Controller[T]) OpenEdit(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
	if c.hooks.MergeRow != nil {
		c.draft = c.hooks.MergeRow(c.hooks.DefaultDraft, row)
	} else {
		c.draft = row
	}
	c.editOpen = true
}

// CloseEdit abandons the open edit session, if any.
func (c *Controller[T]) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editOpen = false
}

// EditOpen reports whether an edit session is open.
func (c *Controller[T]) EditOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editOpen
}

// EditMode returns the mode the open session was opened with.
func (c *Controller[T]) EditMode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Submitting reports whether a submit is in flight.
func (c *Controller[T]) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Draft returns the in-progress record of the open edit session.
func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// UpdateDraft applies fn to the draft in place, standing in for form input.
func (c *Controller[T]) UpdateDraft(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.draft)
}

// Submit validates the draft and sends it. Validation failures abort before
// any network call and keep the session open. On success the session
// closes, a success notification fires, and the list is re-fetched — the
// list is never patched locally. On failure the session stays open with the
// draft intact so the user may retry.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.editOpen {
		c.mu.Unlock()
		return ErrNoEditSession
	}
	mode := c.mode
	draft := c.draft
	c.mu.Unlock()

	if c.hooks.Validate != nil {
		if err := c.hooks.Validate(draft); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.submitting = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	payload := draft
	if c.hooks.BeforeSubmit != nil {
		payload = c.hooks.BeforeSubmit(draft)
	}

	var err error
	if mode == ModeCreate {
		err = c.res.Create(ctx, payload)
	} else {
		err = c.res.Update(ctx, c.hooks.ID(draft), payload)
	}
	if err != nil {
		if mode == ModeCreate {
			c.notifier.Error("create failed")
		} else {
			c.notifier.Error("update failed")
		}
		c.logger.Error("submit failed", "mode", mode, "error", err)
		return err
	}

	c.mu.Lock()
	c.editOpen = false
	c.mu.Unlock()

	if mode == ModeCreate {
		c.notifier.Success("created successfully")
	} else {
		c.notifier.Success("updated successfully")
	}

	// Server state is the source of truth; a refetch failure notifies on
	// its own and does not undo the successful submit.
	_ = c.FetchList(ctx)
	return nil
}

// Remove deletes one row by ID and re-fetches on success. Confirmation is
// the caller's responsibility before invoking this.
func (c *Controller[T]) Remove(ctx context.Context, id int64) error {
	if err := c.res.Delete(ctx, id); err != nil {
		c.notifier.Error("delete failed")
		c.logger.Error("delete failed", "id", id, "error", err)
		return err
	}

	c.notifier.Success("deleted successfully")
	_ = c.FetchList(ctx)
	return nil
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for key, vals := range v {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
