// ABOUTME: Store interface for durable client-local scalar state
// ABOUTME: Holds token and UI preference values across process restarts

package state

import "errors"

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("key not found")

// Well-known keys persisted by the console.
const (
	KeyToken            = "token"
	KeyRefreshToken     = "refresh_token"
	KeyTheme            = "theme"
	KeyLocale           = "locale"
	KeySidebarCollapsed = "sidebar_collapsed"
)

// Store is a durable key-value store for single scalar values, local to the
// client device. Values survive process restarts.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases any underlying resources.
	Close() error
}
