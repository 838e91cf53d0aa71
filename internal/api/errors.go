// ABOUTME: Error type for failed API calls carrying envelope code and HTTP status
// ABOUTME: Lets callers distinguish application rejections from transport failures

package api

import "fmt"

// Error describes a failed API call. For application errors (a non-success
// envelope on a 2xx response) Status is zero and Code carries the envelope
// code. For transport errors Status carries the HTTP status.
type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

// IsTransport reports whether the error came from the transport layer rather
// than the application envelope.
func (e *Error) IsTransport() bool {
	return e.Status != 0
}
