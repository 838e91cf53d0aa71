// Package api implements the HTTP client for the push-notify REST boundary.
//
// Every server response carries the uniform envelope {code, message, data}.
// A code of 200 yields the data payload; anything else is a failure. The
// client notifies the user once per failed call, logs a diagnostic record,
// and always propagates the error to the caller — a failure is never
// swallowed here.
//
// Transport failures are classified by HTTP status. A 401 additionally
// invokes the configured Unauthorized callback so the session store can
// clear its credential and force navigation back to login.
//
// Requests carry a bearer credential from the TokenSource when one is
// present, and a generated X-Request-ID header for correlating failures
// with server logs.
package api
