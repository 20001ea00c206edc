// Package client talks to the devauth HTTP API.
//
// HTTPClient keeps the bearer token returned by Login and sends it with
// Current. Failures are reported through sentinel errors that callers match
// with errors.Is: ErrValidation (400, field messages available through
// errors.As into common.FieldErrors), ErrUnauthorized (401) and
// ErrUnavailable (network failures and 5xx).
package client
