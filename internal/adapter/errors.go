package adapter

import "errors"

// Sentinels matched with errors.Is. Responses with a non-2xx status are
// returned as *APIError, which unwraps to one of the status sentinels.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request entity too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrSessionExpired is returned when a 401 could not be recovered by
	// refreshing the access token. The session has been logged out.
	ErrSessionExpired = errors.New("session expired")

	ErrNoRefreshToken = errors.New("no refresh token")
	ErrNoFileURL      = errors.New("file url not available")
	ErrInvalidBaseURL = errors.New("invalid api base url")
)
