package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoActiveVault    = errors.New("no active vault selected")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidation       = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict with current state")
	ErrInviteUnavailable  = errors.New("invite link is no longer valid")
	ErrSessionExpired     = errors.New("session expired")
)

// BulkDeleteError lists the ids a bulk delete could not remove.
type BulkDeleteError struct {
	Failed map[string]error
}

// FailedIDs returns the failed ids in ascending order.
func (e *BulkDeleteError) FailedIDs() []string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *BulkDeleteError) Error() string {
	return fmt.Sprintf("failed to delete %d item(s): %s", len(e.Failed), strings.Join(e.FailedIDs(), ", "))
}

func (e *BulkDeleteError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, id := range e.FailedIDs() {
		errs = append(errs, e.Failed[id])
	}
	return errs
}
