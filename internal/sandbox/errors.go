package sandbox

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrVaultRequired      = errors.New("vault parameter is required")
	ErrForbidden          = errors.New("forbidden")
	ErrInviteUnavailable  = errors.New("invite is revoked, expired or used")
	ErrOwnerCannotLeave   = errors.New("owner cannot leave the vault")
	ErrWrongPassword      = errors.New("wrong password")
	ErrFileRequired       = errors.New("no file submitted")
	ErrTooManyFiles       = errors.New("too many files")
)

// ValidationError carries field level messages, rendered as
// {"field": ["message"]}.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func fieldError(field, msg string) error {
	e := &ValidationError{}
	e.add(field, msg)
	return e
}

const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
)
