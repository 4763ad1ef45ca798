// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
)

// mapAdapterError translates a gateway error into a service business error.
// The original error stays in the chain so adapter.ErrorMessage still finds
// the server payload.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := serverMessage(err)

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return wrap(ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return wrap(ErrInvalidCredentials, err)
		}
		return wrap(ErrNotAuthenticated, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInviteUnavailable:
			return wrap(ErrInviteUnavailable, err)
		case app.MsgWrongPassword:
			return wrap(ErrInvalidCredentials, err)
		}
		return wrap(ErrValidation, err)

	case errors.Is(err, adapter.ErrTooLarge):
		return wrap(ErrValidation, err)

	case errors.Is(err, adapter.ErrForbidden):
		return wrap(ErrForbidden, err)

	case errors.Is(err, adapter.ErrNotFound):
		return wrap(ErrNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		return wrap(ErrConflict, err)
	}

	return err
}

func wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// serverMessage returns the message of the server payload, if any.
func serverMessage(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return ""
}
