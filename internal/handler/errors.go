// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration carries no HTTP address. This is a fatal misconfiguration.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoSandbox is returned when NewHandlers gets no backend to serve.
	errNoSandbox = errors.New("sandbox is required")
)
