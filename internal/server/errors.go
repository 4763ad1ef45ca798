// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoSandboxListener is returned when neither an HTTP handler nor a listen
// address was configured for the sandbox.
var errNoSandboxListener = errors.New("sandbox has no HTTP handler or listen address")
