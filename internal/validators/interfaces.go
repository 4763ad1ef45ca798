// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client requests before the gateway sends them.
//
// Each request type has a fixed set of named fields. Validate checks all of
// them by default; passing field names narrows the check, which lets a form
// validate one input at a time.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields. Unknown types return ErrUnsupportedType.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
