package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid gateway settings (missing
	// or unparsable base URL, non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid session store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidQueryConfigs indicates non-positive page sizes.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
	// ErrInvalidServerConfigs indicates invalid sandbox settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
