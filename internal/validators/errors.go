package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFiles             = errors.New("at least one file is required")
	ErrTooManyFiles        = errors.New("too many files in one upload")
	ErrEmptyFile           = errors.New("file is empty")
	ErrInvalidVisibility   = errors.New("invalid visibility")
	ErrInvalidMediaID      = errors.New("invalid media id")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyFullName       = errors.New("full name is required")
	ErrInvalidRole         = errors.New("invalid role")
	ErrExpiryInPast        = errors.New("expiry must be in the future")
	ErrInvalidPersonID     = errors.New("invalid person id")
	ErrSelfRelationship    = errors.New("a person cannot be related to themselves")
	ErrInvalidRelation     = errors.New("invalid relationship type")
	ErrEmptyVaultName      = errors.New("vault name cannot be empty")
	ErrNegativeWindow      = errors.New("safety window cannot be negative")
	ErrInvalidQuality      = errors.New("invalid storage quality")
	ErrInvalidMembershipID = errors.New("invalid membership id")
)
