package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

const (
	FieldFiles        = "files"
	FieldVisibility   = "visibility"
	FieldMediaID      = "media_id"
	FieldChanges      = "changes"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "full_name"
	FieldRole         = "role"
	FieldExpiresAt    = "expires_at"
	FieldPersons      = "persons"
	FieldRelationType = "relationship_type"
	FieldVaultName    = "vault_name"
	FieldSafetyWindow = "safety_window"
	FieldQuality      = "storage_quality"
	FieldMembershipID = "membership_id"
	FieldToken        = "token"
)

// RequestValidator checks client requests before they leave the process.
// The server repeats every check; this one only saves a round trip.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator() Validator {
	return &RequestValidator{now: time.Now}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadMediaRequest:
		return v.validateUpload(ctx, value, fields...)
	case *models.UploadMediaRequest:
		return v.validateUpload(ctx, *value, fields...)

	case models.UpdateMediaRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateMediaRequest:
		return v.validateUpdate(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.InviteMemberRequest:
		return v.validateInviteMember(ctx, value, fields...)
	case *models.InviteMemberRequest:
		return v.validateInviteMember(ctx, *value, fields...)

	case models.CreateShareableInviteRequest:
		return v.validateShareableInvite(ctx, value, fields...)
	case *models.CreateShareableInviteRequest:
		return v.validateShareableInvite(ctx, *value, fields...)

	case models.CreateRelationshipRequest:
		return v.validateRelationship(ctx, value, fields...)
	case *models.CreateRelationshipRequest:
		return v.validateRelationship(ctx, *value, fields...)

	case models.VaultRequest:
		return v.validateVault(ctx, value, fields...)
	case *models.VaultRequest:
		return v.validateVault(ctx, *value, fields...)

	case models.TransferOwnershipRequest:
		return v.validateTransfer(ctx, value, fields...)
	case *models.TransferOwnershipRequest:
		return v.validateTransfer(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidVisibility(vis models.Visibility) bool {
	return vis == models.VisibilityPrivate || vis == models.VisibilityFamily
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil && addr.Name == ""
}

func (v *RequestValidator) validateUpload(_ context.Context, req models.UploadMediaRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldFiles:
			if len(req.Files) == 0 {
				return ErrNoFiles
			}
			if len(req.Files) > models.MaxUploadFiles {
				return fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(req.Files), models.MaxUploadFiles)
			}
			for i, file := range req.Files {
				if len(file.Content) == 0 {
					return fmt.Errorf("%w: #%d %q", ErrEmptyFile, i+1, file.Name)
				}
			}
		case FieldVisibility:
			if req.Visibility != "" && !isValidVisibility(req.Visibility) {
				return ErrInvalidVisibility
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdate(_ context.Context, req models.UpdateMediaRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMediaID, FieldChanges, FieldVisibility, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldMediaID:
			if strings.TrimSpace(req.ID) == "" {
				return ErrInvalidMediaID
			}
		case FieldChanges:
			if req.Title == nil && req.Description == nil && req.DateTaken == nil && !req.ClearDateTaken &&
				req.Location == nil && !req.SetTags && req.Visibility == nil && !req.HasFileMutations() {
				return ErrNoFieldsToUpdate
			}
		case FieldVisibility:
			if req.Visibility != nil && !isValidVisibility(*req.Visibility) {
				return ErrInvalidVisibility
			}
		case FieldFiles:
			if len(req.NewFiles) > models.MaxUploadFiles {
				return fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(req.NewFiles), models.MaxUploadFiles)
			}
			for i, file := range req.NewFiles {
				if len(file.Content) == 0 {
					return fmt.Errorf("%w: #%d %q", ErrEmptyFile, i+1, file.Name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegistration(ctx context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail, FieldPassword:
			if err := v.validateCredentials(ctx, models.Credentials{Email: reg.Email, Password: reg.Password}, f); err != nil {
				return err
			}
		case FieldFullName:
			if strings.TrimSpace(reg.FullName) == "" {
				return ErrEmptyFullName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateInviteMember(_ context.Context, req models.InviteMemberRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateShareableInvite(_ context.Context, req models.CreateShareableInviteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRole, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		case FieldExpiresAt:
			if !req.ExpiresAt.After(v.now()) {
				return ErrExpiryInPast
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRelationship(_ context.Context, req models.CreateRelationshipRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPersons, FieldRelationType}
	}

	for _, f := range fields {
		switch f {
		case FieldPersons:
			if req.FromPerson == "" || req.ToPerson == "" {
				return ErrInvalidPersonID
			}
			if req.FromPerson == req.ToPerson {
				return ErrSelfRelationship
			}
		case FieldRelationType:
			if !req.RelationshipType.Valid() {
				return ErrInvalidRelation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateVault treats nil fields as "unchanged", so the same rules serve
// create and update.
func (v *RequestValidator) validateVault(_ context.Context, req models.VaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultName, FieldSafetyWindow, FieldQuality, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldVaultName:
			if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
				return ErrEmptyVaultName
			}
		case FieldSafetyWindow:
			if req.SafetyWindowMinutes != nil && *req.SafetyWindowMinutes < 0 {
				return ErrNegativeWindow
			}
		case FieldQuality:
			if req.StorageQuality == nil {
				continue
			}
			switch *req.StorageQuality {
			case models.QualityBalanced, models.QualityHigh, models.QualityOriginal:
			default:
				return ErrInvalidQuality
			}
		case FieldVisibility:
			if req.DefaultVisibility != nil && !isValidVisibility(*req.DefaultVisibility) {
				return ErrInvalidVisibility
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTransfer(_ context.Context, req models.TransferOwnershipRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMembershipID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldMembershipID:
			if strings.TrimSpace(req.MembershipID) == "" {
				return ErrInvalidMembershipID
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
