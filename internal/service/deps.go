package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/internal/validators"
)

// Deps are shared by every client service.
type Deps struct {
	cache     *query.Client
	scope     VaultScope
	notifier  Notifier
	validator validators.Validator
	logger    *logger.Logger
}

// NewDeps bundles the collaborators of the client services. A nil notifier
// reports to log; a nil validator means validators.NewRequestValidator.
func NewDeps(cache *query.Client, scope VaultScope, notifier Notifier, validator validators.Validator, log *logger.Logger) Deps {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	if validator == nil {
		validator = validators.NewRequestValidator()
	}
	return Deps{cache: cache, scope: scope, notifier: notifier, validator: validator, logger: log}
}

// vault returns the active vault id or ErrNoActiveVault.
func (d Deps) vault() (string, error) {
	id := d.scope.ActiveVaultID()
	if id == "" {
		return "", ErrNoActiveVault
	}
	return id, nil
}

// validate runs the request validator and reports a failure under title.
func (d Deps) validate(ctx context.Context, title string, req any) error {
	if err := d.validator.Validate(ctx, req); err != nil {
		d.notifier.Error(title, err.Error())
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// fail reports err under title and returns it mapped to a service error.
func (d Deps) fail(fn, title, fallback string, err error) error {
	d.logger.Debug().Err(err).Str("func", fn).Msg(title)
	d.notifier.Error(title, adapter.ErrorMessage(err, fallback))
	return mapAdapterError(err)
}

// failDefault is fail with the generic fallback message.
func (d Deps) failDefault(fn, title string, err error) error {
	return d.fail(fn, title, app.NoticeDefaultError, err)
}

// invalidate marks every prefix stale.
func (d Deps) invalidate(prefixes ...query.Key) {
	for _, p := range prefixes {
		d.cache.Invalidate(p)
	}
}
