package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/models"
)

type clientAuthService struct {
	Deps
	adapter adapter.AuthAPI
	session SessionService
}

func NewClientAuthService(d Deps, serverAdapter adapter.AuthAPI, session SessionService) ClientAuthService {
	return &clientAuthService{Deps: d, adapter: serverAdapter, session: session}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := a.validate(ctx, app.NoticeLoginFailed, creds); err != nil {
		return models.User{}, err
	}

	res, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, a.fail("clientAuthService.Login", app.NoticeLoginFailed, app.NoticeLoginFallback, err)
	}

	// a previous user's cache must not leak into this session
	a.cache.Clear()
	if err = a.session.SignIn(ctx, res); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("error persisting session")
	}

	a.notifier.Success(app.NoticeWelcomeBack, res.User.FullName)
	return res.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := a.validate(ctx, app.NoticeRegisterFailed, reg); err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return models.User{}, a.fail("clientAuthService.Register", app.NoticeRegisterFailed, app.NoticeReviewFallback, err)
	}

	a.notifier.Success(app.NoticeRegistered, app.NoticeVerifyEmailFirst)
	return user, nil
}

func (a *clientAuthService) Me(ctx context.Context) (models.User, error) {
	if !a.session.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	if err = a.session.SetCurrentUser(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Me").Msg("error persisting session")
	}
	return user, nil
}

func (a *clientAuthService) UpdateMe(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	if !a.session.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.adapter.UpdateMe(ctx, upd)
	if err != nil {
		return models.User{}, a.failDefault("clientAuthService.UpdateMe", app.NoticeProfileUpdateFail, err)
	}
	if err = a.session.SetCurrentUser(ctx, user); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.UpdateMe").Msg("error persisting session")
	}

	a.notifier.Success(app.NoticeProfileUpdated, user.FullName)
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("error logging out: %w", err)
	}
	a.notifier.Success(app.NoticeSignedOut, "")
	return nil
}
