package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/models"
)

// Login implements [AuthAPI]. POST users/login/ answers with the token pair
// and the account. The active vault id may be empty.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	var out models.APIAuthResponse
	if err := h.sendJSON(ctx, http.MethodPost, pathLogin, creds, &out); err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{
		User:          h.mapper.user(out.User),
		Tokens:        models.Tokens{AccessToken: out.Access, RefreshToken: out.Refresh},
		ActiveVaultID: deref(out.User.ActiveVaultID),
	}, nil
}

// Register implements [AuthAPI]. The account still has to log in afterwards.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	var out models.APIUser
	if err := h.sendJSON(ctx, http.MethodPost, pathRegister, reg, &out); err != nil {
		return models.User{}, err
	}
	return h.mapper.user(out), nil
}

// Me implements [AuthAPI].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var out models.APIUser
	if err := h.getJSON(ctx, pathMe, nil, &out); err != nil {
		return models.User{}, err
	}
	return h.mapper.user(out), nil
}

// UpdateMe implements [AuthAPI]. The update is sent as multipart so an
// avatar can travel with it.
func (h *httpServerAdapter) UpdateMe(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	form := &multipartForm{}
	if upd.FullName != nil && *upd.FullName != "" {
		form.add("fullName", *upd.FullName)
	}
	if upd.Bio != nil {
		form.add("bio", *upd.Bio)
	}
	if upd.Avatar != nil {
		form.addFile("avatar", *upd.Avatar)
	}

	var out models.APIUser
	if err := h.sendForm(ctx, http.MethodPatch, pathMe, form, &out); err != nil {
		return models.User{}, err
	}
	return h.mapper.user(out), nil
}
