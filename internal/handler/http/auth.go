package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

const maxFormMemory = 32 << 20

// decodeJSON reads the request body into dst. On failure it answers 400
// and returns false. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// parseForm accepts multipart and urlencoded bodies alike.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseMultipartForm(maxFormMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		if err = r.ParseForm(); err == nil {
			return true
		}
	}
	logger.FromRequest(r).Debug().Err(err).Msg("invalid form was passed")
	utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	return false
}

// formValue returns the value of key and whether the form carried it at all.
func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// issueTokens signs a fresh access/refresh pair for userID.
func (h *Handler) issueTokens(userID string) (access, refresh string, err error) {
	at, err := utils.GenerateJWTToken(h.tokens.issuer, userID, models.AccessTokenKind, h.tokens.accessTTL, h.tokens.signKey)
	if err != nil {
		return "", "", fmt.Errorf("issue access token: %w", err)
	}
	rt, err := utils.GenerateJWTToken(h.tokens.issuer, userID, models.RefreshTokenKind, h.tokens.refreshTTL, h.tokens.signKey)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}
	return at.SignedString, rt.SignedString, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if !decodeJSON(w, r, &reg) {
		return
	}

	user, err := h.sandbox.Register(reg)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("account registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	user, err := h.sandbox.Authenticate(creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	access, refresh, err := h.issueTokens(user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.APIAuthResponse{Access: access, Refresh: refresh, User: user}, http.StatusOK)
}

// refreshToken exchanges a refresh token for a new pair. Both tokens are
// rotated.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.APIRefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Refresh == "" {
		utils.WriteFieldErrors(w, map[string][]string{"refresh": {"This field is required."}})
		return
	}

	token, err := utils.ValidateAndParseJWTToken(req.Refresh, h.tokens.signKey, h.tokens.issuer, models.RefreshTokenKind)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		utils.WriteDetail(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}
	id, _ := token.GetUserID()
	if _, err = h.sandbox.Account(id); err != nil {
		log.Debug().Err(ErrUnknownAccount).Str("user_id", id).Send()
		utils.WriteDetail(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	access, refresh, err := h.issueTokens(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.APIRefreshResponse{Access: access, Refresh: refresh}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sandbox.Account(userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

// updateMe takes a form with fullName and bio. Avatars are accepted but not
// stored.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	var fullName, bio *string
	if v, ok := formValue(r, "fullName"); ok {
		fullName = &v
	}
	if v, ok := formValue(r, "bio"); ok {
		bio = &v
	}

	user, err := h.sandbox.UpdateAccount(userID(r), fullName, bio)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}
