package http

import (
	"net/http"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

// auth enforces a bearer access token. On success the account id is
// stored in the request context under [utils.UserIDCtxKey].
//
// Requests are rejected with 401 when the header is missing or malformed,
// when the token is expired, invalid or a refresh token, and when its
// subject no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteDetail(w, app.MsgAuthRequired, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteDetail(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.signKey, h.tokens.issuer, models.AccessTokenKind)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteDetail(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		userID, _ := token.GetUserID()
		if _, err = h.sandbox.Account(userID); err != nil {
			log.Debug().Err(ErrUnknownAccount).Str("user_id", userID).Send()
			utils.WriteDetail(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// userID returns the account id stored by auth.
func userID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
