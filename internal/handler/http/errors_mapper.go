package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
)

type errorResponse struct {
	status int
	detail string
}

var errorResponseMap = map[error]errorResponse{
	sandbox.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	sandbox.ErrNotFound:           {http.StatusNotFound, app.MsgNotFound},
	sandbox.ErrVaultRequired:      {http.StatusBadRequest, app.MsgVaultRequired},
	sandbox.ErrForbidden:          {http.StatusForbidden, app.MsgAccessDenied},
	sandbox.ErrInviteUnavailable:  {http.StatusBadRequest, app.MsgInviteUnavailable},
	sandbox.ErrOwnerCannotLeave:   {http.StatusBadRequest, app.MsgOwnerCannotLeave},
	sandbox.ErrWrongPassword:      {http.StatusBadRequest, app.MsgWrongPassword},
	sandbox.ErrFileRequired:       {http.StatusBadRequest, app.MsgFileRequired},
	sandbox.ErrTooManyFiles:       {http.StatusBadRequest, app.MsgTooManyFiles},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError renders err. Validation errors keep their field messages; a
// taken email is reported on the email field.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *sandbox.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteFieldErrors(w, verr.Fields)
		return
	case errors.Is(err, sandbox.ErrEmailTaken):
		log.Debug().Err(err).Msg("email already registered")
		utils.WriteFieldErrors(w, map[string][]string{"email": {app.MsgEmailAlreadyExists}})
		return
	}

	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}
	utils.WriteDetail(w, resp.detail, resp.status)
}
