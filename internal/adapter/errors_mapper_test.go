package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiErrorFrom(t *testing.T, status int, body string) error {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.GetVault(t.Context(), "v1")
	require.Error(t, err)
	return err
}

func TestMapHTTPError_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrTooLarge},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := apiErrorFrom(t, tt.status, "")

			assert.ErrorIs(t, err, tt.want)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail wins", body: `{"message":"m","detail":"d","error":"e"}`, want: "d"},
		{name: "error before message", body: `{"message":"m","error":"e"}`, want: "e"},
		{name: "message", body: `{"message":"m"}`, want: "m"},
		{name: "first field list", body: `{"title":["This field is required."],"file":["Too big."]}`, want: "This field is required."},
		{name: "first string field in order", body: `{"count":3,"email":"Enter a valid email.","name":"bad"}`, want: "Enter a valid email."},
		{name: "blank detail skipped", body: `{"detail":"  ","role":["Invalid role."]}`, want: "Invalid role."},
		{name: "plain text body", body: `Bad Gateway`, want: "fallback"},
		{name: "empty body", body: ``, want: "fallback"},
		{name: "empty object", body: `{}`, want: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apiErrorFrom(t, http.StatusBadRequest, tt.body)
			assert.Equal(t, tt.want, ErrorMessage(err, "fallback"))
		})
	}
}

func TestErrorMessage_NonAPIErrors(t *testing.T) {
	assert.Equal(t, "fallback", ErrorMessage(nil, "fallback"))
	assert.Equal(t, "dial tcp: refused", ErrorMessage(errors.New("dial tcp: refused"), "fallback"))

	wrapped := fmt.Errorf("upload: %w", &APIError{StatusCode: 413, Payload: map[string]any{"detail": "File too large."}, sentinel: ErrTooLarge})
	assert.Equal(t, "File too large.", ErrorMessage(wrapped, "fallback"))
	assert.ErrorIs(t, wrapped, ErrTooLarge)
}

func TestAPIError_ErrorText(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, sentinel: ErrNotFound}
	assert.Equal(t, "http 404: Not Found", err.Error())

	err.Payload = map[string]any{"detail": "Vault not found."}
	assert.Equal(t, "http 404: Vault not found.", err.Error())
}

func TestPayloadKeys_Order(t *testing.T) {
	keys := payloadKeys([]byte(`{"zeta":1,"alpha":{"nested":true},"mid":[1,2]}`))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
	assert.Nil(t, payloadKeys([]byte(`[1,2]`)))
}
