package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/legacy-keeper/models"
)

// APIError is a non-2xx response. Payload is the decoded JSON body, empty
// when the body was not a JSON object.
type APIError struct {
	StatusCode int
	Payload    models.APIErrorResponse

	// keys preserves the order of Payload keys as sent by the server.
	keys     []string
	sentinel error
}

func (e *APIError) Error() string {
	text := e.Message()
	if text == "" {
		text = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, text)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// Message extracts the human-readable message of the payload: "detail",
// "error", "message", then the first field holding a string or a list
// starting with a string. It returns "" when none is found.
func (e *APIError) Message() string {
	for _, k := range []string{"detail", "error", "message"} {
		if s, ok := e.Payload[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	for _, k := range e.keys {
		switch v := e.Payload[k].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v
			}
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}

// ErrorMessage returns the message to show for err. A structured server
// payload wins; an error response without a payload yields fallback; any
// other error yields its own text.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Payload) == 0 {
			return fallback
		}
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var (
		payload models.APIErrorResponse
		keys    []string
	)
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && body[0] == '{' {
		if err := json.Unmarshal(body, &payload); err == nil {
			keys = payloadKeys(body)
		}
	}

	apiErr := NewAPIError(resp.StatusCode(), payload)
	if keys != nil {
		apiErr.keys = keys
	}
	return apiErr
}

// NewAPIError builds the error of a response with status and payload.
// Payload fields other than detail, error and message are searched in key
// order.
func NewAPIError(status int, payload models.APIErrorResponse) *APIError {
	apiErr := &APIError{StatusCode: status, Payload: payload, keys: slices.Sorted(maps.Keys(payload))}

	switch status {
	case http.StatusBadRequest:
		apiErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		apiErr.sentinel = ErrNotFound
	case http.StatusConflict:
		apiErr.sentinel = ErrConflict
	case http.StatusRequestEntityTooLarge:
		apiErr.sentinel = ErrTooLarge
	case http.StatusBadGateway:
		apiErr.sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.sentinel = ErrInternalServerError
	default:
		apiErr.sentinel = ErrUnexpectedStatus
	}
	return apiErr
}

// payloadKeys lists the top-level keys of a JSON object in document order.
func payloadKeys(body []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(body))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err = dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}
