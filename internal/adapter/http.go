package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

// refreshLeeway is how close to its exp an access token may get before send
// refreshes it ahead of the request.
const refreshLeeway = 30 * time.Second

// Account endpoints. A 401 from one of them is final and never triggers a
// token refresh.
const (
	pathRegister      = "users/register/"
	pathLogin         = "users/login/"
	pathGoogleLogin   = "users/google/login/"
	pathTokenRefresh  = "users/token/refresh/"
	pathMe            = "users/me/"
	pathVerifyEmail   = "users/verify/"
	pathResendVerify  = "users/resend-verification/"
	pathForgotPwd     = "users/forgot-password/"
	pathResetPassword = "users/reset-password/"
)

var authPaths = []string{
	pathRegister, pathLogin, pathGoogleLogin, pathTokenRefresh, pathMe,
	pathVerifyEmail, pathResendVerify, pathForgotPwd, pathResetPassword,
}

func isAuthPath(path string) bool {
	for _, p := range authPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL
	mapper  mapper

	tokens    TokenStore
	refreshes singleflight.Group

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL is normalised to end with a slash so relative paths resolve
// below it.
//
// Returns [ErrInvalidBaseURL] (wrapped) if adapterCfg.BaseURL is empty or has
// no scheme and host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenStore, logger *logger.Logger) (ServerAdapter, error) {
	return newHTTPServerAdapter(adapterCfg, tokens, logger)
}

func newHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenStore, logger *logger.Logger) (*httpServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), adapterCfg.RequestTimeout),
		baseURL: baseURL,
		mapper:  mapper{base: baseURL},
		tokens:  tokens,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return u, nil
}

// send executes method on path. prep is applied to a fresh request on every
// attempt, so bodies built from readers must be rebuilt inside it.
//
// A 401 from a non-account path refreshes the access token once and retries.
// When the refresh fails the session is logged out and the 401 is returned
// wrapped in ErrSessionExpired.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, prep func(*resty.Request)) (*resty.Response, error) {
	access := h.tokens.Tokens().AccessToken
	if !isAuthPath(path) && expiresSoon(access, time.Now()) {
		if fresh, err := h.refresh(ctx); err == nil {
			access = fresh
		} else {
			// the request still goes out; a 401 takes the regular path below
			h.logger.Debug().Err(err).Str("func", "httpServerAdapter.send").Msg("proactive token refresh failed")
		}
	}

	resp, err := h.attempt(ctx, method, path, access, prep)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized && !isAuthPath(path) {
		fresh, refreshErr := h.refresh(ctx)
		if refreshErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			h.logger.Debug().Err(refreshErr).
				Str("func", "httpServerAdapter.send").
				Str("path", path).
				Msg("token refresh failed, logging out")
			h.tokens.ForceLogout(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, mapHTTPError(resp))
		}

		if resp, err = h.attempt(ctx, method, path, fresh, prep); err != nil {
			return nil, err
		}
	}

	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// expiresSoon reports whether access is a JWT whose exp falls within
// refreshLeeway of now. Opaque tokens are never refreshed ahead of time.
func expiresSoon(access string, now time.Time) bool {
	if access == "" {
		return false
	}
	token, err := utils.ParseUnverified(access)
	if err != nil || token.ExpiresAt == nil {
		return false
	}
	return token.ExpiresAt.Time.Before(now.Add(refreshLeeway))
}

func (h *httpServerAdapter) attempt(ctx context.Context, method, path, token string, prep func(*resty.Request)) (*resty.Response, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString())
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if prep != nil {
		prep(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return resp, nil
}

// refresh exchanges the refresh token for a new access token. Concurrent
// callers share one request.
func (h *httpServerAdapter) refresh(ctx context.Context) (string, error) {
	ch := h.refreshes.DoChan("refresh", func() (any, error) {
		refreshToken := h.tokens.Tokens().RefreshToken
		if refreshToken == "" {
			return "", ErrNoRefreshToken
		}

		var out models.APIRefreshResponse
		resp, err := h.client.R().
			SetContext(context.WithoutCancel(ctx)).
			SetHeader(traceIDHeader, uuid.NewString()).
			SetHeader("Content-Type", "application/json").
			SetBody(models.APIRefreshRequest{Refresh: refreshToken}).
			Post(pathTokenRefresh)
		if err != nil {
			return "", fmt.Errorf("refresh request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return "", err
		}
		if err = json.Unmarshal(resp.Body(), &out); err != nil {
			return "", fmt.Errorf("decode refresh response: %w", err)
		}
		if out.Access == "" {
			return "", errors.New("refresh response carries no access token")
		}

		rotated := models.Tokens{AccessToken: out.Access, RefreshToken: out.Refresh}
		if err = h.tokens.RotateTokens(context.WithoutCancel(ctx), rotated); err != nil {
			// the new token is still usable for this process
			h.logger.Err(err).Str("func", "httpServerAdapter.refresh").Msg("error persisting refreshed tokens")
		}
		return out.Access, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// getJSON decodes the body of a GET into out.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := h.send(ctx, http.MethodGet, path, func(r *resty.Request) {
		if len(query) > 0 {
			r.SetQueryParamsFromValues(query)
		}
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// sendJSON sends body as JSON and decodes the response into out unless out
// is nil.
func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := h.send(ctx, method, path, func(r *resty.Request) {
		if body != nil {
			r.SetHeader("Content-Type", "application/json").SetBody(body)
		}
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(resp, out)
}

// sendForm sends form as multipart and decodes the response into out.
func (h *httpServerAdapter) sendForm(ctx context.Context, method, path string, form *multipartForm, out any) error {
	resp, err := h.send(ctx, method, path, form.apply)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// decode unmarshals the response body into out. An empty body leaves out
// untouched.
func decode(resp *resty.Response, out any) error {
	if len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}

// listQuery renders the vault scope and pagination on top of filters.
func listQuery(vaultID string, filters url.Values, page, pageSize int) url.Values {
	q := url.Values{}
	if vaultID != "" {
		q.Set("vault", vaultID)
	}
	for k, v := range filters {
		q[k] = append([]string(nil), v...)
	}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", fmt.Sprint(pageSize))
	}
	return q
}
