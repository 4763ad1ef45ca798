package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/legacy-keeper/models"
)

const (
	pathProfiles      = "genealogy/profiles/"
	pathRelationships = "genealogy/relationships/"
	pathMediaTags     = "genealogy/tags/"
)

// getList fetches a listing that is either a bare JSON array or a
// paginated envelope, and returns its items.
func getList[T any](ctx context.Context, h *httpServerAdapter, path string, query url.Values) ([]T, error) {
	resp, err := h.send(ctx, http.MethodGet, path, func(r *resty.Request) {
		r.SetQueryParamsFromValues(query)
	})
	if err != nil {
		return nil, err
	}

	var list []T
	if err = json.Unmarshal(resp.Body(), &list); err == nil {
		return list, nil
	}
	var page models.PaginatedResponse[T]
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return page.Results, nil
}

func mapSlice[A, T any](in []A, fn func(A) T) []T {
	out := make([]T, 0, len(in))
	for _, a := range in {
		out = append(out, fn(a))
	}
	return out
}

// ListProfiles implements [GenealogyAPI].
func (h *httpServerAdapter) ListProfiles(ctx context.Context, vaultID string, params models.ProfilesQueryParams, page, pageSize int) (models.Page[models.PersonProfile], error) {
	var out models.PaginatedResponse[models.APIPersonProfile]
	if err := h.getJSON(ctx, pathProfiles, listQuery(vaultID, params.Values(), page, pageSize), &out); err != nil {
		return models.Page[models.PersonProfile]{}, err
	}
	return models.ToPage(out, h.mapper.profile), nil
}

// GetProfile implements [GenealogyAPI].
func (h *httpServerAdapter) GetProfile(ctx context.Context, profileID string) (models.PersonProfile, error) {
	var out models.APIPersonProfile
	if err := h.getJSON(ctx, pathProfiles+profileID+"/", nil, &out); err != nil {
		return models.PersonProfile{}, err
	}
	return h.mapper.profile(out), nil
}

// profileForm renders a profile request. On create, empty optional values
// are skipped; on update, a non-nil empty date is sent to clear it.
func profileForm(req models.ProfileRequest, create bool) *multipartForm {
	form := &multipartForm{}
	if create {
		form.add("vault", req.VaultID)
	}
	if req.FullName != nil && (*req.FullName != "" || create) {
		form.add("fullName", *req.FullName)
	}

	optional := func(name string, value *string, keepEmpty bool) {
		if value == nil || (*value == "" && !keepEmpty) {
			return
		}
		form.add(name, *value)
	}
	optional("birthDate", req.BirthDate, !create)
	optional("birthPlace", req.BirthPlace, !create)
	optional("deathDate", req.DeathDate, !create)
	optional("bio", req.Bio, !create)

	if req.ProfilePhoto != nil {
		form.addFile("profilePhoto", *req.ProfilePhoto)
	}
	return form
}

// CreateProfile implements [GenealogyAPI].
func (h *httpServerAdapter) CreateProfile(ctx context.Context, req models.ProfileRequest) (models.PersonProfile, error) {
	var out models.APIPersonProfile
	if err := h.sendForm(ctx, http.MethodPost, pathProfiles, profileForm(req, true), &out); err != nil {
		return models.PersonProfile{}, err
	}
	return h.mapper.profile(out), nil
}

// UpdateProfile implements [GenealogyAPI].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, profileID string, req models.ProfileRequest) (models.PersonProfile, error) {
	var out models.APIPersonProfile
	if err := h.sendForm(ctx, http.MethodPatch, pathProfiles+profileID+"/", profileForm(req, false), &out); err != nil {
		return models.PersonProfile{}, err
	}
	return h.mapper.profile(out), nil
}

// DeleteProfile implements [GenealogyAPI].
func (h *httpServerAdapter) DeleteProfile(ctx context.Context, profileID string) error {
	_, err := h.send(ctx, http.MethodDelete, pathProfiles+profileID+"/", nil)
	return err
}

// ListRelationships implements [GenealogyAPI].
func (h *httpServerAdapter) ListRelationships(ctx context.Context, vaultID string) ([]models.Relationship, error) {
	rows, err := getList[models.APIRelationship](ctx, h, pathRelationships, url.Values{"vault": {vaultID}})
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, relationship), nil
}

// CreateRelationship implements [GenealogyAPI].
func (h *httpServerAdapter) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (models.Relationship, error) {
	var out models.APIRelationship
	if err := h.sendJSON(ctx, http.MethodPost, pathRelationships, req, &out); err != nil {
		return models.Relationship{}, err
	}
	return relationship(out), nil
}

// DeleteRelationship implements [GenealogyAPI].
func (h *httpServerAdapter) DeleteRelationship(ctx context.Context, relationshipID string) error {
	_, err := h.send(ctx, http.MethodDelete, pathRelationships+relationshipID+"/", nil)
	return err
}

// TreeData implements [GenealogyAPI].
func (h *httpServerAdapter) TreeData(ctx context.Context, vaultID string) (models.TreeData, error) {
	var out models.APITreeData
	if err := h.getJSON(ctx, pathProfiles+"tree/", url.Values{"vault": {vaultID}}, &out); err != nil {
		return models.TreeData{}, err
	}
	return h.mapper.tree(out), nil
}

// ListMediaTags implements [GenealogyAPI].
func (h *httpServerAdapter) ListMediaTags(ctx context.Context, mediaID string) ([]models.MediaTag, error) {
	rows, err := getList[models.APIMediaTag](ctx, h, pathMediaTags, url.Values{"media": {mediaID}})
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, mediaTag), nil
}

// CreateMediaTag implements [GenealogyAPI].
func (h *httpServerAdapter) CreateMediaTag(ctx context.Context, req models.CreateMediaTagRequest) (models.MediaTag, error) {
	var out models.APIMediaTag
	if err := h.sendJSON(ctx, http.MethodPost, pathMediaTags, req, &out); err != nil {
		return models.MediaTag{}, err
	}
	return mediaTag(out), nil
}

// DeleteMediaTag implements [GenealogyAPI].
func (h *httpServerAdapter) DeleteMediaTag(ctx context.Context, tagID string) error {
	_, err := h.send(ctx, http.MethodDelete, pathMediaTags+tagID+"/", nil)
	return err
}
