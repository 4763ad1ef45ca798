package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathMedia = "media/"

func mediaPath(id string) string {
	return pathMedia + id + "/"
}

func (h *httpServerAdapter) listMedia(ctx context.Context, path, vaultID string, params models.MediaQueryParams, page, pageSize int) (models.Page[models.MediaItem], error) {
	var out models.PaginatedResponse[models.APIMediaItem]
	if err := h.getJSON(ctx, path, listQuery(vaultID, params.Values(), page, pageSize), &out); err != nil {
		return models.Page[models.MediaItem]{}, err
	}
	return models.ToPage(out, h.mapper.media), nil
}

// ListMedia implements [MediaAPI].
func (h *httpServerAdapter) ListMedia(ctx context.Context, vaultID string, params models.MediaQueryParams, page, pageSize int) (models.Page[models.MediaItem], error) {
	return h.listMedia(ctx, pathMedia, vaultID, params, page, pageSize)
}

// ListFavoriteMedia implements [MediaAPI].
func (h *httpServerAdapter) ListFavoriteMedia(ctx context.Context, vaultID string, params models.MediaQueryParams, page, pageSize int) (models.Page[models.MediaItem], error) {
	return h.listMedia(ctx, pathMedia+"favorites/", vaultID, params, page, pageSize)
}

// MediaFilters implements [MediaAPI]. Ordering is irrelevant to facets and
// is not sent.
func (h *httpServerAdapter) MediaFilters(ctx context.Context, vaultID string, params models.MediaQueryParams) (models.MediaFilterSummary, error) {
	var out models.APIMediaFilterSummary
	query := listQuery(vaultID, params.WithoutSort().Values(), 0, 0)
	if err := h.getJSON(ctx, pathMedia+"filters/", query, &out); err != nil {
		return models.MediaFilterSummary{}, err
	}
	return filterSummary(out), nil
}

// GetMedia implements [MediaAPI].
func (h *httpServerAdapter) GetMedia(ctx context.Context, mediaID string) (models.MediaItem, error) {
	var out models.APIMediaItem
	if err := h.getJSON(ctx, mediaPath(mediaID), nil, &out); err != nil {
		return models.MediaItem{}, err
	}
	return h.mapper.media(out), nil
}

// UploadMedia implements [MediaAPI]. The first file is sent twice: as the
// primary "file" part and as the first of the "files" parts.
func (h *httpServerAdapter) UploadMedia(ctx context.Context, vaultID string, req models.UploadMediaRequest) (models.MediaItem, error) {
	if len(req.Files) == 0 || len(req.Files) > models.MaxUploadFiles {
		return models.MediaItem{}, fmt.Errorf("upload accepts 1 to %d files, got %d", models.MaxUploadFiles, len(req.Files))
	}

	primary := req.Files[0]
	title := req.Title
	if title == "" {
		title = primary.Name
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	metadata, err := json.Marshal(struct {
		Location string   `json:"location"`
		Tags     []string `json:"tags"`
	}{Location: req.Location, Tags: tags})
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("encode upload metadata: %w", err)
	}

	form := &multipartForm{}
	form.add("vault", vaultID).addFile("file", primary)
	for _, f := range req.Files {
		form.addFile("files", f)
	}
	form.add("title", title).
		add("description", req.Description).
		add("mediaType", string(mediaTypeFromMime(primary.MimeType)))
	if req.DateTaken != "" {
		form.add("dateTaken", req.DateTaken)
	}
	if req.Visibility != "" {
		form.add("visibility", strings.ToUpper(string(req.Visibility)))
	}
	form.add("metadata", string(metadata))

	var out models.APIMediaItem
	if err = h.sendForm(ctx, http.MethodPost, pathMedia, form, &out); err != nil {
		return models.MediaItem{}, err
	}
	return h.mapper.media(out), nil
}

// UpdateMedia implements [MediaAPI].
func (h *httpServerAdapter) UpdateMedia(ctx context.Context, req models.UpdateMediaRequest) (models.MediaItem, error) {
	// only the keys being changed are sent
	var metadata map[string]any
	if req.Location != nil || req.SetTags {
		metadata = map[string]any{}
		if req.Location != nil {
			metadata["location"] = *req.Location
		}
		if req.SetTags {
			tags := req.Tags
			if tags == nil {
				tags = []string{}
			}
			metadata["tags"] = tags
		}
	}

	var out models.APIMediaItem
	if req.HasFileMutations() {
		form, err := updateMediaForm(req, metadata)
		if err != nil {
			return models.MediaItem{}, err
		}
		if err = h.sendForm(ctx, http.MethodPatch, mediaPath(req.ID), form, &out); err != nil {
			return models.MediaItem{}, err
		}
		return h.mapper.media(out), nil
	}

	body := map[string]any{}
	if req.Title != nil {
		body["title"] = *req.Title
	}
	if req.Description != nil {
		body["description"] = *req.Description
	}
	switch {
	case req.ClearDateTaken:
		body["dateTaken"] = nil
	case req.DateTaken != nil:
		body["dateTaken"] = *req.DateTaken
	}
	if req.Visibility != nil {
		body["visibility"] = strings.ToUpper(string(*req.Visibility))
	}
	if metadata != nil {
		body["metadata"] = metadata
	}

	if err := h.sendJSON(ctx, http.MethodPatch, mediaPath(req.ID), body, &out); err != nil {
		return models.MediaItem{}, err
	}
	return h.mapper.media(out), nil
}

func updateMediaForm(req models.UpdateMediaRequest, metadata map[string]any) (*multipartForm, error) {
	form := &multipartForm{}
	if req.Title != nil {
		form.add("title", *req.Title)
	}
	if req.Description != nil {
		form.add("description", *req.Description)
	}
	switch {
	case req.ClearDateTaken:
		form.add("dateTaken", "null")
	case req.DateTaken != nil:
		form.add("dateTaken", *req.DateTaken)
	}
	if req.Visibility != nil {
		form.add("visibility", strings.ToUpper(string(*req.Visibility)))
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata patch: %w", err)
		}
		form.add("metadata", string(raw))
	}
	if len(req.RemoveFileIDs) > 0 {
		raw, err := json.Marshal(req.RemoveFileIDs)
		if err != nil {
			return nil, fmt.Errorf("encode removed file ids: %w", err)
		}
		form.add("removeFileIds", string(raw))
	}
	for _, f := range req.NewFiles {
		form.addFile("newFiles", f)
	}
	return form, nil
}

// DeleteMedia implements [MediaAPI].
func (h *httpServerAdapter) DeleteMedia(ctx context.Context, mediaID string) error {
	_, err := h.send(ctx, http.MethodDelete, mediaPath(mediaID), nil)
	return err
}

// ToggleFavorite implements [MediaAPI]. Older servers answer in snake case.
func (h *httpServerAdapter) ToggleFavorite(ctx context.Context, mediaID string, isFavorite bool) (models.FavoriteState, error) {
	var out struct {
		MediaID       *string `json:"mediaId"`
		MediaIDSnake  *string `json:"media_id"`
		IsFavorite    *bool   `json:"isFavorite"`
		IsFavoriteOld *bool   `json:"is_favorite"`
	}
	body := map[string]bool{"isFavorite": isFavorite}
	if err := h.sendJSON(ctx, http.MethodPost, mediaPath(mediaID)+"favorite/", body, &out); err != nil {
		return models.FavoriteState{}, err
	}

	state := models.FavoriteState{MediaID: mediaID}
	switch {
	case out.MediaID != nil:
		state.MediaID = *out.MediaID
	case out.MediaIDSnake != nil:
		state.MediaID = *out.MediaIDSnake
	}
	switch {
	case out.IsFavorite != nil:
		state.IsFavorite = *out.IsFavorite
	case out.IsFavoriteOld != nil:
		state.IsFavorite = *out.IsFavoriteOld
	}
	return state, nil
}

// DownloadFile implements [MediaAPI].
func (h *httpServerAdapter) DownloadFile(ctx context.Context, fileURL string, w io.Writer) (int64, error) {
	if strings.TrimSpace(fileURL) == "" {
		return 0, ErrNoFileURL
	}

	resp, err := h.send(ctx, http.MethodGet, h.mapper.absoluteString(fileURL), nil)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(resp.Body())
	if err != nil {
		return int64(n), fmt.Errorf("write downloaded file: %w", err)
	}
	return int64(n), nil
}
