package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func mediaFilter(r *http.Request) sandbox.MediaFilter {
	q := r.URL.Query()
	f := sandbox.MediaFilter{
		Search:    q.Get("search"),
		Tags:      splitCSV(q.Get("tags")),
		Locations: splitCSV(q.Get("locations")),
		Era:       q.Get("era"),
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
		Ordering:  q.Get("ordering"),
	}
	for _, t := range splitCSV(q.Get("mediaType")) {
		f.Types = append(f.Types, models.MediaType(strings.ToUpper(t)))
	}
	return f
}

// mediaMetadata is the JSON document carried by the metadata form field.
type mediaMetadata struct {
	Location *string  `json:"location"`
	Tags     []string `json:"tags"`
}

func (h *Handler) listMedia(w http.ResponseWriter, r *http.Request) {
	h.writeMediaPage(w, r, false)
}

func (h *Handler) listFavoriteMedia(w http.ResponseWriter, r *http.Request) {
	h.writeMediaPage(w, r, true)
}

func (h *Handler) writeMediaPage(w http.ResponseWriter, r *http.Request, favoritesOnly bool) {
	items, err := h.sandbox.ListMedia(userID(r), r.URL.Query().Get("vault"), mediaFilter(r), favoritesOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, items)
}

func (h *Handler) mediaFilters(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sandbox.MediaFilters(userID(r), r.URL.Query().Get("vault"), mediaFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getMedia(w http.ResponseWriter, r *http.Request) {
	item, err := h.sandbox.GetMedia(userID(r), chi.URLParam(r, "mediaID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

// readUploads loads every file part named field.
func readUploads(form *multipart.Form, field string) ([]models.UploadFile, error) {
	if form == nil {
		return nil, nil
	}
	headers := form.File[field]
	files := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, models.UploadFile{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Content:  content,
		})
	}
	return files, nil
}

// uploadMedia accepts the multipart upload form. "files" holds every file
// with the primary first; a lone "file" is accepted as well.
func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	if !parseForm(w, r) {
		return
	}

	files, err := readUploads(r.MultipartForm, "files")
	if err == nil && len(files) == 0 {
		files, err = readUploads(r.MultipartForm, "file")
	}
	if err != nil {
		log.Err(err).Msg("error reading uploaded files")
		utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var meta mediaMetadata
	if raw, ok := formValue(r, "metadata"); ok && raw != "" {
		if err = json.Unmarshal([]byte(raw), &meta); err != nil {
			utils.WriteFieldErrors(w, map[string][]string{"metadata": {"Value must be valid JSON."}})
			return
		}
	}

	up := sandbox.MediaUpload{
		VaultID:     r.PostFormValue("vault"),
		MediaType:   models.MediaType(r.PostFormValue("mediaType")),
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		DateTaken:   r.PostFormValue("dateTaken"),
		Tags:        meta.Tags,
		Visibility:  models.Visibility(r.PostFormValue("visibility")),
		Files:       files,
	}
	if meta.Location != nil {
		up.Location = *meta.Location
	}

	item, err := h.sandbox.CreateMedia(userID(r), up)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Info().Str("media_id", item.ID).Int("files", len(files)).Msg("media uploaded")
	utils.WriteJSON(w, item, http.StatusCreated)
}

// updateMedia takes either a JSON patch or, when files change, a multipart
// form with removeFileIds and newFiles. A null dateTaken clears it.
func (h *Handler) updateMedia(w http.ResponseWriter, r *http.Request) {
	req := models.UpdateMediaRequest{ID: chi.URLParam(r, "mediaID")}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var ok bool
	if strings.HasPrefix(mediaType, "multipart/") {
		ok = mediaPatchFromForm(w, r, &req)
	} else {
		ok = mediaPatchFromJSON(w, r, &req)
	}
	if !ok {
		return
	}

	item, err := h.sandbox.UpdateMedia(userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func applyMetadata(req *models.UpdateMediaRequest, meta mediaMetadata, raw map[string]json.RawMessage) {
	req.Location = meta.Location
	if _, ok := raw["tags"]; ok {
		req.Tags = meta.Tags
		req.SetTags = true
	}
}

func mediaPatchFromJSON(w http.ResponseWriter, r *http.Request, req *models.UpdateMediaRequest) bool {
	var body map[string]json.RawMessage
	if !decodeJSON(w, r, &body) {
		return false
	}

	fields := map[string]**string{
		"title":       &req.Title,
		"description": &req.Description,
	}
	for key, dst := range fields {
		if raw, ok := body[key]; ok {
			var v string
			if json.Unmarshal(raw, &v) != nil {
				utils.WriteFieldErrors(w, map[string][]string{key: {"Not a valid string."}})
				return false
			}
			*dst = &v
		}
	}

	if raw, ok := body["dateTaken"]; ok {
		var v *string
		if json.Unmarshal(raw, &v) != nil {
			utils.WriteFieldErrors(w, map[string][]string{"dateTaken": {"Not a valid string."}})
			return false
		}
		if v == nil || *v == "" {
			req.ClearDateTaken = true
		} else {
			req.DateTaken = v
		}
	}
	if raw, ok := body["visibility"]; ok {
		var v models.Visibility
		if json.Unmarshal(raw, &v) != nil {
			utils.WriteFieldErrors(w, map[string][]string{"visibility": {"Not a valid string."}})
			return false
		}
		req.Visibility = &v
	}
	if raw, ok := body["metadata"]; ok {
		return decodeMetadata(w, raw, req)
	}
	return true
}

func mediaPatchFromForm(w http.ResponseWriter, r *http.Request, req *models.UpdateMediaRequest) bool {
	if !parseForm(w, r) {
		return false
	}

	if v, ok := formValue(r, "title"); ok {
		req.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		req.Description = &v
	}
	if v, ok := formValue(r, "dateTaken"); ok {
		if v == "" || v == "null" {
			req.ClearDateTaken = true
		} else {
			req.DateTaken = &v
		}
	}
	if v, ok := formValue(r, "visibility"); ok {
		vis := models.Visibility(v)
		req.Visibility = &vis
	}
	if v, ok := formValue(r, "metadata"); ok && v != "" {
		if !decodeMetadata(w, json.RawMessage(v), req) {
			return false
		}
	}
	if v, ok := formValue(r, "removeFileIds"); ok && v != "" {
		if json.Unmarshal([]byte(v), &req.RemoveFileIDs) != nil {
			utils.WriteFieldErrors(w, map[string][]string{"removeFileIds": {"Value must be a JSON list of ids."}})
			return false
		}
	}

	files, err := readUploads(r.MultipartForm, "newFiles")
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error reading uploaded files")
		utils.WriteDetail(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	req.NewFiles = files
	return true
}

func decodeMetadata(w http.ResponseWriter, raw json.RawMessage, req *models.UpdateMediaRequest) bool {
	var (
		meta   mediaMetadata
		fields map[string]json.RawMessage
	)
	if json.Unmarshal(raw, &meta) != nil || json.Unmarshal(raw, &fields) != nil {
		utils.WriteFieldErrors(w, map[string][]string{"metadata": {"Value must be valid JSON."}})
		return false
	}
	applyMetadata(req, meta, fields)
	return true
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.sandbox.DeleteMedia(userID(r), chi.URLParam(r, "mediaID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toggleFavorite sets the flag from the body; without one it flips it.
func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsFavorite *bool `json:"isFavorite"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	id, mediaID := userID(r), chi.URLParam(r, "mediaID")
	if body.IsFavorite == nil {
		item, err := h.sandbox.GetMedia(id, mediaID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		flipped := !item.IsFavorite
		body.IsFavorite = &flipped
	}

	res, err := h.sandbox.SetFavorite(id, mediaID, *body.IsFavorite)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// downloadFile serves an attachment with a content hash ETag.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.sandbox.File(userID(r), chi.URLParam(r, "fileID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	etag := `"` + utils.ContentHash(file.Content) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	contentType := file.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}
