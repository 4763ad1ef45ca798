package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathAuditLogs = "audit/logs/"

// ListAuditLogs implements [AuditAPI].
func (h *httpServerAdapter) ListAuditLogs(ctx context.Context, vaultID string, params models.AuditLogsQueryParams, page, pageSize int) (models.Page[models.AuditLog], error) {
	var out models.PaginatedResponse[models.APIAuditLog]
	if err := h.getJSON(ctx, pathAuditLogs, listQuery(vaultID, params.Values(), page, pageSize), &out); err != nil {
		return models.Page[models.AuditLog]{}, err
	}
	return models.ToPage(out, auditLog), nil
}

// ExportAuditLogs implements [AuditAPI].
func (h *httpServerAdapter) ExportAuditLogs(ctx context.Context, vaultID string, params models.AuditLogsQueryParams, w io.Writer) (string, error) {
	query := listQuery(vaultID, params.Values(), 0, 0)
	resp, err := h.send(ctx, http.MethodGet, pathAuditLogs+"export/", func(r *resty.Request) {
		r.SetQueryParamsFromValues(query)
	})
	if err != nil {
		return "", err
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return "", fmt.Errorf("write audit export: %w", err)
	}
	return exportFileName(resp.Header().Get("Content-Disposition"), vaultID), nil
}

func exportFileName(disposition, vaultID string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return "audit-log-" + vaultID + ".xlsx"
}
