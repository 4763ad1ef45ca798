package service

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultAuditPageSize is the page size of the audit log listing.
const DefaultAuditPageSize = 50

type auditList = query.InfiniteData[models.AuditLog]

type clientAuditService struct {
	Deps
	api      adapter.AuditAPI
	pageSize int
}

func NewClientAuditService(d Deps, api adapter.AuditAPI, pageSize int) ClientAuditService {
	if pageSize <= 0 {
		pageSize = DefaultAuditPageSize
	}
	return &clientAuditService{Deps: d, api: api, pageSize: pageSize}
}

func (s *clientAuditService) Logs(ctx context.Context, params models.AuditLogsQueryParams) (auditList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return auditList{}, err
	}

	return query.InfiniteQuery[models.AuditLog](ctx, s.cache, auditLogsKey(vaultID, params),
		func(ctx context.Context, page int) (models.Page[models.AuditLog], error) {
			p, err := s.api.ListAuditLogs(ctx, vaultID, params, page, s.pageSize)
			return p, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientAuditService) NextLogsPage(ctx context.Context, params models.AuditLogsQueryParams) (auditList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return auditList{}, err
	}

	data, err := query.FetchNextPage[models.AuditLog](ctx, s.cache, auditLogsKey(vaultID, params))
	if errors.Is(err, query.ErrNotLoaded) {
		return s.Logs(ctx, params)
	}
	return data, err
}

func (s *clientAuditService) Export(ctx context.Context, params models.AuditLogsQueryParams, w io.Writer) (string, error) {
	vaultID, err := s.vault()
	if err != nil {
		return "", err
	}

	name, err := s.api.ExportAuditLogs(ctx, vaultID, params, w)
	if err != nil {
		return "", s.failDefault("clientAuditService.Export", app.NoticeAuditExportFailed, err)
	}

	s.notifier.Success(app.NoticeAuditExported, name)
	return name, nil
}
