package service

import (
	"context"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

type clientVaultsService struct {
	Deps
	api adapter.VaultsAPI
}

func NewClientVaultsService(d Deps, api adapter.VaultsAPI) ClientVaultsService {
	return &clientVaultsService{Deps: d, api: api}
}

func (s *clientVaultsService) List(ctx context.Context) ([]models.VaultSummary, error) {
	return query.Query(ctx, s.cache, keyVaults,
		func(ctx context.Context) ([]models.VaultSummary, error) {
			vaults, err := s.api.ListVaults(ctx)
			return vaults, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientVaultsService) Get(ctx context.Context, vaultID string) (models.VaultSummary, error) {
	if vaultID == "" {
		return models.VaultSummary{}, ErrNoActiveVault
	}

	return query.Query(ctx, s.cache, vaultKey(vaultID),
		func(ctx context.Context) (models.VaultSummary, error) {
			v, err := s.api.GetVault(ctx, vaultID)
			return v, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientVaultsService) Create(ctx context.Context, req models.VaultRequest) (models.VaultSummary, error) {
	if err := s.validate(ctx, app.NoticeVaultCreateFailed, req); err != nil {
		return models.VaultSummary{}, err
	}

	v, err := s.api.CreateVault(ctx, req)
	if err != nil {
		return models.VaultSummary{}, s.failDefault("clientVaultsService.Create", app.NoticeVaultCreateFailed, err)
	}

	s.invalidate(keyVaults)
	s.notifier.Success(app.NoticeVaultCreated, v.Name)
	return v, nil
}

func (s *clientVaultsService) Update(ctx context.Context, vaultID string, req models.VaultRequest) (models.VaultSummary, error) {
	if err := s.validate(ctx, app.NoticeVaultSaveFailed, req); err != nil {
		return models.VaultSummary{}, err
	}

	v, err := s.api.UpdateVault(ctx, vaultID, req)
	if err != nil {
		return models.VaultSummary{}, s.failDefault("clientVaultsService.Update", app.NoticeVaultSaveFailed, err)
	}

	s.invalidate(keyVaults, keyVault)
	s.notifier.Success(app.NoticeVaultSaved, v.Name)
	return v, nil
}

func (s *clientVaultsService) HealthAnalysis(ctx context.Context, vaultID string) (models.VaultHealthReport, error) {
	if vaultID == "" {
		return models.VaultHealthReport{}, ErrNoActiveVault
	}

	return query.Query(ctx, s.cache, vaultHealthKey(vaultID),
		func(ctx context.Context) (models.VaultHealthReport, error) {
			report, err := s.api.HealthAnalysis(ctx, vaultID)
			return report, mapAdapterError(err)
		}, query.DefaultOptions())
}

// Cleanup removes redundant copies, or only previews the removal when
// req.DryRun is set.
func (s *clientVaultsService) Cleanup(ctx context.Context, vaultID string, req models.VaultCleanupRequest) (models.VaultCleanupResult, error) {
	if vaultID == "" {
		return models.VaultCleanupResult{}, ErrNoActiveVault
	}

	res, err := s.api.CleanupRedundant(ctx, vaultID, req)
	if err != nil {
		return models.VaultCleanupResult{}, s.failDefault("clientVaultsService.Cleanup", app.NoticeCleanupFailed, err)
	}

	s.invalidate(vaultHealthKey(vaultID), keyMedia)
	if req.DryRun {
		s.notifier.Success(app.NoticeCleanupPreview, res.Message)
	} else {
		s.notifier.Success(app.NoticeCleanupDone, res.Message)
	}
	return res, nil
}
