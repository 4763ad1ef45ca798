package adapter

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathVaults = "vaults/"

// ListVaults implements [VaultsAPI].
func (h *httpServerAdapter) ListVaults(ctx context.Context) ([]models.VaultSummary, error) {
	rows, err := getList[models.APIVault](ctx, h, pathVaults, nil)
	if err != nil {
		return nil, err
	}
	return mapSlice(rows, vault), nil
}

// GetVault implements [VaultsAPI].
func (h *httpServerAdapter) GetVault(ctx context.Context, vaultID string) (models.VaultSummary, error) {
	var out models.APIVault
	if err := h.getJSON(ctx, vaultPath(vaultID), nil, &out); err != nil {
		return models.VaultSummary{}, err
	}
	return vault(out), nil
}

func vaultForm(req models.VaultRequest) *multipartForm {
	form := &multipartForm{}
	set := func(name string, value *string) {
		if value != nil {
			form.add(name, *value)
		}
	}
	set("name", req.Name)
	set("description", req.Description)
	set("familyName", req.FamilyName)
	if req.SafetyWindowMinutes != nil {
		form.add("safetyWindowMinutes", strconv.Itoa(*req.SafetyWindowMinutes))
	}
	if req.StorageQuality != nil {
		form.add("storageQuality", string(*req.StorageQuality))
	}
	if req.DefaultVisibility != nil {
		form.add("defaultVisibility", string(*req.DefaultVisibility))
	}
	switch {
	case req.CoverPhoto != nil:
		form.addFile("coverPhoto", *req.CoverPhoto)
	case req.CoverPhotoURL != nil && strings.TrimSpace(*req.CoverPhotoURL) != "":
		form.add("coverPhoto", strings.TrimSpace(*req.CoverPhotoURL))
	}
	return form
}

// CreateVault implements [VaultsAPI].
func (h *httpServerAdapter) CreateVault(ctx context.Context, req models.VaultRequest) (models.VaultSummary, error) {
	var out models.APIVault
	if err := h.sendForm(ctx, http.MethodPost, pathVaults, vaultForm(req), &out); err != nil {
		return models.VaultSummary{}, err
	}
	return vault(out), nil
}

// UpdateVault implements [VaultsAPI].
func (h *httpServerAdapter) UpdateVault(ctx context.Context, vaultID string, req models.VaultRequest) (models.VaultSummary, error) {
	var out models.APIVault
	if err := h.sendForm(ctx, http.MethodPatch, vaultPath(vaultID), vaultForm(req), &out); err != nil {
		return models.VaultSummary{}, err
	}
	return vault(out), nil
}

// HealthAnalysis implements [VaultsAPI].
func (h *httpServerAdapter) HealthAnalysis(ctx context.Context, vaultID string) (models.VaultHealthReport, error) {
	var out models.APIVaultHealthReport
	if err := h.getJSON(ctx, vaultPath(vaultID)+"health-analysis/", nil, &out); err != nil {
		return models.VaultHealthReport{}, err
	}
	return h.mapper.healthReport(out), nil
}

// CleanupRedundant implements [VaultsAPI]. The result groups use the same
// shape as the health report.
func (h *httpServerAdapter) CleanupRedundant(ctx context.Context, vaultID string, req models.VaultCleanupRequest) (models.VaultCleanupResult, error) {
	var out models.VaultCleanupResult
	if err := h.sendJSON(ctx, http.MethodPost, vaultPath(vaultID)+"cleanup-redundant/", req, &out); err != nil {
		return models.VaultCleanupResult{}, err
	}
	return out, nil
}
