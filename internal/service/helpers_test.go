package service

import (
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/mock"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

const testVaultID = "v1"

// fixture bundles the mocks shared by the client service tests.
type fixture struct {
	ctrl     *gomock.Controller
	api      *mock.MockServerAdapter
	notifier *mock.MockNotifier
	cache    *query.Client
	deps     Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithVault(t, testVaultID)
}

func newFixtureWithVault(t *testing.T, vaultID string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	scope := mock.NewMockVaultScope(ctrl)
	scope.EXPECT().ActiveVaultID().Return(vaultID).AnyTimes()

	f := &fixture{
		ctrl:     ctrl,
		api:      mock.NewMockServerAdapter(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
		cache:    query.NewClient(),
	}
	f.deps = NewDeps(f.cache, scope, f.notifier, nil, logger.Nop())
	return f
}

func mediaItems(ids ...string) []models.MediaItem {
	items := make([]models.MediaItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.MediaItem{ID: id, VaultID: testVaultID, Title: "memory " + id})
	}
	return items
}

func onePage[T any](items ...T) models.Page[T] {
	return models.Page[T]{Items: items, TotalCount: len(items)}
}

func apiError(status int, detail string) error {
	payload := models.APIErrorResponse{}
	if detail != "" {
		payload["detail"] = detail
	}
	return adapter.NewAPIError(status, payload)
}

func apiErrorPayload(status int, payload models.APIErrorResponse) error {
	return adapter.NewAPIError(status, payload)
}

var errServerDown = apiError(http.StatusInternalServerError, "")
