package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultProfilesPageSize is the page size of the profiles listing.
const DefaultProfilesPageSize = 20

type profileList = query.InfiniteData[models.PersonProfile]

type clientGenealogyService struct {
	Deps
	api      adapter.GenealogyAPI
	pageSize int
}

func NewClientGenealogyService(d Deps, api adapter.GenealogyAPI, pageSize int) ClientGenealogyService {
	if pageSize <= 0 {
		pageSize = DefaultProfilesPageSize
	}
	return &clientGenealogyService{Deps: d, api: api, pageSize: pageSize}
}

func (s *clientGenealogyService) Profiles(ctx context.Context, params models.ProfilesQueryParams) (profileList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return profileList{}, err
	}

	return query.InfiniteQuery[models.PersonProfile](ctx, s.cache, profilesKey(vaultID, params),
		func(ctx context.Context, page int) (models.Page[models.PersonProfile], error) {
			p, err := s.api.ListProfiles(ctx, vaultID, params, page, s.pageSize)
			return p, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientGenealogyService) NextProfilesPage(ctx context.Context, params models.ProfilesQueryParams) (profileList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return profileList{}, err
	}

	data, err := query.FetchNextPage[models.PersonProfile](ctx, s.cache, profilesKey(vaultID, params))
	if errors.Is(err, query.ErrNotLoaded) {
		return s.Profiles(ctx, params)
	}
	return data, err
}

func (s *clientGenealogyService) Profile(ctx context.Context, profileID string) (models.PersonProfile, error) {
	return query.Query(ctx, s.cache, profileKey(profileID),
		func(ctx context.Context) (models.PersonProfile, error) {
			p, err := s.api.GetProfile(ctx, profileID)
			return p, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientGenealogyService) CreateProfile(ctx context.Context, req models.ProfileRequest) (models.PersonProfile, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.PersonProfile{}, err
	}
	if req.VaultID == "" {
		req.VaultID = vaultID
	}

	profile, err := s.api.CreateProfile(ctx, req)
	if err != nil {
		return models.PersonProfile{}, s.fail("clientGenealogyService.CreateProfile", app.NoticeProfileSaveFailed, app.NoticeReviewFallback, err)
	}

	s.invalidate(keyProfiles, keyTreeData)
	s.notifier.Success(app.NoticeProfileSaved, profile.FullName)
	return profile, nil
}

func (s *clientGenealogyService) UpdateProfile(ctx context.Context, profileID string, req models.ProfileRequest) (models.PersonProfile, error) {
	profile, err := s.api.UpdateProfile(ctx, profileID, req)
	if err != nil {
		return models.PersonProfile{}, s.failDefault("clientGenealogyService.UpdateProfile", app.NoticeProfileSaveFailed, err)
	}

	s.invalidate(keyProfiles, keyProfile, keyTreeData)
	s.notifier.Success(app.NoticeProfileSaved, profile.FullName)
	return profile, nil
}

func (s *clientGenealogyService) DeleteProfile(ctx context.Context, profileID string) error {
	if err := s.api.DeleteProfile(ctx, profileID); err != nil {
		return s.failDefault("clientGenealogyService.DeleteProfile", app.NoticeProfileDeleteFail, err)
	}

	s.cache.Remove(profileKey(profileID))
	s.invalidate(keyProfiles, keyTreeData)
	s.notifier.Success(app.NoticeProfileDeleted, "")
	return nil
}

func (s *clientGenealogyService) Relationships(ctx context.Context) ([]models.Relationship, error) {
	vaultID, err := s.vault()
	if err != nil {
		return nil, err
	}

	return query.Query(ctx, s.cache, relationshipsKey(vaultID),
		func(ctx context.Context) ([]models.Relationship, error) {
			rels, err := s.api.ListRelationships(ctx, vaultID)
			return rels, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientGenealogyService) CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (models.Relationship, error) {
	if err := s.validate(ctx, app.NoticeRelationAddFailed, req); err != nil {
		return models.Relationship{}, err
	}

	rel, err := s.api.CreateRelationship(ctx, req)
	if err != nil {
		return models.Relationship{}, s.failDefault("clientGenealogyService.CreateRelationship", app.NoticeRelationAddFailed, err)
	}

	s.invalidate(keyRelationships, keyTreeData)
	s.notifier.Success(app.NoticeRelationAdded, "")
	return rel, nil
}

func (s *clientGenealogyService) DeleteRelationship(ctx context.Context, relationshipID string) error {
	if err := s.api.DeleteRelationship(ctx, relationshipID); err != nil {
		return s.failDefault("clientGenealogyService.DeleteRelationship", app.NoticeRelationRemoveFail, err)
	}

	s.invalidate(keyRelationships, keyTreeData)
	s.notifier.Success(app.NoticeRelationRemoved, "")
	return nil
}

func (s *clientGenealogyService) TreeData(ctx context.Context) (models.TreeData, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.TreeData{}, err
	}

	return query.Query(ctx, s.cache, treeDataKey(vaultID),
		func(ctx context.Context) (models.TreeData, error) {
			tree, err := s.api.TreeData(ctx, vaultID)
			return tree, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientGenealogyService) MediaTags(ctx context.Context, mediaID string) ([]models.MediaTag, error) {
	return query.Query(ctx, s.cache, mediaTagsKey(mediaID),
		func(ctx context.Context) ([]models.MediaTag, error) {
			tags, err := s.api.ListMediaTags(ctx, mediaID)
			return tags, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (s *clientGenealogyService) CreateMediaTag(ctx context.Context, req models.CreateMediaTagRequest) (models.MediaTag, error) {
	tag, err := s.api.CreateMediaTag(ctx, req)
	if err != nil {
		return models.MediaTag{}, s.failDefault("clientGenealogyService.CreateMediaTag", app.NoticeTagAddFailed, err)
	}

	s.invalidate(mediaTagsKey(req.MediaItem))
	s.notifier.Success(app.NoticeTagAdded, tag.PersonName)
	return tag, nil
}

func (s *clientGenealogyService) DeleteMediaTag(ctx context.Context, mediaID, tagID string) error {
	if err := s.api.DeleteMediaTag(ctx, tagID); err != nil {
		return s.failDefault("clientGenealogyService.DeleteMediaTag", app.NoticeTagRemoveFailed, err)
	}

	s.invalidate(mediaTagsKey(mediaID))
	s.notifier.Success(app.NoticeTagRemoved, "")
	return nil
}
