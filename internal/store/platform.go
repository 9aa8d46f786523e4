package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type platformSettingStore struct {
	queries *sqlc.Queries
}

func newPlatformSettingStore(queries *sqlc.Queries) PlatformSettingStore {
	return &platformSettingStore{queries: queries}
}

func (s *platformSettingStore) List(ctx context.Context) ([]model.PlatformSetting, error) {
	rows, err := s.queries.ListPlatformSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.PlatformSetting, len(rows))
	for i, r := range rows {
		out[i] = *toPlatformSettingModel(r)
	}
	return out, nil
}

func (s *platformSettingStore) Get(ctx context.Context, key string) (*model.PlatformSetting, error) {
	row, err := s.queries.GetPlatformSetting(ctx, key)
	if err != nil {
		return nil, translate(err)
	}
	return toPlatformSettingModel(row), nil
}

func (s *platformSettingStore) Upsert(ctx context.Context, setting *model.PlatformSetting) error {
	row, err := s.queries.UpsertPlatformSetting(ctx, sqlc.UpsertPlatformSettingParams{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedBy: setting.UpdatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*setting = *toPlatformSettingModel(row)
	return nil
}

func toPlatformSettingModel(row sqlc.PlatformSetting) *model.PlatformSetting {
	return &model.PlatformSetting{
		Key:       row.Key,
		Value:     row.Value,
		UpdatedBy: row.UpdatedBy,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
