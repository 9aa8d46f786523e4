package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type academyStore struct {
	queries *sqlc.Queries
}

func newAcademyStore(queries *sqlc.Queries) AcademyStore {
	return &academyStore{queries: queries}
}

func (s *academyStore) Create(ctx context.Context, academy *model.Academy) error {
	row, err := s.queries.CreateAcademy(ctx, sqlc.CreateAcademyParams{
		ID:             academy.ID,
		OwnerUserID:    academy.OwnerUserID,
		VerificationID: academy.VerificationID,
		Name:           academy.Name,
		Slug:           academy.Slug,
		Description:    academy.Description,
		Region:         academy.Region,
		Address:        academy.Address,
		Phone:          academy.Phone,
		Tags:           nonNil(academy.Tags),
		LogoKey:        academy.LogoKey,
		JoinCode:       academy.JoinCode,
	})
	if err != nil {
		return translate(err)
	}
	*academy = *toAcademyModel(row)
	return nil
}

func (s *academyStore) GetByID(ctx context.Context, id int64) (*model.Academy, error) {
	row, err := s.queries.GetAcademy(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toAcademyModel(row), nil
}

func (s *academyStore) GetBySlug(ctx context.Context, slug string) (*model.Academy, error) {
	row, err := s.queries.GetAcademyBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toAcademyModel(row), nil
}

func (s *academyStore) GetByJoinCode(ctx context.Context, code string) (*model.Academy, error) {
	row, err := s.queries.GetAcademyByJoinCode(ctx, code)
	if err != nil {
		return nil, translate(err)
	}
	return toAcademyModel(row), nil
}

func (s *academyStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	return s.queries.SlugExists(ctx, slug)
}

func (s *academyStore) List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error) {
	var tag *string
	if filter.Subject != nil {
		t := "subject:" + *filter.Subject
		tag = &t
	}
	rows, err := s.queries.ListAcademies(ctx, sqlc.ListAcademiesParams{
		Region: filter.Region,
		Tag:    tag,
		Query:  filter.Query,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toAcademyModels(rows), nil
}

func (s *academyStore) ListCandidates(ctx context.Context, region *string, tags []string, afterID int64, limit int32) ([]model.Academy, error) {
	rows, err := s.queries.ListAcademyCandidates(ctx, sqlc.ListAcademyCandidatesParams{
		Region:  region,
		Tags:    tags,
		AfterID: afterID,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return toAcademyModels(rows), nil
}

func (s *academyStore) ListByMember(ctx context.Context, userID int64) ([]model.Academy, error) {
	rows, err := s.queries.ListAcademiesByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAcademyModels(rows), nil
}

func (s *academyStore) Update(ctx context.Context, academy *model.Academy) error {
	row, err := s.queries.UpdateAcademy(ctx, sqlc.UpdateAcademyParams{
		ID:          academy.ID,
		Name:        academy.Name,
		Description: academy.Description,
		Region:      academy.Region,
		Address:     academy.Address,
		Phone:       academy.Phone,
		Tags:        nonNil(academy.Tags),
		LogoKey:     academy.LogoKey,
	})
	if err != nil {
		return translate(err)
	}
	*academy = *toAcademyModel(row)
	return nil
}

func (s *academyStore) UpdateJoinCode(ctx context.Context, id int64, code string) (*model.Academy, error) {
	row, err := s.queries.UpdateAcademyJoinCode(ctx, sqlc.UpdateAcademyJoinCodeParams{
		ID:       id,
		JoinCode: code,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toAcademyModel(row), nil
}

func (s *academyStore) SoftDelete(ctx context.Context, id int64) error {
	return affected(s.queries.SoftDeleteAcademy(ctx, id))
}

func toAcademyModel(row sqlc.Academy) *model.Academy {
	return &model.Academy{
		ID:             row.ID,
		OwnerUserID:    row.OwnerUserID,
		VerificationID: row.VerificationID,
		Name:           row.Name,
		Slug:           row.Slug,
		Description:    row.Description,
		Region:         row.Region,
		Address:        row.Address,
		Phone:          row.Phone,
		Tags:           nonNil(row.Tags),
		LogoKey:        row.LogoKey,
		JoinCode:       row.JoinCode,
		IsDeleted:      row.IsDeleted,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toAcademyModels(rows []sqlc.Academy) []model.Academy {
	out := make([]model.Academy, len(rows))
	for i, r := range rows {
		out[i] = *toAcademyModel(r)
	}
	return out
}
