package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type childStore struct {
	queries *sqlc.Queries
}

func newChildStore(queries *sqlc.Queries) ChildStore {
	return &childStore{queries: queries}
}

func (s *childStore) Create(ctx context.Context, child *model.Child) error {
	row, err := s.queries.CreateChild(ctx, sqlc.CreateChildParams{
		ID:        child.ID,
		ParentID:  child.ParentID,
		Name:      child.Name,
		Grade:     child.Grade,
		BirthYear: child.BirthYear,
		Tags:      nonNil(child.Tags),
	})
	if err != nil {
		return translate(err)
	}
	*child = *toChildModel(row)
	return nil
}

func (s *childStore) Get(ctx context.Context, parentID, id int64) (*model.Child, error) {
	row, err := s.queries.GetChild(ctx, sqlc.GetChildParams{ID: id, ParentID: parentID})
	if err != nil {
		return nil, translate(err)
	}
	return toChildModel(row), nil
}

func (s *childStore) ListByParent(ctx context.Context, parentID int64) ([]model.Child, error) {
	rows, err := s.queries.ListChildrenByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Child, len(rows))
	for i, r := range rows {
		out[i] = *toChildModel(r)
	}
	return out, nil
}

func (s *childStore) Update(ctx context.Context, child *model.Child) error {
	row, err := s.queries.UpdateChild(ctx, sqlc.UpdateChildParams{
		ID:        child.ID,
		ParentID:  child.ParentID,
		Name:      child.Name,
		Grade:     child.Grade,
		BirthYear: child.BirthYear,
		Tags:      nonNil(child.Tags),
	})
	if err != nil {
		return translate(err)
	}
	*child = *toChildModel(row)
	return nil
}

func (s *childStore) Delete(ctx context.Context, parentID, id int64) error {
	return affected(s.queries.DeleteChild(ctx, sqlc.DeleteChildParams{ID: id, ParentID: parentID}))
}

func toChildModel(row sqlc.Child) *model.Child {
	return &model.Child{
		ID:        row.ID,
		ParentID:  row.ParentID,
		Name:      row.Name,
		Grade:     row.Grade,
		BirthYear: row.BirthYear,
		Tags:      nonNil(row.Tags),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
