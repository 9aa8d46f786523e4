package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type classStore struct {
	queries *sqlc.Queries
}

func newClassStore(queries *sqlc.Queries) ClassStore {
	return &classStore{queries: queries}
}

func (s *classStore) Create(ctx context.Context, class *model.Class) error {
	row, err := s.queries.CreateClass(ctx, sqlc.CreateClassParams{
		ID:          class.ID,
		AcademyID:   class.AcademyID,
		TeacherID:   class.TeacherID,
		Name:        class.Name,
		Subject:     class.Subject,
		TargetGrade: class.TargetGrade,
		Schedule:    class.Schedule,
		Tuition:     class.Tuition,
		Capacity:    class.Capacity,
	})
	if err != nil {
		return translate(err)
	}
	*class = *toClassModel(row)
	return nil
}

func (s *classStore) Get(ctx context.Context, academyID, id int64) (*model.Class, error) {
	row, err := s.queries.GetClass(ctx, sqlc.GetClassParams{ID: id, AcademyID: academyID})
	if err != nil {
		return nil, translate(err)
	}
	return toClassModel(row), nil
}

func (s *classStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Class, error) {
	rows, err := s.queries.ListClassesByAcademy(ctx, academyID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Class, len(rows))
	for i, r := range rows {
		out[i] = *toClassModel(r)
	}
	return out, nil
}

func (s *classStore) Update(ctx context.Context, class *model.Class) error {
	row, err := s.queries.UpdateClass(ctx, sqlc.UpdateClassParams{
		ID:          class.ID,
		AcademyID:   class.AcademyID,
		TeacherID:   class.TeacherID,
		Name:        class.Name,
		Subject:     class.Subject,
		TargetGrade: class.TargetGrade,
		Schedule:    class.Schedule,
		Tuition:     class.Tuition,
		Capacity:    class.Capacity,
	})
	if err != nil {
		return translate(err)
	}
	*class = *toClassModel(row)
	return nil
}

func (s *classStore) Delete(ctx context.Context, academyID, id int64) error {
	return affected(s.queries.DeleteClass(ctx, sqlc.DeleteClassParams{ID: id, AcademyID: academyID}))
}

func toClassModel(row sqlc.Class) *model.Class {
	return &model.Class{
		ID:          row.ID,
		AcademyID:   row.AcademyID,
		TeacherID:   row.TeacherID,
		Name:        row.Name,
		Subject:     row.Subject,
		TargetGrade: row.TargetGrade,
		Schedule:    row.Schedule,
		Tuition:     row.Tuition,
		Capacity:    row.Capacity,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
