package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type teacherStore struct {
	queries *sqlc.Queries
}

func newTeacherStore(queries *sqlc.Queries) TeacherStore {
	return &teacherStore{queries: queries}
}

func (s *teacherStore) Create(ctx context.Context, teacher *model.Teacher) error {
	row, err := s.queries.CreateTeacher(ctx, sqlc.CreateTeacherParams{
		ID:        teacher.ID,
		AcademyID: teacher.AcademyID,
		Name:      teacher.Name,
		Subject:   teacher.Subject,
		Bio:       teacher.Bio,
		PhotoKey:  teacher.PhotoKey,
	})
	if err != nil {
		return translate(err)
	}
	*teacher = *toTeacherModel(row)
	return nil
}

func (s *teacherStore) Get(ctx context.Context, academyID, id int64) (*model.Teacher, error) {
	row, err := s.queries.GetTeacher(ctx, sqlc.GetTeacherParams{ID: id, AcademyID: academyID})
	if err != nil {
		return nil, translate(err)
	}
	return toTeacherModel(row), nil
}

func (s *teacherStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Teacher, error) {
	rows, err := s.queries.ListTeachersByAcademy(ctx, academyID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Teacher, len(rows))
	for i, r := range rows {
		out[i] = *toTeacherModel(r)
	}
	return out, nil
}

func (s *teacherStore) Update(ctx context.Context, teacher *model.Teacher) error {
	row, err := s.queries.UpdateTeacher(ctx, sqlc.UpdateTeacherParams{
		ID:        teacher.ID,
		AcademyID: teacher.AcademyID,
		Name:      teacher.Name,
		Subject:   teacher.Subject,
		Bio:       teacher.Bio,
		PhotoKey:  teacher.PhotoKey,
	})
	if err != nil {
		return translate(err)
	}
	*teacher = *toTeacherModel(row)
	return nil
}

func (s *teacherStore) Delete(ctx context.Context, academyID, id int64) error {
	return affected(s.queries.DeleteTeacher(ctx, sqlc.DeleteTeacherParams{ID: id, AcademyID: academyID}))
}

func toTeacherModel(row sqlc.Teacher) *model.Teacher {
	return &model.Teacher{
		ID:        row.ID,
		AcademyID: row.AcademyID,
		Name:      row.Name,
		Subject:   row.Subject,
		Bio:       row.Bio,
		PhotoKey:  row.PhotoKey,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
