package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type consultationStore struct {
	queries *sqlc.Queries
}

func newConsultationStore(queries *sqlc.Queries) ConsultationStore {
	return &consultationStore{queries: queries}
}

func (s *consultationStore) Create(ctx context.Context, c *model.Consultation) error {
	row, err := s.queries.CreateConsultation(ctx, sqlc.CreateConsultationParams{
		ID:          c.ID,
		AcademyID:   c.AcademyID,
		UserID:      c.UserID,
		ChildID:     c.ChildID,
		PreferredAt: optTimestamptz(c.PreferredAt),
		Message:     c.Message,
	})
	if err != nil {
		return translate(err)
	}
	*c = *toConsultationModel(row)
	return nil
}

func (s *consultationStore) GetByID(ctx context.Context, id int64) (*model.Consultation, error) {
	row, err := s.queries.GetConsultation(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toConsultationModel(row), nil
}

func (s *consultationStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]model.Consultation, error) {
	rows, err := s.queries.ListConsultationsByUser(ctx, sqlc.ListConsultationsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toConsultationModels(rows), nil
}

func (s *consultationStore) ListByAcademy(ctx context.Context, academyID int64, status *model.ConsultationStatus, limit, offset int32) ([]model.Consultation, error) {
	var st *string
	if status != nil {
		v := string(*status)
		st = &v
	}
	rows, err := s.queries.ListConsultationsByAcademy(ctx, sqlc.ListConsultationsByAcademyParams{
		AcademyID: academyID,
		Status:    st,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	return toConsultationModels(rows), nil
}

func (s *consultationStore) UpdateStatus(ctx context.Context, id int64, from, to model.ConsultationStatus, note *string) (*model.Consultation, error) {
	row, err := s.queries.UpdateConsultationStatus(ctx, sqlc.UpdateConsultationStatusParams{
		ID:          id,
		Status:      string(to),
		AcademyNote: note,
		FromStatus:  string(from),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toConsultationModel(row), nil
}

func toConsultationModel(row sqlc.Consultation) *model.Consultation {
	return &model.Consultation{
		ID:          row.ID,
		AcademyID:   row.AcademyID,
		UserID:      row.UserID,
		ChildID:     row.ChildID,
		PreferredAt: timePtr(row.PreferredAt),
		Message:     row.Message,
		Status:      model.ConsultationStatus(row.Status),
		AcademyNote: row.AcademyNote,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toConsultationModels(rows []sqlc.Consultation) []model.Consultation {
	out := make([]model.Consultation, len(rows))
	for i, r := range rows {
		out[i] = *toConsultationModel(r)
	}
	return out
}
