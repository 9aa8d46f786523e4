package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type seminarStore struct {
	queries *sqlc.Queries
}

func newSeminarStore(queries *sqlc.Queries) SeminarStore {
	return &seminarStore{queries: queries}
}

func (s *seminarStore) Create(ctx context.Context, seminar *model.Seminar) error {
	row, err := s.queries.CreateSeminar(ctx, sqlc.CreateSeminarParams{
		ID:          seminar.ID,
		AcademyID:   seminar.AcademyID,
		Title:       seminar.Title,
		Description: seminar.Description,
		Location:    seminar.Location,
		StartsAt:    timestamptz(seminar.StartsAt),
		Capacity:    seminar.Capacity,
	})
	if err != nil {
		return translate(err)
	}
	*seminar = *toSeminarModel(row)
	return nil
}

func (s *seminarStore) GetByID(ctx context.Context, id int64) (*model.Seminar, error) {
	row, err := s.queries.GetSeminar(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	m := toSeminarModel(sqlc.Seminar{
		ID: row.ID, AcademyID: row.AcademyID, Title: row.Title, Description: row.Description,
		Location: row.Location, StartsAt: row.StartsAt, Capacity: row.Capacity, Status: row.Status,
		CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
	})
	m.SeatsTaken = row.SeatsTaken
	return m, nil
}

func (s *seminarStore) Lock(ctx context.Context, id int64) (*model.Seminar, error) {
	row, err := s.queries.LockSeminar(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toSeminarModel(row), nil
}

func (s *seminarStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.Seminar, error) {
	rows, err := s.queries.ListSeminarsByAcademy(ctx, academyID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Seminar, len(rows))
	for i, r := range rows {
		m := toSeminarModel(sqlc.Seminar{
			ID: r.ID, AcademyID: r.AcademyID, Title: r.Title, Description: r.Description,
			Location: r.Location, StartsAt: r.StartsAt, Capacity: r.Capacity, Status: r.Status,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.SeatsTaken = r.SeatsTaken
		out[i] = *m
	}
	return out, nil
}

func (s *seminarStore) ListUpcoming(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error) {
	rows, err := s.queries.ListUpcomingSeminars(ctx, sqlc.ListUpcomingSeminarsParams{
		Region: region,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Seminar, len(rows))
	for i, r := range rows {
		m := toSeminarModel(sqlc.Seminar{
			ID: r.ID, AcademyID: r.AcademyID, Title: r.Title, Description: r.Description,
			Location: r.Location, StartsAt: r.StartsAt, Capacity: r.Capacity, Status: r.Status,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.SeatsTaken = r.SeatsTaken
		m.AcademyName = r.AcademyName
		out[i] = *m
	}
	return out, nil
}

func (s *seminarStore) Update(ctx context.Context, seminar *model.Seminar) error {
	row, err := s.queries.UpdateSeminar(ctx, sqlc.UpdateSeminarParams{
		ID:          seminar.ID,
		AcademyID:   seminar.AcademyID,
		Title:       seminar.Title,
		Description: seminar.Description,
		Location:    seminar.Location,
		StartsAt:    timestamptz(seminar.StartsAt),
		Capacity:    seminar.Capacity,
	})
	if err != nil {
		return translate(err)
	}
	*seminar = *toSeminarModel(row)
	return nil
}

func (s *seminarStore) SetStatus(ctx context.Context, academyID, id int64, from, to model.SeminarStatus) (*model.Seminar, error) {
	row, err := s.queries.UpdateSeminarStatus(ctx, sqlc.UpdateSeminarStatusParams{
		ID:         id,
		AcademyID:  academyID,
		Status:     string(to),
		FromStatus: string(from),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toSeminarModel(row), nil
}

func (s *seminarStore) SeatsTaken(ctx context.Context, id int64) (int32, error) {
	return s.queries.CountSeminarSeats(ctx, id)
}

func toSeminarModel(row sqlc.Seminar) *model.Seminar {
	return &model.Seminar{
		ID:          row.ID,
		AcademyID:   row.AcademyID,
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		StartsAt:    row.StartsAt.Time,
		Capacity:    row.Capacity,
		Status:      model.SeminarStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
