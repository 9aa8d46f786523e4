package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type registrationStore struct {
	queries *sqlc.Queries
}

func newRegistrationStore(queries *sqlc.Queries) RegistrationStore {
	return &registrationStore{queries: queries}
}

func (s *registrationStore) Get(ctx context.Context, seminarID, userID int64) (*model.SeminarRegistration, error) {
	row, err := s.queries.GetSeminarRegistration(ctx, sqlc.GetSeminarRegistrationParams{
		SeminarID: seminarID,
		UserID:    userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toRegistrationModel(row), nil
}

func (s *registrationStore) Create(ctx context.Context, reg *model.SeminarRegistration) error {
	row, err := s.queries.CreateSeminarRegistration(ctx, sqlc.CreateSeminarRegistrationParams{
		ID:            reg.ID,
		SeminarID:     reg.SeminarID,
		UserID:        reg.UserID,
		ChildID:       reg.ChildID,
		AttendeeCount: reg.AttendeeCount,
	})
	if err != nil {
		return translate(err)
	}
	*reg = *toRegistrationModel(row)
	return nil
}

func (s *registrationStore) Reactivate(ctx context.Context, id int64, childID *int64, attendees int32) (*model.SeminarRegistration, error) {
	row, err := s.queries.ReactivateSeminarRegistration(ctx, sqlc.ReactivateSeminarRegistrationParams{
		ID:            id,
		ChildID:       childID,
		AttendeeCount: attendees,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toRegistrationModel(row), nil
}

func (s *registrationStore) Cancel(ctx context.Context, seminarID, userID int64) (*model.SeminarRegistration, error) {
	row, err := s.queries.CancelSeminarRegistration(ctx, sqlc.CancelSeminarRegistrationParams{
		SeminarID: seminarID,
		UserID:    userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toRegistrationModel(row), nil
}

func (s *registrationStore) ListBySeminar(ctx context.Context, seminarID int64) ([]model.SeminarRegistration, error) {
	rows, err := s.queries.ListSeminarRegistrations(ctx, seminarID)
	if err != nil {
		return nil, err
	}
	out := make([]model.SeminarRegistration, len(rows))
	for i, r := range rows {
		m := toRegistrationModel(sqlc.SeminarRegistration{
			ID: r.ID, SeminarID: r.SeminarID, UserID: r.UserID, ChildID: r.ChildID,
			AttendeeCount: r.AttendeeCount, Status: r.Status, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.UserName = r.UserName
		m.UserEmail = r.UserEmail
		out[i] = *m
	}
	return out, nil
}

func (s *registrationStore) ListByUser(ctx context.Context, userID int64) ([]model.SeminarRegistration, error) {
	rows, err := s.queries.ListSeminarRegistrationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.SeminarRegistration, len(rows))
	for i, r := range rows {
		m := toRegistrationModel(sqlc.SeminarRegistration{
			ID: r.ID, SeminarID: r.SeminarID, UserID: r.UserID, ChildID: r.ChildID,
			AttendeeCount: r.AttendeeCount, Status: r.Status, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.SeminarTitle = r.SeminarTitle
		m.SeminarStartsAt = timePtr(r.SeminarStartsAt)
		out[i] = *m
	}
	return out, nil
}

func toRegistrationModel(row sqlc.SeminarRegistration) *model.SeminarRegistration {
	return &model.SeminarRegistration{
		ID:            row.ID,
		SeminarID:     row.SeminarID,
		UserID:        row.UserID,
		ChildID:       row.ChildID,
		AttendeeCount: row.AttendeeCount,
		Status:        model.RegistrationStatus(row.Status),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
