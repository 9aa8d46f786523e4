package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type verificationStore struct {
	queries *sqlc.Queries
}

func newVerificationStore(queries *sqlc.Queries) VerificationStore {
	return &verificationStore{queries: queries}
}

func (s *verificationStore) Create(ctx context.Context, v *model.BusinessVerification) error {
	row, err := s.queries.CreateBusinessVerification(ctx, sqlc.CreateBusinessVerificationParams{
		ID:                 v.ID,
		UserID:             v.UserID,
		BusinessNumber:     v.BusinessNumber,
		BusinessName:       v.BusinessName,
		RepresentativeName: v.RepresentativeName,
		DocumentKey:        v.DocumentKey,
	})
	if err != nil {
		return translate(err)
	}
	*v = *toVerificationModel(row)
	return nil
}

func (s *verificationStore) GetByID(ctx context.Context, id int64) (*model.BusinessVerification, error) {
	row, err := s.queries.GetBusinessVerification(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toVerificationModel(row), nil
}

func (s *verificationStore) GetLatestByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	row, err := s.queries.GetLatestBusinessVerificationByUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return toVerificationModel(row), nil
}

func (s *verificationStore) GetUsableByUser(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	row, err := s.queries.GetUsableBusinessVerification(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return toVerificationModel(row), nil
}

func (s *verificationStore) ListByStatus(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error) {
	rows, err := s.queries.ListBusinessVerificationsByStatus(ctx, sqlc.ListBusinessVerificationsByStatusParams{
		Status: string(status),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.BusinessVerification, len(rows))
	for i, r := range rows {
		out[i] = *toVerificationModel(r)
	}
	return out, nil
}

func (s *verificationStore) Review(ctx context.Context, id int64, status model.VerificationStatus, reason *string, reviewerID *int64) (*model.BusinessVerification, error) {
	row, err := s.queries.ReviewBusinessVerification(ctx, sqlc.ReviewBusinessVerificationParams{
		ID:           id,
		Status:       string(status),
		RejectReason: reason,
		ReviewedBy:   reviewerID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toVerificationModel(row), nil
}

func (s *verificationStore) Consume(ctx context.Context, id int64) (*model.BusinessVerification, error) {
	row, err := s.queries.ConsumeBusinessVerification(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toVerificationModel(row), nil
}

func toVerificationModel(row sqlc.BusinessVerification) *model.BusinessVerification {
	return &model.BusinessVerification{
		ID:                 row.ID,
		UserID:             row.UserID,
		BusinessNumber:     row.BusinessNumber,
		BusinessName:       row.BusinessName,
		RepresentativeName: row.RepresentativeName,
		DocumentKey:        row.DocumentKey,
		Status:             model.VerificationStatus(row.Status),
		RejectReason:       row.RejectReason,
		ReviewedBy:         row.ReviewedBy,
		ReviewedAt:         timePtr(row.ReviewedAt),
		ConsumedAt:         timePtr(row.ConsumedAt),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
