package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type bookmarkStore struct {
	queries *sqlc.Queries
}

func newBookmarkStore(queries *sqlc.Queries) BookmarkStore {
	return &bookmarkStore{queries: queries}
}

func (s *bookmarkStore) Add(ctx context.Context, userID, academyID int64) error {
	return translate(s.queries.AddBookmark(ctx, sqlc.AddBookmarkParams{
		UserID:    userID,
		AcademyID: academyID,
	}))
}

func (s *bookmarkStore) Remove(ctx context.Context, userID, academyID int64) error {
	return affected(s.queries.RemoveBookmark(ctx, sqlc.RemoveBookmarkParams{
		UserID:    userID,
		AcademyID: academyID,
	}))
}

func (s *bookmarkStore) ListAcademies(ctx context.Context, userID int64) ([]model.Academy, error) {
	rows, err := s.queries.ListBookmarkedAcademies(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAcademyModels(rows), nil
}
