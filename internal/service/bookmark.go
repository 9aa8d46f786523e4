package service

import (
	"context"
	"fmt"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

type BookmarkService interface {
	Add(ctx context.Context, userID, academyID int64) error
	Remove(ctx context.Context, userID, academyID int64) error
	List(ctx context.Context, userID int64) ([]model.Academy, error)
}

type bookmarkService struct {
	academyStore  store.AcademyStore
	bookmarkStore store.BookmarkStore
}

func NewBookmarkService(academyStore store.AcademyStore, bookmarkStore store.BookmarkStore) BookmarkService {
	return &bookmarkService{
		academyStore:  academyStore,
		bookmarkStore: bookmarkStore,
	}
}

func (s *bookmarkService) Add(ctx context.Context, userID, academyID int64) error {
	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return notFound(err, "academy")
	}
	if err := s.bookmarkStore.Add(ctx, userID, academyID); err != nil {
		return fmt.Errorf("adding bookmark: %w", err)
	}
	return nil
}

func (s *bookmarkService) Remove(ctx context.Context, userID, academyID int64) error {
	if err := s.bookmarkStore.Remove(ctx, userID, academyID); err != nil {
		return notFound(err, "bookmark")
	}
	return nil
}

func (s *bookmarkService) List(ctx context.Context, userID int64) ([]model.Academy, error) {
	return s.bookmarkStore.ListAcademies(ctx, userID)
}
