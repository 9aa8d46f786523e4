package service

import (
	"context"
	"fmt"
	"log/slog"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const (
	maxPostTitle  = 200
	maxPostBody   = 5000
	maxPostImages = 10
)

type PostInput struct {
	Title     string
	Body      string
	ImageKeys []string
}

type FeedService interface {
	CreatePost(ctx context.Context, actorID, academyID int64, input PostInput) (*model.Post, error)
	DeletePost(ctx context.Context, actorID, academyID, postID int64) error
	ListByAcademy(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error)
	Feed(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error)
}

type feedService struct {
	memberStore store.MemberStore
	postStore   store.PostStore
}

func NewFeedService(memberStore store.MemberStore, postStore store.PostStore) FeedService {
	return &feedService{
		memberStore: memberStore,
		postStore:   postStore,
	}
}

func (s *feedService) CreatePost(ctx context.Context, actorID, academyID int64, input PostInput) (*model.Post, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManagePosts); err != nil {
		return nil, err
	}

	title, err := requireText("title", input.Title, maxPostTitle)
	if err != nil {
		return nil, err
	}
	body, err := requireText("body", input.Body, maxPostBody)
	if err != nil {
		return nil, err
	}

	if len(input.ImageKeys) > maxPostImages {
		return nil, fmt.Errorf("%w: at most %d images per post", ErrInvalidInput, maxPostImages)
	}
	keys := make([]string, 0, len(input.ImageKeys))
	for _, key := range input.ImageKeys {
		if err := store.ValidateImageKey(key); err != nil {
			return nil, fmt.Errorf("%w: image key %q", ErrInvalidInput, key)
		}
		keys = append(keys, key)
	}

	post := &model.Post{
		ID:        id.New(),
		AcademyID: academyID,
		AuthorID:  actorID,
		Title:     title,
		Body:      body,
		ImageKeys: keys,
	}
	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	slog.InfoContext(ctx, "post created", "post_id", post.ID, "academy_id", academyID)
	return post, nil
}

func (s *feedService) DeletePost(ctx context.Context, actorID, academyID, postID int64) error {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManagePosts); err != nil {
		return err
	}
	if err := s.postStore.Delete(ctx, academyID, postID); err != nil {
		return notFound(err, "post")
	}
	return nil
}

func (s *feedService) ListByAcademy(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error) {
	limit, _ = Page(limit, 0)
	return s.postStore.ListByAcademy(ctx, academyID, before, limit)
}

func (s *feedService) Feed(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error) {
	region = trimmedPtr(region)
	if region != nil {
		if err := validateRegion(*region); err != nil {
			return nil, err
		}
	}
	limit, _ = Page(limit, 0)
	return s.postStore.ListFeed(ctx, region, before, limit)
}
