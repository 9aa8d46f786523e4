package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type postStore struct {
	queries *sqlc.Queries
}

func newPostStore(queries *sqlc.Queries) PostStore {
	return &postStore{queries: queries}
}

func (s *postStore) Create(ctx context.Context, post *model.Post) error {
	row, err := s.queries.CreatePost(ctx, sqlc.CreatePostParams{
		ID:        post.ID,
		AcademyID: post.AcademyID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Body:      post.Body,
		ImageKeys: nonNil(post.ImageKeys),
	})
	if err != nil {
		return translate(err)
	}
	*post = *toPostModel(row)
	return nil
}

func (s *postStore) Delete(ctx context.Context, academyID, id int64) error {
	return affected(s.queries.DeletePost(ctx, sqlc.DeletePostParams{ID: id, AcademyID: academyID}))
}

func (s *postStore) ListByAcademy(ctx context.Context, academyID int64, before *int64, limit int32) ([]model.Post, error) {
	rows, err := s.queries.ListPostsByAcademy(ctx, sqlc.ListPostsByAcademyParams{
		AcademyID: academyID,
		Before:    before,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, len(rows))
	for i, r := range rows {
		m := toPostModel(sqlc.Post{
			ID: r.ID, AcademyID: r.AcademyID, AuthorID: r.AuthorID, Title: r.Title, Body: r.Body,
			ImageKeys: r.ImageKeys, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.AcademyName = r.AcademyName
		out[i] = *m
	}
	return out, nil
}

func (s *postStore) ListFeed(ctx context.Context, region *string, before *int64, limit int32) ([]model.Post, error) {
	rows, err := s.queries.ListFeedPosts(ctx, sqlc.ListFeedPostsParams{
		Region: region,
		Before: before,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, len(rows))
	for i, r := range rows {
		m := toPostModel(sqlc.Post{
			ID: r.ID, AcademyID: r.AcademyID, AuthorID: r.AuthorID, Title: r.Title, Body: r.Body,
			ImageKeys: r.ImageKeys, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
		m.AcademyName = r.AcademyName
		out[i] = *m
	}
	return out, nil
}

func toPostModel(row sqlc.Post) *model.Post {
	return &model.Post{
		ID:        row.ID,
		AcademyID: row.AcademyID,
		AuthorID:  row.AuthorID,
		Title:     row.Title,
		Body:      row.Body,
		ImageKeys: nonNil(row.ImageKeys),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
