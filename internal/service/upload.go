package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

var ErrUploadTooLarge = errors.New("upload exceeds the maximum size")

type UploadService interface {
	Upload(ctx context.Context, userID int64, data []byte) (model.StoredImage, error)
	// Resolve returns the local path of a stored image.
	Resolve(key string) (string, error)
	MaxSize() int64
}

type uploadService struct {
	images  store.ImageStore
	maxSize int64
}

func NewUploadService(images store.ImageStore, maxSize int64) UploadService {
	return &uploadService{images: images, maxSize: maxSize}
}

func (s *uploadService) MaxSize() int64 {
	return s.maxSize
}

func (s *uploadService) Upload(ctx context.Context, userID int64, data []byte) (model.StoredImage, error) {
	if int64(len(data)) > s.maxSize {
		return model.StoredImage{}, fmt.Errorf("%w: %d bytes", ErrUploadTooLarge, s.maxSize)
	}

	contentType := http.DetectContentType(data)
	img, err := s.images.Save(ctx, data, contentType)
	if err != nil {
		if errors.Is(err, store.ErrImageEmpty) || errors.Is(err, store.ErrImageType) {
			return model.StoredImage{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return model.StoredImage{}, fmt.Errorf("saving image: %w", err)
	}

	slog.InfoContext(ctx, "image uploaded",
		"key", img.Key,
		"size", img.Size,
		"content_type", img.ContentType,
		"user_id", userID)

	return img, nil
}

func (s *uploadService) Resolve(key string) (string, error) {
	p, err := s.images.Path(key)
	if err != nil {
		if errors.Is(err, store.ErrImageNotFound) || errors.Is(err, store.ErrInvalidImageKey) || errors.Is(err, store.ErrImagePathTraversal) {
			return "", fmt.Errorf("%w: image", ErrNotFound)
		}
		return "", err
	}
	return p, nil
}
