package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
)

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrImageEmpty         = errors.New("image is empty")
	ErrImageType          = errors.New("unsupported image type")
	ErrInvalidImageKey    = errors.New("invalid image key")
	ErrImagePathTraversal = errors.New("path traversal not allowed")
)

// imageExtensions lists the accepted content types and the file extension
// used on disk.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var imageKeyExtensions = func() map[string]bool {
	m := make(map[string]bool, len(imageExtensions))
	for _, ext := range imageExtensions {
		m[ext] = true
	}
	return m
}()

// ImageStore persists uploaded images and resolves them by key.
type ImageStore interface {
	// Save writes the image and returns its key and public URL.
	Save(ctx context.Context, data []byte, contentType string) (model.StoredImage, error)

	// Path resolves a key to a file on disk.
	Path(key string) (string, error)
}

// LocalImageStore implements ImageStore on the local filesystem.
type LocalImageStore struct {
	rootDir       string
	publicBaseURL string
	now           func() time.Time
}

func NewLocalImageStore(rootDir, publicBaseURL string) (*LocalImageStore, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("image root directory is required")
	}

	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image root directory: %w", err)
	}

	return &LocalImageStore{
		rootDir:       rootDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}, nil
}

// Save stores the image under <yyyy>/<mm>/<id>.<ext>.
func (s *LocalImageStore) Save(ctx context.Context, data []byte, contentType string) (model.StoredImage, error) {
	if len(data) == 0 {
		return model.StoredImage{}, ErrImageEmpty
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return model.StoredImage{}, ErrImageType
	}

	now := s.now().UTC()
	key := path.Join(now.Format("2006"), now.Format("01"), fmt.Sprintf("%d.%s", id.New(), ext))

	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return model.StoredImage{}, fmt.Errorf("creating image directory: %w", err)
	}

	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return model.StoredImage{}, fmt.Errorf("writing temp image: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return model.StoredImage{}, fmt.Errorf("renaming image: %w", err)
	}

	return model.StoredImage{
		Key:         key,
		URL:         s.URL(key),
		SHA256:      sha256Hash(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Path validates key and returns the file it names.
func (s *LocalImageStore) Path(key string) (string, error) {
	if err := ValidateImageKey(key); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(key))
	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return "", ErrImageNotFound
	}
	return fullPath, nil
}

func (s *LocalImageStore) URL(key string) string {
	return s.publicBaseURL + "/" + key
}

func ValidateImageKey(key string) error {
	if key == "" {
		return ErrInvalidImageKey
	}

	if strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return ErrImagePathTraversal
	}

	if path.IsAbs(key) || filepath.IsAbs(key) {
		return ErrImagePathTraversal
	}

	if path.Clean(key) != key {
		return ErrInvalidImageKey
	}

	// Only finished images; this also keeps in-flight .tmp files private.
	if !imageKeyExtensions[strings.TrimPrefix(path.Ext(key), ".")] {
		return ErrInvalidImageKey
	}

	return nil
}

func sha256Hash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}
