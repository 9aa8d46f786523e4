package service_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

var _ = Describe("UploadService", func() {
	var (
		svc    service.UploadService
		images *mockImageStore
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		images = &mockImageStore{
			saveFn: func(_ context.Context, data []byte, contentType string) (model.StoredImage, error) {
				if contentType != "image/png" {
					return model.StoredImage{}, store.ErrImageType
				}
				return model.StoredImage{Key: "2026/03/1.png", ContentType: contentType, Size: int64(len(data))}, nil
			},
		}
		svc = service.NewUploadService(images, 64)
	})

	It("sniffs the content type and stores the image", func() {
		img, err := svc.Upload(ctx, 5, pngHeader)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.ContentType).To(Equal("image/png"))
	})

	It("rejects non-images", func() {
		_, err := svc.Upload(ctx, 5, []byte("%PDF-1.7 not an image"))
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})

	It("rejects oversized uploads", func() {
		_, err := svc.Upload(ctx, 5, append(pngHeader, bytes.Repeat([]byte{0}, 64)...))
		Expect(err).To(MatchError(service.ErrUploadTooLarge))
	})

	It("maps bad keys to not found", func() {
		images.pathFn = func(_ string) (string, error) {
			return "", store.ErrImagePathTraversal
		}

		_, err := svc.Resolve("../secret")
		Expect(err).To(MatchError(service.ErrNotFound))
	})
})
