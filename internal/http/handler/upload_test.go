package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/http/handler"
	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

func multipartRequest(path string, content []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "logo.png")
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(mw.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.SessionIDHeader, "1")
	return req
}

var _ = Describe("UploadHandler", func() {
	var (
		uploadService *mockUploadService
		router        *gin.Engine
		public        *gin.Engine
	)

	BeforeEach(func() {
		uploadService = &mockUploadService{maxSize: 1024}
		h := handler.NewUploadHandler(uploadService)
		router = signedIn(&model.User{ID: 4})
		router.POST("/uploads", h.Upload)

		// Files are served without a session, as in the router.
		public = gin.New()
		public.GET("/files/*key", h.Serve)
	})

	It("stores the file and returns its key", func() {
		uploadService.uploadFn = func(_ context.Context, userID int64, data []byte) (model.StoredImage, error) {
			Expect(userID).To(Equal(int64(4)))
			Expect(data).To(Equal([]byte("png-bytes")))
			return model.StoredImage{Key: "ab/abcdef.png", URL: "/files/ab/abcdef.png", ContentType: "image/png"}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartRequest("/uploads", []byte("png-bytes")))

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(decode(w)).To(HaveKeyWithValue("key", "ab/abcdef.png"))
	})

	It("returns 413 for files over the limit", func() {
		uploadService.uploadFn = func(context.Context, int64, []byte) (model.StoredImage, error) {
			Fail("upload should not be called")
			return model.StoredImage{}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartRequest("/uploads", bytes.Repeat([]byte("x"), 2048)))

		Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
		Expect(decode(w)["code"]).To(Equal("upload_too_large"))
	})

	It("returns 400 when the content is not an image", func() {
		uploadService.uploadFn = func(context.Context, int64, []byte) (model.StoredImage, error) {
			return model.StoredImage{}, service.ErrInvalidInput
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartRequest("/uploads", []byte("plain text")))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("requires the file field", func() {
		req := jsonRequest(http.MethodPost, "/uploads", `{}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("serves stored files by key", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "abcdef.png")
		Expect(os.WriteFile(path, []byte("stored"), 0o600)).To(Succeed())

		uploadService.resolveFn = func(key string) (string, error) {
			Expect(key).To(Equal("ab/abcdef.png"))
			return path, nil
		}

		w := httptest.NewRecorder()
		public.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/ab/abcdef.png", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("stored"))
		Expect(w.Header().Get("Cache-Control")).To(ContainSubstring("immutable"))
	})
})
