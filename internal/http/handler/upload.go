package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/service"
)

// multipart framing allowance on top of the file itself
const multipartOverhead = 64 << 10

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	maxSize := h.uploadService.MaxSize()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, fmt.Errorf("%w: %d bytes", service.ErrUploadTooLarge, maxSize))
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field \"file\" is required", "code": "invalid_input"})
		return
	}
	if header.Size > maxSize {
		respondError(c, fmt.Errorf("%w: %d bytes", service.ErrUploadTooLarge, maxSize))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, fmt.Errorf("opening upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		respondError(c, fmt.Errorf("reading upload: %w", err))
		return
	}

	image, err := h.uploadService.Upload(c.Request.Context(), currentUser(c).ID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// Serve streams a stored image. Mounted at /files/*key.
func (h *UploadHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	path, err := h.uploadService.Resolve(key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.File(path)
}
