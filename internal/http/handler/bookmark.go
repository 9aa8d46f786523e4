package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	academyID, err := pathID(c, "academyId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.bookmarkService.Add(c.Request.Context(), currentUser(c).ID, academyID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	academyID, err := pathID(c, "academyId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.bookmarkService.Remove(c.Request.Context(), currentUser(c).ID, academyID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookmarkHandler) List(c *gin.Context) {
	academies, err := h.bookmarkService.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if academies == nil {
		academies = []model.Academy{}
	}
	c.JSON(http.StatusOK, academies)
}
