package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), currentUser(c).ID, academyID, service.PostInput{
		Title:     req.Title,
		Body:      req.Body,
		ImageKeys: req.ImageKeys,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	ids, err := pathIDs(c, "id", "postId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.feedService.DeletePost(c.Request.Context(), currentUser(c).ID, ids[0], ids[1]); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FeedHandler) ListByAcademy(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	before, limit, ok := h.cursor(c)
	if !ok {
		return
	}

	posts, err := h.feedService.ListByAcademy(c.Request.Context(), academyID, before, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilPosts(posts))
}

func (h *FeedHandler) Feed(c *gin.Context) {
	before, limit, ok := h.cursor(c)
	if !ok {
		return
	}

	posts, err := h.feedService.Feed(c.Request.Context(), queryStringPtr(c, "region"), before, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilPosts(posts))
}

// cursor reads the before/limit keyset params, answering 400 itself on error.
func (h *FeedHandler) cursor(c *gin.Context) (*int64, int32, bool) {
	before, err := queryInt64Ptr(c, "before")
	if err != nil {
		badRequest(c, err)
		return nil, 0, false
	}
	limit, err := queryInt32(c, "limit")
	if err != nil {
		badRequest(c, err)
		return nil, 0, false
	}
	return before, limit, true
}

func nonNilPosts(posts []model.Post) []model.Post {
	if posts == nil {
		return []model.Post{}
	}
	return posts
}
