package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type ChildHandler struct {
	childService service.ChildService
}

func NewChildHandler(childService service.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService}
}

func (h *ChildHandler) Create(c *gin.Context) {
	var req dto.ChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	child, err := h.childService.Create(c.Request.Context(), currentUser(c).ID, childInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

func (h *ChildHandler) List(c *gin.Context) {
	children, err := h.childService.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if children == nil {
		children = []model.Child{}
	}
	c.JSON(http.StatusOK, children)
}

func (h *ChildHandler) Get(c *gin.Context) {
	id, err := pathID(c, "childId")
	if err != nil {
		badRequest(c, err)
		return
	}

	child, err := h.childService.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

func (h *ChildHandler) Update(c *gin.Context) {
	id, err := pathID(c, "childId")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.ChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	child, err := h.childService.Update(c.Request.Context(), currentUser(c).ID, id, childInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

func (h *ChildHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "childId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.childService.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func childInput(req dto.ChildRequest) service.ChildInput {
	return service.ChildInput{
		Name:      req.Name,
		Grade:     req.Grade,
		BirthYear: req.BirthYear,
		Tags:      req.Tags,
	}
}
