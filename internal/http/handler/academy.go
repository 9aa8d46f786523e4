package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type AcademyHandler struct {
	academyService service.AcademyService
}

func NewAcademyHandler(academyService service.AcademyService) *AcademyHandler {
	return &AcademyHandler{academyService: academyService}
}

func (h *AcademyHandler) Create(c *gin.Context) {
	var req dto.CreateAcademyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	academy, err := h.academyService.Create(c.Request.Context(), currentUser(c).ID, service.AcademyInput{
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		Address:     req.Address,
		Phone:       req.Phone,
		Tags:        req.Tags,
		LogoKey:     req.LogoKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// The join code is hidden from public JSON; the creator needs it once.
	c.JSON(http.StatusCreated, gin.H{"academy": academy, "join_code": academy.JoinCode})
}

func (h *AcademyHandler) List(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	academies, err := h.academyService.List(c.Request.Context(), model.AcademyFilter{
		Region:  queryStringPtr(c, "region"),
		Subject: queryStringPtr(c, "subject"),
		Query:   queryStringPtr(c, "q"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if academies == nil {
		academies = []model.Academy{}
	}
	c.JSON(http.StatusOK, academies)
}

func (h *AcademyHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	detail, err := h.academyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AcademyHandler) GetBySlug(c *gin.Context) {
	detail, err := h.academyService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AcademyHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.UpdateAcademyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	academy, err := h.academyService.Update(c.Request.Context(), currentUser(c).ID, id, service.AcademyUpdate{
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		Address:     req.Address,
		Phone:       req.Phone,
		Tags:        req.Tags,
		LogoKey:     req.LogoKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, academy)
}

func (h *AcademyHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.academyService.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
