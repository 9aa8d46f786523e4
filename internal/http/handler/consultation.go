package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type ConsultationHandler struct {
	consultationService service.ConsultationService
}

func NewConsultationHandler(consultationService service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

func (h *ConsultationHandler) Request(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	consultation, err := h.consultationService.Request(c.Request.Context(), currentUser(c).ID, academyID, service.ConsultationInput{
		ChildID:     req.ChildID,
		PreferredAt: req.PreferredAt,
		Message:     req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (h *ConsultationHandler) ListMine(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.consultationService.ListMine(c.Request.Context(), currentUser(c).ID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilConsultations(list))
}

func (h *ConsultationHandler) ListForAcademy(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, offset, err := pagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.consultationService.ListForAcademy(c.Request.Context(), currentUser(c).ID, academyID, queryStringPtr(c, "status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilConsultations(list))
}

func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	ids, err := pathIDs(c, "id", "cid")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	consultation, err := h.consultationService.UpdateStatus(c.Request.Context(), currentUser(c).ID, ids[0], ids[1], req.Status, req.AcademyNote)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) CancelMine(c *gin.Context) {
	id, err := pathID(c, "cid")
	if err != nil {
		badRequest(c, err)
		return
	}

	consultation, err := h.consultationService.CancelMine(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func nonNilConsultations(list []model.Consultation) []model.Consultation {
	if list == nil {
		return []model.Consultation{}
	}
	return list
}
