package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type SeminarHandler struct {
	seminarService service.SeminarService
}

func NewSeminarHandler(seminarService service.SeminarService) *SeminarHandler {
	return &SeminarHandler{seminarService: seminarService}
}

func (h *SeminarHandler) Create(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.SeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	seminar, err := h.seminarService.Create(c.Request.Context(), currentUser(c).ID, academyID, seminarInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seminar)
}

func (h *SeminarHandler) Update(c *gin.Context) {
	ids, err := pathIDs(c, "id", "seminarId")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.SeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	seminar, err := h.seminarService.Update(c.Request.Context(), currentUser(c).ID, ids[0], ids[1], seminarInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminar)
}

func (h *SeminarHandler) Close(c *gin.Context) {
	h.transition(c, h.seminarService.Close)
}

func (h *SeminarHandler) Cancel(c *gin.Context) {
	h.transition(c, h.seminarService.Cancel)
}

func (h *SeminarHandler) transition(c *gin.Context, apply func(ctx context.Context, actorID, academyID, seminarID int64) (*model.Seminar, error)) {
	ids, err := pathIDs(c, "id", "seminarId")
	if err != nil {
		badRequest(c, err)
		return
	}

	seminar, err := apply(c.Request.Context(), currentUser(c).ID, ids[0], ids[1])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminar)
}

func (h *SeminarHandler) ListByAcademy(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	seminars, err := h.seminarService.ListByAcademy(c.Request.Context(), academyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilSeminars(seminars))
}

func (h *SeminarHandler) ListUpcoming(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	seminars, err := h.seminarService.ListUpcoming(c.Request.Context(), queryStringPtr(c, "region"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilSeminars(seminars))
}

func (h *SeminarHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	seminar, err := h.seminarService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminar)
}

func (h *SeminarHandler) Register(c *gin.Context) {
	seminarID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.RegisterSeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	attendees := req.AttendeeCount
	if attendees == 0 {
		attendees = 1
	}

	reg, err := h.seminarService.Register(c.Request.Context(), currentUser(c).ID, seminarID, service.RegistrationInput{
		ChildID:       req.ChildID,
		AttendeeCount: attendees,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

func (h *SeminarHandler) CancelRegistration(c *gin.Context) {
	seminarID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	reg, err := h.seminarService.CancelRegistration(c.Request.Context(), currentUser(c).ID, seminarID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *SeminarHandler) ListRegistrations(c *gin.Context) {
	ids, err := pathIDs(c, "id", "seminarId")
	if err != nil {
		badRequest(c, err)
		return
	}

	regs, err := h.seminarService.ListRegistrations(c.Request.Context(), currentUser(c).ID, ids[0], ids[1])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRegistrations(regs))
}

func (h *SeminarHandler) ListMyRegistrations(c *gin.Context) {
	regs, err := h.seminarService.ListMyRegistrations(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNilRegistrations(regs))
}

func seminarInput(req dto.SeminarRequest) service.SeminarInput {
	return service.SeminarInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
	}
}

func nonNilSeminars(s []model.Seminar) []model.Seminar {
	if s == nil {
		return []model.Seminar{}
	}
	return s
}

func nonNilRegistrations(r []model.SeminarRegistration) []model.SeminarRegistration {
	if r == nil {
		return []model.SeminarRegistration{}
	}
	return r
}
