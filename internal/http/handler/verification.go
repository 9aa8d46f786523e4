package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type VerificationHandler struct {
	verificationService service.VerificationService
}

func NewVerificationHandler(verificationService service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

func (h *VerificationHandler) Submit(c *gin.Context) {
	var req dto.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	v, err := h.verificationService.Submit(c.Request.Context(), currentUser(c).ID, service.VerificationInput{
		BusinessNumber:     req.BusinessNumber,
		BusinessName:       req.BusinessName,
		RepresentativeName: req.RepresentativeName,
		DocumentKey:        req.DocumentKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v)
}

func (h *VerificationHandler) Mine(c *gin.Context) {
	v, err := h.verificationService.GetLatest(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VerificationHandler) List(c *gin.Context) {
	status := model.VerificationStatusPending
	if raw := c.Query("status"); raw != "" {
		status = model.VerificationStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "code": "invalid_input"})
			return
		}
	}

	limit, offset, err := pagination(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.verificationService.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []model.BusinessVerification{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *VerificationHandler) Approve(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	reviewer := currentUser(c).ID
	v, err := h.verificationService.Approve(c.Request.Context(), &reviewer, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VerificationHandler) Reject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.RejectVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reviewer := currentUser(c).ID
	v, err := h.verificationService.Reject(c.Request.Context(), &reviewer, id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ResendEmail re-enqueues the review outcome email. Guarded by the admin API key.
func (h *VerificationHandler) ResendEmail(c *gin.Context) {
	var req dto.ResendVerificationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.verificationService.ResendEmail(c.Request.Context(), req.VerificationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
