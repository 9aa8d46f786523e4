package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	memberships := profile.Memberships
	if memberships == nil {
		memberships = []model.AcademyMember{}
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		User:        dto.ToUserResponse(profile.User),
		Memberships: memberships,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), currentUser(c).ID, service.ProfileUpdate{
		Name:   req.Name,
		Phone:  req.Phone,
		Region: req.Region,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *ProfileHandler) GrantRole(c *gin.Context) {
	h.changeRole(c, h.profileService.GrantRole)
}

func (h *ProfileHandler) RevokeRole(c *gin.Context) {
	h.changeRole(c, h.profileService.RevokeRole)
}

func (h *ProfileHandler) changeRole(c *gin.Context, change func(ctx context.Context, userID int64, role model.Role) (*model.User, error)) {
	userID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	user, err := change(c.Request.Context(), userID, model.Role(c.Param("role")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
