package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Join(c *gin.Context) {
	var req dto.JoinAcademyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.memberService.Join(c.Request.Context(), currentUser(c), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) List(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	members, err := h.memberService.List(c.Request.Context(), currentUser(c).ID, academyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if members == nil {
		members = []model.AcademyMember{}
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Approve(c *gin.Context) {
	ids, err := pathIDs(c, "id", "userId")
	if err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.memberService.Approve(c.Request.Context(), currentUser(c).ID, ids[0], ids[1])
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) SetPermissions(c *gin.Context) {
	ids, err := pathIDs(c, "id", "userId")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.SetPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.memberService.SetPermissions(c.Request.Context(), currentUser(c).ID, ids[0], ids[1], req.Permissions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	ids, err := pathIDs(c, "id", "userId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), currentUser(c).ID, ids[0], ids[1]); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) RotateJoinCode(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	code, err := h.memberService.RotateJoinCode(c.Request.Context(), currentUser(c).ID, academyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JoinCodeResponse{JoinCode: code})
}
