package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type PlatformHandler struct {
	platformService service.PlatformService
}

func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

func (h *PlatformHandler) List(c *gin.Context) {
	settings, err := h.platformService.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if settings == nil {
		settings = []model.PlatformSetting{}
	}
	c.JSON(http.StatusOK, settings)
}

func (h *PlatformHandler) Get(c *gin.Context) {
	setting, err := h.platformService.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// Put requires middleware.RequirePlatformToken in front of it.
func (h *PlatformHandler) Put(c *gin.Context) {
	var req dto.PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	claims := middleware.GetPlatformClaims(c.Request.Context())
	setting, err := h.platformService.PutSetting(c.Request.Context(), claims, c.Param("key"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
