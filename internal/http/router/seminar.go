package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

func SeminarRouter(public, authed *gin.RouterGroup, h *handler.SeminarHandler) {
	public.GET("", h.ListUpcoming)
	public.GET("/:id", h.Get)

	authed.POST("/:id/registrations", h.Register)
	authed.DELETE("/:id/registrations/me", h.CancelRegistration)
}
