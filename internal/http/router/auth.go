package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/url", h.GetAuthURL)
	rg.POST("/exchange", h.Exchange)
	rg.POST("/logout", h.Logout)
	rg.GET("/validate", h.ValidateSession)
}
