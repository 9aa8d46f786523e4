package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
	"academyhub.app/server/internal/http/middleware"
)

// PlatformRouter exposes platform flags: reads are public, writes need an
// elevated role token.
func PlatformRouter(rg *gin.RouterGroup, h *handler.PlatformHandler, verifier middleware.TokenVerifier) {
	rg.GET("/settings", h.List)
	rg.GET("/settings/:key", h.Get)
	rg.PUT("/settings/:key", middleware.RequirePlatformToken(verifier), h.Put)
}
