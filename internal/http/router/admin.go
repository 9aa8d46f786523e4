package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

// AdminRouter expects the group to be guarded by RequireRole(super_admin).
func AdminRouter(rg *gin.RouterGroup, profile *handler.ProfileHandler, verification *handler.VerificationHandler) {
	rg.POST("/users/:id/roles/:role", profile.GrantRole)
	rg.DELETE("/users/:id/roles/:role", profile.RevokeRole)

	rg.GET("/verifications", verification.List)
	rg.POST("/verifications/:id/approve", verification.Approve)
	rg.POST("/verifications/:id/reject", verification.Reject)
}
