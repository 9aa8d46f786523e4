package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

// MeRouter mounts everything scoped to the signed-in user.
func MeRouter(
	rg *gin.RouterGroup,
	profile *handler.ProfileHandler,
	seminar *handler.SeminarHandler,
	consultation *handler.ConsultationHandler,
	bookmark *handler.BookmarkHandler,
	child *handler.ChildHandler,
) {
	rg.GET("", profile.Me)
	rg.PATCH("", profile.Update)

	rg.GET("/seminar-registrations", seminar.ListMyRegistrations)

	rg.GET("/consultations", consultation.ListMine)
	rg.POST("/consultations/:cid/cancel", consultation.CancelMine)

	rg.GET("/bookmarks", bookmark.List)
	rg.PUT("/bookmarks/:academyId", bookmark.Add)
	rg.DELETE("/bookmarks/:academyId", bookmark.Remove)

	rg.GET("/children", child.List)
	rg.POST("/children", child.Create)
	rg.GET("/children/:childId", child.Get)
	rg.PUT("/children/:childId", child.Update)
	rg.DELETE("/children/:childId", child.Delete)
}
