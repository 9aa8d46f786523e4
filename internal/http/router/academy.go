package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

type AcademyHandlers struct {
	Academy      *handler.AcademyHandler
	Member       *handler.MemberHandler
	Class        *handler.ClassHandler
	Seminar      *handler.SeminarHandler
	Consultation *handler.ConsultationHandler
	Feed         *handler.FeedHandler
}

// AcademyRouter sets up academy routes
// - browsing (list, detail, classes, teachers, seminars, posts) is public
// - everything that writes or reveals member data requires a session
func AcademyRouter(public, authed *gin.RouterGroup, h AcademyHandlers) {
	public.GET("", h.Academy.List)
	public.GET("/by-slug/:slug", h.Academy.GetBySlug)
	public.GET("/:id", h.Academy.Get)
	public.GET("/:id/teachers", h.Class.ListTeachers)
	public.GET("/:id/classes", h.Class.ListClasses)
	public.GET("/:id/seminars", h.Seminar.ListByAcademy)
	public.GET("/:id/posts", h.Feed.ListByAcademy)

	authed.POST("", h.Academy.Create)
	authed.PATCH("/:id", h.Academy.Update)
	authed.DELETE("/:id", h.Academy.Delete)

	authed.POST("/join", h.Member.Join)
	authed.GET("/:id/members", h.Member.List)
	authed.POST("/:id/members/:userId/approve", h.Member.Approve)
	authed.PUT("/:id/members/:userId/permissions", h.Member.SetPermissions)
	authed.DELETE("/:id/members/:userId", h.Member.Remove)
	authed.POST("/:id/join-code/rotate", h.Member.RotateJoinCode)

	authed.POST("/:id/teachers", h.Class.CreateTeacher)
	authed.PUT("/:id/teachers/:teacherId", h.Class.UpdateTeacher)
	authed.DELETE("/:id/teachers/:teacherId", h.Class.DeleteTeacher)
	authed.POST("/:id/classes", h.Class.CreateClass)
	authed.PUT("/:id/classes/:classId", h.Class.UpdateClass)
	authed.DELETE("/:id/classes/:classId", h.Class.DeleteClass)

	authed.POST("/:id/seminars", h.Seminar.Create)
	authed.PATCH("/:id/seminars/:seminarId", h.Seminar.Update)
	authed.POST("/:id/seminars/:seminarId/close", h.Seminar.Close)
	authed.POST("/:id/seminars/:seminarId/cancel", h.Seminar.Cancel)
	authed.GET("/:id/seminars/:seminarId/registrations", h.Seminar.ListRegistrations)

	authed.POST("/:id/consultations", h.Consultation.Request)
	authed.GET("/:id/consultations", h.Consultation.ListForAcademy)
	authed.PATCH("/:id/consultations/:cid", h.Consultation.UpdateStatus)

	authed.POST("/:id/posts", h.Feed.CreatePost)
	authed.DELETE("/:id/posts/:postId", h.Feed.DeletePost)
}
