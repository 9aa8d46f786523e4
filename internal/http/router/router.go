package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

type RouterConfig struct {
	IsProduction bool
	AdminAPIKey  string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) error {
	if err := handler.RegisterValidators(); err != nil {
		return err
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireSession := middleware.RequireSession(services.Auth())

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	uploadHandler := handler.NewUploadHandler(services.Uploads())
	router.GET("/files/*key", uploadHandler.Serve)

	v1 := router.Group("/api/v1")
	public := v1.Group("")
	authed := v1.Group("", requireSession)
	{
		MeRouter(authed.Group("/me"),
			handler.NewProfileHandler(services.Profiles()),
			handler.NewSeminarHandler(services.Seminars()),
			handler.NewConsultationHandler(services.Consultations()),
			handler.NewBookmarkHandler(services.Bookmarks()),
			handler.NewChildHandler(services.Children()),
		)

		verificationHandler := handler.NewVerificationHandler(services.Verifications())
		authed.POST("/verifications", verificationHandler.Submit)
		authed.GET("/verifications/me", verificationHandler.Mine)
		v1.POST("/notifications/verification-email",
			middleware.RequireAdminAPIKey(cfg.AdminAPIKey),
			verificationHandler.ResendEmail)

		AcademyRouter(public.Group("/academies"), authed.Group("/academies"), AcademyHandlers{
			Academy:      handler.NewAcademyHandler(services.Academies()),
			Member:       handler.NewMemberHandler(services.Members()),
			Class:        handler.NewClassHandler(services.Classes()),
			Seminar:      handler.NewSeminarHandler(services.Seminars()),
			Consultation: handler.NewConsultationHandler(services.Consultations()),
			Feed:         handler.NewFeedHandler(services.Feed()),
		})

		SeminarRouter(public.Group("/seminars"), authed.Group("/seminars"), handler.NewSeminarHandler(services.Seminars()))

		feedHandler := handler.NewFeedHandler(services.Feed())
		public.GET("/feed", feedHandler.Feed)

		recommendationHandler := handler.NewRecommendationHandler(services.Recommendations())
		authed.GET("/recommendations", recommendationHandler.Recommend)

		ChatRouter(authed.Group("/chat"), handler.NewChatHandler(services.Chat()))

		authed.POST("/uploads", uploadHandler.Upload)

		PlatformRouter(v1.Group("/platform"), handler.NewPlatformHandler(services.Platform()), services.Platform())

		AdminRouter(authed.Group("/admin", middleware.RequireRole(model.RoleSuperAdmin)),
			handler.NewProfileHandler(services.Profiles()),
			verificationHandler,
		)
	}

	return nil
}
