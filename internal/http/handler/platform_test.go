package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/http/handler"
	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

var _ = Describe("PlatformHandler", func() {
	var (
		platformService *mockPlatformService
		router          *gin.Engine
	)

	BeforeEach(func() {
		platformService = &mockPlatformService{
			verifyTokenFn: func(token string) (*service.PlatformClaims, error) {
				if token != "good" {
					return nil, service.ErrInvalidToken
				}
				return &service.PlatformClaims{
					StandardClaims: jwt.StandardClaims{Subject: "ops@academyhub.app"},
					Role:           service.PlatformRoleSuperAdmin,
				}, nil
			},
		}
		h := handler.NewPlatformHandler(platformService)
		router = gin.New()
		router.GET("/platform/settings", h.List)
		router.PUT("/platform/settings/:key", middleware.RequirePlatformToken(platformService), h.Put)
	})

	It("stores the raw JSON value with the token claims", func() {
		platformService.putSettingFn = func(_ context.Context, claims *service.PlatformClaims, key string, value json.RawMessage) (*model.PlatformSetting, error) {
			Expect(claims).NotTo(BeNil())
			Expect(claims.Subject).To(Equal("ops@academyhub.app"))
			Expect(key).To(Equal("maintenance_mode"))
			Expect(string(value)).To(MatchJSON(`{"enabled":true}`))
			by := claims.Subject
			return &model.PlatformSetting{Key: key, Value: value, UpdatedBy: &by}, nil
		}

		req := jsonRequest(http.MethodPut, "/platform/settings/maintenance_mode", `{"value":{"enabled":true}}`)
		req.Header.Set("Authorization", "Bearer good")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(HaveKeyWithValue("updated_by", "ops@academyhub.app"))
	})

	It("rejects writes without a valid token", func() {
		req := jsonRequest(http.MethodPut, "/platform/settings/maintenance_mode", `{"value":true}`)
		req.Header.Set("Authorization", "Bearer bad")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(decode(w)["code"]).To(Equal("invalid_token"))
	})

	It("lists settings as an array", func() {
		platformService.listSettingsFn = func(context.Context) ([]model.PlatformSetting, error) {
			return []model.PlatformSetting{{Key: "signup_open", Value: json.RawMessage(`true`)}}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/platform/settings", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[{"key":"signup_open","value":true,"updated_at":"0001-01-01T00:00:00Z"}]`))
	})
})
