package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/http/handler"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

var _ = Describe("VerificationHandler", func() {
	var (
		verificationService *mockVerificationService
		router              *gin.Engine
	)

	BeforeEach(func() {
		verificationService = &mockVerificationService{}
		h := handler.NewVerificationHandler(verificationService)
		router = signedIn(&model.User{ID: 5, Roles: []model.Role{model.RoleSuperAdmin}})
		router.POST("/verifications", h.Submit)
		router.GET("/admin/verifications", h.List)
		router.POST("/admin/verifications/:id/reject", h.Reject)
	})

	Describe("Submit", func() {
		It("accepts a valid business number", func() {
			verificationService.submitFn = func(_ context.Context, userID int64, input service.VerificationInput) (*model.BusinessVerification, error) {
				Expect(userID).To(Equal(int64(5)))
				Expect(input.BusinessNumber).To(Equal("124-81-00998"))
				return &model.BusinessVerification{ID: 1, UserID: userID, Status: model.VerificationStatusPending}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/verifications",
				`{"business_number":"124-81-00998","business_name":"한빛수학","representative_name":"이한빛"}`))

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("rejects a business number with a bad check digit", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/verifications",
				`{"business_number":"1234567890","business_name":"한빛수학","representative_name":"이한빛"}`))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["code"]).To(Equal("invalid_input"))
		})

		It("returns 409 while another request is pending", func() {
			verificationService.submitFn = func(context.Context, int64, service.VerificationInput) (*model.BusinessVerification, error) {
				return nil, service.ErrVerificationPending
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/verifications",
				`{"business_number":"1248100998","business_name":"한빛수학","representative_name":"이한빛"}`))

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["code"]).To(Equal("verification_pending"))
		})
	})

	Describe("List", func() {
		It("defaults to pending", func() {
			var gotStatus model.VerificationStatus
			verificationService.listFn = func(_ context.Context, status model.VerificationStatus, _, _ int32) ([]model.BusinessVerification, error) {
				gotStatus = status
				return nil, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodGet, "/admin/verifications", ""))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotStatus).To(Equal(model.VerificationStatusPending))
		})
	})

	Describe("Reject", func() {
		It("passes the reviewer and reason through", func() {
			verificationService.rejectFn = func(_ context.Context, reviewerID *int64, id int64, reason string) (*model.BusinessVerification, error) {
				Expect(reviewerID).NotTo(BeNil())
				Expect(*reviewerID).To(Equal(int64(5)))
				Expect(id).To(Equal(int64(9)))
				Expect(reason).To(Equal("사업자등록증이 흐립니다"))
				return &model.BusinessVerification{ID: id, Status: model.VerificationStatusRejected}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/verifications/9/reject", `{"reason":"사업자등록증이 흐립니다"}`))

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("requires a reason", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/verifications/9/reject", `{}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
