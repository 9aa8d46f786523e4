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

var _ = Describe("SeminarHandler", func() {
	var (
		seminarService *mockSeminarService
		router         *gin.Engine
	)

	BeforeEach(func() {
		seminarService = &mockSeminarService{}
		h := handler.NewSeminarHandler(seminarService)
		router = signedIn(&model.User{ID: 3, Roles: []model.Role{model.RoleParent}})
		router.GET("/seminars", h.ListUpcoming)
		router.POST("/seminars/:id/registrations", h.Register)
		router.DELETE("/seminars/:id/registrations", h.CancelRegistration)
	})

	Describe("Register", func() {
		It("defaults the attendee count to one", func() {
			seminarService.registerFn = func(_ context.Context, userID, seminarID int64, input service.RegistrationInput) (*model.SeminarRegistration, error) {
				Expect(userID).To(Equal(int64(3)))
				Expect(seminarID).To(Equal(int64(50)))
				Expect(input.AttendeeCount).To(Equal(int32(1)))
				return &model.SeminarRegistration{ID: 1, SeminarID: seminarID, UserID: userID, AttendeeCount: 1}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/seminars/50/registrations", `{}`))

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("rejects more than four attendees", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/seminars/50/registrations", `{"attendee_count":5}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("maps capacity and lifecycle errors",
			func(err error, status int, code string) {
				seminarService.registerFn = func(context.Context, int64, int64, service.RegistrationInput) (*model.SeminarRegistration, error) {
					return nil, err
				}

				w := httptest.NewRecorder()
				router.ServeHTTP(w, jsonRequest(http.MethodPost, "/seminars/50/registrations", `{"attendee_count":2}`))

				Expect(w.Code).To(Equal(status))
				Expect(decode(w)["code"]).To(Equal(code))
			},
			Entry("full", service.ErrSeminarFull, http.StatusConflict, "seminar_full"),
			Entry("closed", service.ErrSeminarClosed, http.StatusConflict, "seminar_closed"),
			Entry("already registered", service.ErrAlreadyRegistered, http.StatusConflict, "already_registered"),
			Entry("started", service.ErrSeminarStarted, http.StatusGone, "seminar_started"),
		)
	})

	Describe("ListUpcoming", func() {
		It("passes the region filter and returns an empty array", func() {
			seminarService.listUpcomingFn = func(_ context.Context, region *string, _, _ int32) ([]model.Seminar, error) {
				Expect(region).NotTo(BeNil())
				Expect(*region).To(Equal("busan"))
				return nil, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodGet, "/seminars?region=busan", ""))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("[]"))
		})
	})
})
