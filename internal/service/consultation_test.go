package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("ConsultationService", func() {
	var (
		svc           service.ConsultationService
		academies     *mockAcademyStore
		members       *mockMemberStore
		children      *mockChildStore
		consultations *mockConsultationStore
		ctx           context.Context
		current       *model.Consultation
	)

	BeforeEach(func() {
		ctx = context.Background()
		academies = &mockAcademyStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Academy, error) {
				return &model.Academy{ID: id}, nil
			},
		}
		members = &mockMemberStore{
			getFn: func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				if userID != 1 {
					return nil, store.ErrNotFound
				}
				return activeMember(academyID, userID), nil
			},
		}
		children = &mockChildStore{}
		current = &model.Consultation{ID: 30, AcademyID: 10, UserID: 5, Status: model.ConsultationStatusPending}
		consultations = &mockConsultationStore{
			getByIDFn: func(_ context.Context, _ int64) (*model.Consultation, error) {
				c := *current
				return &c, nil
			},
			updateStatusFn: func(_ context.Context, id int64, from, to model.ConsultationStatus, note *string) (*model.Consultation, error) {
				if from != current.Status {
					return nil, store.ErrNotFound
				}
				c := *current
				c.Status = to
				c.AcademyNote = note
				return &c, nil
			},
		}
		svc = service.NewConsultationService(academies, members, children, consultations)
	})

	Describe("Request", func() {
		It("creates a pending consultation", func() {
			c, err := svc.Request(ctx, 5, 10, service.ConsultationInput{Message: "  중2 수학 상담 원합니다  "})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Status).To(Equal(model.ConsultationStatusPending))
			Expect(c.Message).To(Equal("중2 수학 상담 원합니다"))
		})

		It("requires a message", func() {
			_, err := svc.Request(ctx, 5, 10, service.ConsultationInput{Message: " "})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("reports a missing academy", func() {
			academies.getByIDFn = func(_ context.Context, _ int64) (*model.Academy, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Request(ctx, 5, 10, service.ConsultationInput{Message: "상담"})
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("UpdateStatus", func() {
		It("confirms a pending consultation with a note", func() {
			c, err := svc.UpdateStatus(ctx, 1, 10, 30, "confirmed", strPtr("토요일 10시에 뵙겠습니다"))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Status).To(Equal(model.ConsultationStatusConfirmed))
			Expect(*c.AcademyNote).To(Equal("토요일 10시에 뵙겠습니다"))
		})

		It("refuses transitions outside the state machine", func() {
			_, err := svc.UpdateStatus(ctx, 1, 10, 30, "completed", nil)
			Expect(err).To(MatchError(service.ErrInvalidTransition))

			current.Status = model.ConsultationStatusCancelled
			_, err = svc.UpdateStatus(ctx, 1, 10, 30, "confirmed", nil)
			Expect(err).To(MatchError(service.ErrInvalidTransition))
		})

		It("loses to a concurrent change made after the read", func() {
			current.Status = model.ConsultationStatusConfirmed
			consultations.getByIDFn = func(_ context.Context, _ int64) (*model.Consultation, error) {
				c := *current
				// The requester cancels between our read and our write.
				current.Status = model.ConsultationStatusCancelled
				return &c, nil
			}

			_, err := svc.UpdateStatus(ctx, 1, 10, 30, "completed", nil)
			Expect(err).To(MatchError(service.ErrInvalidTransition))
			Expect(current.Status).To(Equal(model.ConsultationStatusCancelled))
		})

		It("rejects unknown statuses", func() {
			_, err := svc.UpdateStatus(ctx, 1, 10, 30, "archived", nil)
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("forbids non-members", func() {
			_, err := svc.UpdateStatus(ctx, 2, 10, 30, "confirmed", nil)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("hides consultations of other academies", func() {
			_, err := svc.UpdateStatus(ctx, 1, 11, 30, "confirmed", nil)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("CancelMine", func() {
		It("lets the requester cancel", func() {
			c, err := svc.CancelMine(ctx, 5, 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Status).To(Equal(model.ConsultationStatusCancelled))
		})

		It("hides other users' consultations", func() {
			_, err := svc.CancelMine(ctx, 6, 30)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("ListForAcademy", func() {
		It("passes the status filter through", func() {
			consultations.listByAcademyFn = func(_ context.Context, _ int64, status *model.ConsultationStatus, limit, _ int32) ([]model.Consultation, error) {
				Expect(*status).To(Equal(model.ConsultationStatusPending))
				Expect(limit).To(Equal(int32(service.DefaultPageSize)))
				return []model.Consultation{*current}, nil
			}

			list, err := svc.ListForAcademy(ctx, 1, 10, strPtr("pending"), 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})
	})
})
