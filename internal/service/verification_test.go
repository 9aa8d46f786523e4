package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("VerificationService", func() {
	var (
		svc           service.VerificationService
		verifications *mockVerificationStore
		roles         *mockRoleStore
		producer      *mockProducer
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		verifications = &mockVerificationStore{}
		roles = &mockRoleStore{}
		producer = &mockProducer{}
		svc = service.NewVerificationService(
			txWith(&mockStoreProvider{verifications: verifications, roles: roles}),
			verifications,
			producer,
		)
	})

	Describe("Submit", func() {
		input := service.VerificationInput{
			BusinessNumber:     "1248100998",
			BusinessName:       "한빛수학학원",
			RepresentativeName: "이한빛",
		}

		It("stores the formatted business number as pending", func() {
			verifications.getLatestByUserFn = func(_ context.Context, _ int64) (*model.BusinessVerification, error) {
				return nil, store.ErrNotFound
			}
			verifications.createFn = func(_ context.Context, v *model.BusinessVerification) error {
				Expect(v.BusinessNumber).To(Equal("124-81-00998"))
				Expect(v.Status).To(Equal(model.VerificationStatusPending))
				return nil
			}

			v, err := svc.Submit(ctx, 5, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.UserID).To(Equal(int64(5)))
		})

		It("rejects a bad checksum", func() {
			bad := input
			bad.BusinessNumber = "1234567890"

			_, err := svc.Submit(ctx, 5, bad)
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("refuses a second pending verification", func() {
			verifications.getLatestByUserFn = func(_ context.Context, _ int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{Status: model.VerificationStatusPending}, nil
			}

			_, err := svc.Submit(ctx, 5, input)
			Expect(err).To(MatchError(service.ErrVerificationPending))
		})

		It("allows resubmitting after a rejection", func() {
			verifications.getLatestByUserFn = func(_ context.Context, _ int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{Status: model.VerificationStatusRejected}, nil
			}

			_, err := svc.Submit(ctx, 5, input)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Approve", func() {
		It("grants academy_admin and enqueues the email", func() {
			verifications.reviewFn = func(_ context.Context, id int64, status model.VerificationStatus, reason *string, reviewerID *int64) (*model.BusinessVerification, error) {
				Expect(status).To(Equal(model.VerificationStatusApproved))
				Expect(reason).To(BeNil())
				Expect(*reviewerID).To(Equal(int64(1)))
				return &model.BusinessVerification{ID: id, UserID: 5, Status: status}, nil
			}
			var granted model.Role
			roles.grantFn = func(_ context.Context, userID int64, role model.Role) error {
				Expect(userID).To(Equal(int64(5)))
				granted = role
				return nil
			}

			v, err := svc.Approve(ctx, int64Ptr(1), 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Status).To(Equal(model.VerificationStatusApproved))
			Expect(granted).To(Equal(model.RoleAcademyAdmin))
			Expect(producer.tasks).To(ConsistOf(queue.VerificationEmailTask(42)))
		})

		It("reports an already reviewed verification", func() {
			verifications.reviewFn = func(_ context.Context, _ int64, _ model.VerificationStatus, _ *string, _ *int64) (*model.BusinessVerification, error) {
				return nil, store.ErrNotFound
			}
			verifications.getByIDFn = func(_ context.Context, id int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{ID: id, Status: model.VerificationStatusApproved}, nil
			}

			_, err := svc.Approve(ctx, nil, 42)
			Expect(err).To(MatchError(service.ErrNotReviewable))
			Expect(producer.tasks).To(BeEmpty())
		})

		It("reports a missing verification", func() {
			verifications.reviewFn = func(_ context.Context, _ int64, _ model.VerificationStatus, _ *string, _ *int64) (*model.BusinessVerification, error) {
				return nil, store.ErrNotFound
			}
			verifications.getByIDFn = func(_ context.Context, _ int64) (*model.BusinessVerification, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Approve(ctx, nil, 42)
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("still succeeds when the queue is down", func() {
			verifications.reviewFn = func(_ context.Context, id int64, status model.VerificationStatus, _ *string, _ *int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{ID: id, UserID: 5, Status: status}, nil
			}
			producer.enqueueFn = func(_ context.Context, _ queue.Task) error {
				return errors.New("redis unavailable")
			}

			_, err := svc.Approve(ctx, nil, 42)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Reject", func() {
		It("requires a reason", func() {
			_, err := svc.Reject(ctx, nil, 42, "  ")
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("stores the reason without granting a role", func() {
			verifications.reviewFn = func(_ context.Context, id int64, status model.VerificationStatus, reason *string, _ *int64) (*model.BusinessVerification, error) {
				Expect(status).To(Equal(model.VerificationStatusRejected))
				Expect(*reason).To(Equal("사업자등록증 사본이 흐립니다"))
				return &model.BusinessVerification{ID: id, UserID: 5, Status: status, RejectReason: reason}, nil
			}
			roles.grantFn = func(_ context.Context, _ int64, _ model.Role) error {
				Fail("reject must not grant roles")
				return nil
			}

			v, err := svc.Reject(ctx, nil, 42, "사업자등록증 사본이 흐립니다")
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Status).To(Equal(model.VerificationStatusRejected))
			Expect(producer.tasks).To(HaveLen(1))
		})
	})

	Describe("ResendEmail", func() {
		It("refuses a pending verification", func() {
			verifications.getByIDFn = func(_ context.Context, id int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{ID: id, Status: model.VerificationStatusPending}, nil
			}

			Expect(svc.ResendEmail(ctx, 42)).To(MatchError(service.ErrNotReviewed))
		})

		It("re-enqueues a reviewed verification", func() {
			verifications.getByIDFn = func(_ context.Context, id int64) (*model.BusinessVerification, error) {
				return &model.BusinessVerification{ID: id, Status: model.VerificationStatusRejected}, nil
			}

			Expect(svc.ResendEmail(ctx, 42)).To(Succeed())
			Expect(producer.tasks).To(ConsistOf(queue.VerificationEmailTask(42)))
		})
	})
})
