package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("AcademyService", func() {
	var (
		svc           service.AcademyService
		academies     *mockAcademyStore
		members       *mockMemberStore
		verifications *mockVerificationStore
		teachers      *mockTeacherStore
		classes       *mockClassStore
		seminars      *mockSeminarStore
		posts         *mockPostStore
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		academies = &mockAcademyStore{}
		members = &mockMemberStore{}
		verifications = &mockVerificationStore{}
		teachers = &mockTeacherStore{}
		classes = &mockClassStore{}
		seminars = &mockSeminarStore{}
		posts = &mockPostStore{}
		svc = service.NewAcademyService(
			txWith(&mockStoreProvider{academies: academies, members: members, verifications: verifications}),
			academies, members, teachers, classes, seminars, posts,
		)
	})

	Describe("Create", func() {
		input := service.AcademyInput{
			Name:   "한빛 수학학원",
			Region: "서울",
			Tags:   []string{"subject:math", "grade:middle"},
		}

		It("spends the verification and makes the creator owner", func() {
			verifications.getUsableByUserFn = func(_ context.Context, userID int64) (*model.BusinessVerification, error) {
				Expect(userID).To(Equal(int64(5)))
				return &model.BusinessVerification{ID: 77, Status: model.VerificationStatusApproved}, nil
			}
			academies.slugExistsFn = func(_ context.Context, slug string) (bool, error) {
				return slug == "한빛-수학학원", nil
			}
			var consumed int64
			verifications.consumeFn = func(_ context.Context, id int64) (*model.BusinessVerification, error) {
				consumed = id
				return &model.BusinessVerification{ID: id}, nil
			}
			var owner *model.AcademyMember
			members.createFn = func(_ context.Context, m *model.AcademyMember) error {
				owner = m
				return nil
			}

			academy, err := svc.Create(ctx, 5, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(academy.Slug).To(Equal("한빛-수학학원-2"))
			Expect(*academy.VerificationID).To(Equal(int64(77)))
			Expect(academy.JoinCode).To(HaveLen(service.JoinCodeLength))
			Expect(academy.JoinCode).To(MatchRegexp(`^[A-HJ-NP-Z2-9]{8}$`))
			Expect(consumed).To(Equal(int64(77)))
			Expect(owner.Role).To(Equal(model.MemberRoleOwner))
			Expect(owner.IsActive()).To(BeTrue())
			Expect(owner.Permissions).To(Equal(model.AllPermissions))
		})

		It("requires an approved verification", func() {
			verifications.getUsableByUserFn = func(_ context.Context, _ int64) (*model.BusinessVerification, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Create(ctx, 5, input)
			Expect(err).To(MatchError(service.ErrVerificationRequired))
		})

		It("rejects unknown regions and tags", func() {
			bad := input
			bad.Region = "Atlantis"
			_, err := svc.Create(ctx, 5, bad)
			Expect(err).To(MatchError(service.ErrInvalidInput))

			bad = input
			bad.Tags = []string{"subject:alchemy"}
			_, err = svc.Create(ctx, 5, bad)
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})
	})

	Describe("Get", func() {
		It("shows only seminars still open for registration", func() {
			now := time.Now()
			academies.getByIDFn = func(_ context.Context, id int64) (*model.Academy, error) {
				return &model.Academy{ID: id, Name: "한빛 수학학원"}, nil
			}
			classes.listByAcademyFn = func(_ context.Context, _ int64) ([]model.Class, error) {
				return []model.Class{{ID: 1, Schedule: "월 16:00~18:00"}}, nil
			}
			seminars.listByAcademyFn = func(_ context.Context, _ int64) ([]model.Seminar, error) {
				return []model.Seminar{
					{ID: 1, Status: model.SeminarStatusOpen, StartsAt: now.Add(48 * time.Hour)},
					{ID: 2, Status: model.SeminarStatusOpen, StartsAt: now.Add(-time.Hour)},
					{ID: 3, Status: model.SeminarStatusClosed, StartsAt: now.Add(48 * time.Hour)},
				}, nil
			}

			detail, err := svc.Get(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Seminars).To(HaveLen(1))
			Expect(detail.Seminars[0].ID).To(Equal(int64(1)))
			Expect(detail.Classes).To(HaveLen(1))
			Expect(detail.Classes[0].ScheduleEntries).To(HaveLen(1))
		})

		It("returns not found for a missing academy", func() {
			academies.getByIDFn = func(_ context.Context, _ int64) (*model.Academy, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Get(ctx, 10)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Update", func() {
		It("requires manage_academy", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.PermissionChat), nil
			}

			_, err := svc.Update(ctx, 5, 10, service.AcademyUpdate{Name: strPtr("새 이름")})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("applies only the given fields", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.PermissionManageAcademy), nil
			}
			academies.getByIDFn = func(_ context.Context, id int64) (*model.Academy, error) {
				return &model.Academy{ID: id, Name: "한빛 수학학원", Region: "서울", Tags: []string{"subject:math"}}, nil
			}

			academy, err := svc.Update(ctx, 5, 10, service.AcademyUpdate{Region: strPtr("부산")})
			Expect(err).NotTo(HaveOccurred())
			Expect(academy.Region).To(Equal("부산"))
			Expect(academy.Name).To(Equal("한빛 수학학원"))
			Expect(academy.Tags).To(Equal([]string{"subject:math"}))
		})
	})

	Describe("Delete", func() {
		It("is reserved to the owner", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID, model.AllPermissions...), nil
			}

			Expect(svc.Delete(ctx, 5, 10)).To(MatchError(service.ErrForbidden))
		})

		It("soft deletes for the owner", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return ownerMember(academyID, userID), nil
			}
			deleted := false
			academies.softDeleteFn = func(_ context.Context, id int64) error {
				deleted = id == 10
				return nil
			}

			Expect(svc.Delete(ctx, 5, 10)).To(Succeed())
			Expect(deleted).To(BeTrue())
		})
	})
})
