package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("MemberService", func() {
	var (
		svc       service.MemberService
		academies *mockAcademyStore
		members   *mockMemberStore
		ctx       context.Context
		admin     *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		academies = &mockAcademyStore{}
		members = &mockMemberStore{}
		svc = service.NewMemberService(academies, members)
		admin = &model.User{ID: 8, Roles: []model.Role{model.RoleAcademyAdmin}}
	})

	Describe("Join", func() {
		BeforeEach(func() {
			academies.getByJoinCodeFn = func(_ context.Context, code string) (*model.Academy, error) {
				if code != "ABCD2345" {
					return nil, store.ErrNotFound
				}
				return &model.Academy{ID: 10, Name: "한빛 수학학원"}, nil
			}
		})

		It("creates a pending admin membership", func() {
			members.getFn = func(_ context.Context, _, _ int64) (*model.AcademyMember, error) {
				return nil, store.ErrNotFound
			}
			var created *model.AcademyMember
			members.createFn = func(_ context.Context, m *model.AcademyMember) error {
				created = m
				return nil
			}

			member, err := svc.Join(ctx, admin, " abcd2345 ")
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Role).To(Equal(model.MemberRoleAdmin))
			Expect(created.Status).To(Equal(model.MemberStatusPending))
			Expect(member.AcademyName).To(Equal("한빛 수학학원"))
		})

		It("requires the academy_admin role", func() {
			parent := &model.User{ID: 9, Roles: []model.Role{model.RoleParent}}

			_, err := svc.Join(ctx, parent, "ABCD2345")
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("reports unknown codes as not found", func() {
			_, err := svc.Join(ctx, admin, "ZZZZ9999")
			Expect(err).To(MatchError(service.ErrNotFound))

			_, err = svc.Join(ctx, admin, "short")
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("refuses existing members", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return activeMember(academyID, userID), nil
			}

			_, err := svc.Join(ctx, admin, "ABCD2345")
			Expect(err).To(MatchError(service.ErrAlreadyMember))
		})
	})

	Describe("SetPermissions", func() {
		BeforeEach(func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				switch userID {
				case 1:
					return ownerMember(academyID, userID), nil
				case 2:
					return activeMember(academyID, userID), nil
				}
				return nil, store.ErrNotFound
			}
		})

		It("deduplicates permissions", func() {
			members.updatePermissionsFn = func(_ context.Context, academyID, userID int64, perms []model.Permission) (*model.AcademyMember, error) {
				Expect(perms).To(Equal([]model.Permission{model.PermissionChat, model.PermissionManagePosts}))
				return activeMember(academyID, userID, perms...), nil
			}

			member, err := svc.SetPermissions(ctx, 1, 10, 2, []string{"chat", "manage_posts", "chat"})
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Can(model.PermissionManagePosts)).To(BeTrue())
		})

		It("rejects unknown permissions", func() {
			_, err := svc.SetPermissions(ctx, 1, 10, 2, []string{"launch_rockets"})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("never touches the owner", func() {
			_, err := svc.SetPermissions(ctx, 1, 10, 1, []string{"chat"})
			Expect(err).To(MatchError(service.ErrOwnerImmutable))

			Expect(svc.Remove(ctx, 1, 10, 1)).To(MatchError(service.ErrOwnerImmutable))
		})

		It("forbids members without manage_members", func() {
			_, err := svc.SetPermissions(ctx, 2, 10, 2, []string{"chat"})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("forbids non-members", func() {
			_, err := svc.SetPermissions(ctx, 3, 10, 2, []string{"chat"})
			Expect(err).To(MatchError(service.ErrForbidden))
		})
	})

	Describe("RotateJoinCode", func() {
		It("stores a fresh code", func() {
			members.getFn = func(_ context.Context, academyID, userID int64) (*model.AcademyMember, error) {
				return ownerMember(academyID, userID), nil
			}
			academies.updateJoinCodeFn = func(_ context.Context, id int64, code string) (*model.Academy, error) {
				return &model.Academy{ID: id, JoinCode: code}, nil
			}

			code, err := svc.RotateJoinCode(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(HaveLen(service.JoinCodeLength))
		})
	})
})
