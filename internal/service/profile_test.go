package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("ProfileService", func() {
	var (
		svc     service.ProfileService
		users   *mockUserStore
		roles   *mockRoleStore
		members *mockMemberStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{
			getByIDFn: func(_ context.Context, id int64) (*model.User, error) {
				if id != 5 {
					return nil, store.ErrNotFound
				}
				return &model.User{ID: id, Name: "김민지"}, nil
			},
		}
		roles = &mockRoleStore{
			listFn: func(_ context.Context, _ int64) ([]model.Role, error) {
				return []model.Role{model.RoleParent}, nil
			},
		}
		members = &mockMemberStore{
			listByUserFn: func(_ context.Context, userID int64) ([]model.AcademyMember, error) {
				return []model.AcademyMember{*ownerMember(10, userID)}, nil
			},
		}
		svc = service.NewProfileService(users, roles, members)
	})

	It("returns the user with roles and memberships", func() {
		profile, err := svc.Get(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.User.Roles).To(ConsistOf(model.RoleParent))
		Expect(profile.Memberships).To(HaveLen(1))
	})

	It("persists a known region", func() {
		var saved *model.User
		users.updateProfileFn = func(_ context.Context, u *model.User) error {
			saved = u
			return nil
		}

		user, err := svc.Update(ctx, 5, service.ProfileUpdate{Region: strPtr("부산")})
		Expect(err).NotTo(HaveOccurred())
		Expect(*saved.Region).To(Equal("부산"))
		Expect(user.Roles).To(ConsistOf(model.RoleParent))
	})

	It("clears the region with an empty string", func() {
		user, err := svc.Update(ctx, 5, service.ProfileUpdate{Region: strPtr("")})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Region).To(BeNil())
	})

	It("rejects unknown regions", func() {
		_, err := svc.Update(ctx, 5, service.ProfileUpdate{Region: strPtr("Narnia")})
		Expect(err).To(MatchError(service.ErrInvalidInput))
	})

	It("grants only known roles to existing users", func() {
		_, err := svc.GrantRole(ctx, 5, model.Role("wizard"))
		Expect(err).To(MatchError(service.ErrInvalidInput))

		_, err = svc.GrantRole(ctx, 6, model.RoleSuperAdmin)
		Expect(err).To(MatchError(service.ErrUserNotFound))
	})
})
