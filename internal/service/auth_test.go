package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		svc      service.AuthService
		users    *mockUserStore
		roles    *mockRoleStore
		sessions *mockSessionStore
		provider *mockIdentityProvider
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		roles = &mockRoleStore{}
		sessions = &mockSessionStore{}
		provider = &mockIdentityProvider{
			authenticateFn: func(_ context.Context, code string) (*service.Identity, error) {
				Expect(code).To(Equal("good-code"))
				return &service.Identity{
					WorkOSID:  "user_01",
					Email:     "parent@example.com",
					Name:      "김민지",
					SessionID: "session_01",
				}, nil
			},
		}
		svc = service.NewAuthService(
			txWith(&mockStoreProvider{users: users, roles: roles}),
			users, roles, sessions, provider,
		)
	})

	Describe("HandleCallback", func() {
		It("grants the parent role to a first-time user", func() {
			var granted []model.Role
			roles.listFn = func(_ context.Context, _ int64) ([]model.Role, error) {
				return nil, nil
			}
			roles.grantFn = func(_ context.Context, _ int64, role model.Role) error {
				granted = append(granted, role)
				return nil
			}
			var created *model.Session
			sessions.createFn = func(_ context.Context, s *model.Session) error {
				created = s
				return nil
			}

			user, session, err := svc.HandleCallback(ctx, "good-code")
			Expect(err).NotTo(HaveOccurred())
			Expect(granted).To(Equal([]model.Role{model.RoleParent}))
			Expect(user.Roles).To(Equal([]model.Role{model.RoleParent}))
			Expect(*user.WorkOSID).To(Equal("user_01"))
			Expect(session).To(Equal(created))
			Expect(session.UserID).To(Equal(user.ID))
			Expect(*session.WorkOSSessionID).To(Equal("session_01"))
			Expect(session.ExpiresAt).To(BeTemporally("~", time.Now().Add(service.SessionTTL), time.Minute))
		})

		It("keeps the roles of a returning user", func() {
			roles.listFn = func(_ context.Context, _ int64) ([]model.Role, error) {
				return []model.Role{model.RoleAcademyAdmin}, nil
			}
			roles.grantFn = func(_ context.Context, _ int64, _ model.Role) error {
				Fail("should not grant a role to an existing user")
				return nil
			}

			user, _, err := svc.HandleCallback(ctx, "good-code")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Roles).To(Equal([]model.Role{model.RoleAcademyAdmin}))
		})

		It("rejects a code the provider refuses", func() {
			provider.authenticateFn = func(_ context.Context, _ string) (*service.Identity, error) {
				return nil, errors.New("invalid_grant")
			}

			_, _, err := svc.HandleCallback(ctx, "bad-code")
			Expect(err).To(MatchError(service.ErrInvalidCode))
		})
	})

	Describe("ValidateSession", func() {
		It("returns the user with roles", func() {
			sessions.getValidFn = func(_ context.Context, id int64) (*model.Session, error) {
				return &model.Session{ID: id, UserID: 7}, nil
			}
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Name: "김민지"}, nil
			}
			roles.listFn = func(_ context.Context, _ int64) ([]model.Role, error) {
				return []model.Role{model.RoleParent, model.RoleSuperAdmin}, nil
			}

			user, err := svc.ValidateSession(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(7)))
			Expect(user.IsSuperAdmin()).To(BeTrue())
		})

		It("reports expired sessions", func() {
			sessions.getValidFn = func(_ context.Context, _ int64) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 100)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("reports a deleted user", func() {
			sessions.getValidFn = func(_ context.Context, _ int64) (*model.Session, error) {
				return &model.Session{UserID: 7}, nil
			}
			users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 100)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})

	Describe("Logout", func() {
		It("deletes the session and returns the WorkOS logout url", func() {
			sessions.getByIDFn = func(_ context.Context, id int64) (*model.Session, error) {
				return &model.Session{ID: id, WorkOSSessionID: strPtr("session_01")}, nil
			}
			deleted := false
			sessions.deleteFn = func(_ context.Context, id int64) error {
				Expect(id).To(Equal(int64(100)))
				deleted = true
				return nil
			}

			url, err := svc.Logout(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(*url).To(ContainSubstring("session_01"))
		})

		It("is a no-op for an unknown session", func() {
			sessions.getByIDFn = func(_ context.Context, _ int64) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			url, err := svc.Logout(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(BeNil())
		})
	})
})
