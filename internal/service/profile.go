package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

type Profile struct {
	User        *model.User           `json:"user"`
	Memberships []model.AcademyMember `json:"memberships"`
}

type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Region *string
}

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, userID int64, update ProfileUpdate) (*model.User, error)
	GrantRole(ctx context.Context, userID int64, role model.Role) (*model.User, error)
	RevokeRole(ctx context.Context, userID int64, role model.Role) (*model.User, error)
}

type profileService struct {
	userStore   store.UserStore
	roleStore   store.RoleStore
	memberStore store.MemberStore
}

func NewProfileService(userStore store.UserStore, roleStore store.RoleStore, memberStore store.MemberStore) ProfileService {
	return &profileService{
		userStore:   userStore,
		roleStore:   roleStore,
		memberStore: memberStore,
	}
}

func (s *profileService) Get(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.memberStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	return &Profile{User: user, Memberships: memberships}, nil
}

func (s *profileService) Update(ctx context.Context, userID int64, update ProfileUpdate) (*model.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name, err := requireText("name", *update.Name, 50)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}
	if update.Phone != nil {
		user.Phone = trimmedPtr(update.Phone)
	}
	if update.Region != nil {
		region := trimmedPtr(update.Region)
		if region != nil {
			if err := validateRegion(*region); err != nil {
				return nil, err
			}
		}
		user.Region = region
	}

	roles := user.Roles
	if err := s.userStore.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	user.Roles = roles

	slog.InfoContext(ctx, "profile updated", "user_id", userID)
	return user, nil
}

func (s *profileService) GrantRole(ctx context.Context, userID int64, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	if _, err := s.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.roleStore.Grant(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("granting role: %w", err)
	}

	slog.InfoContext(ctx, "role granted", "user_id", userID, "role", role)
	return s.loadUser(ctx, userID)
}

func (s *profileService) RevokeRole(ctx context.Context, userID int64, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	if err := s.roleStore.Revoke(ctx, userID, role); err != nil {
		return nil, notFound(err, "role assignment")
	}

	slog.InfoContext(ctx, "role revoked", "user_id", userID, "role", role)
	return s.loadUser(ctx, userID)
}

func (s *profileService) loadUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	roles, err := s.roleStore.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	user.Roles = roles
	return user, nil
}
