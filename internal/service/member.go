package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

type MemberService interface {
	// Join files a pending admin membership for the academy behind code.
	Join(ctx context.Context, user *model.User, code string) (*model.AcademyMember, error)
	List(ctx context.Context, actorID, academyID int64) ([]model.AcademyMember, error)
	Approve(ctx context.Context, actorID, academyID, userID int64) (*model.AcademyMember, error)
	SetPermissions(ctx context.Context, actorID, academyID, userID int64, perms []string) (*model.AcademyMember, error)
	Remove(ctx context.Context, actorID, academyID, userID int64) error
	RotateJoinCode(ctx context.Context, actorID, academyID int64) (string, error)
}

type memberService struct {
	academyStore store.AcademyStore
	memberStore  store.MemberStore
}

func NewMemberService(academyStore store.AcademyStore, memberStore store.MemberStore) MemberService {
	return &memberService{
		academyStore: academyStore,
		memberStore:  memberStore,
	}
}

func (s *memberService) Join(ctx context.Context, user *model.User, code string) (*model.AcademyMember, error) {
	if !user.HasRole(model.RoleAcademyAdmin) {
		return nil, ErrForbidden
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != JoinCodeLength {
		return nil, fmt.Errorf("%w: join code", ErrNotFound)
	}

	academy, err := s.academyStore.GetByJoinCode(ctx, code)
	if err != nil {
		return nil, notFound(err, "join code")
	}

	if _, err := s.memberStore.Get(ctx, academy.ID, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting membership: %w", err)
	}

	member := &model.AcademyMember{
		AcademyID:   academy.ID,
		UserID:      user.ID,
		Role:        model.MemberRoleAdmin,
		Status:      model.MemberStatusPending,
		Permissions: []model.Permission{},
	}
	if err := s.memberStore.Create(ctx, member); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("creating membership: %w", err)
	}
	member.AcademyName = academy.Name

	slog.InfoContext(ctx, "academy join requested",
		"academy_id", academy.ID,
		"user_id", user.ID)

	return member, nil
}

func (s *memberService) List(ctx context.Context, actorID, academyID int64) ([]model.AcademyMember, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageMembers); err != nil {
		return nil, err
	}
	return s.memberStore.ListByAcademy(ctx, academyID)
}

func (s *memberService) Approve(ctx context.Context, actorID, academyID, userID int64) (*model.AcademyMember, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageMembers); err != nil {
		return nil, err
	}

	member, err := s.memberStore.Activate(ctx, academyID, userID)
	if err != nil {
		return nil, notFound(err, "member")
	}

	slog.InfoContext(ctx, "academy member approved",
		"academy_id", academyID,
		"user_id", userID,
		"approved_by", actorID)

	return member, nil
}

func (s *memberService) SetPermissions(ctx context.Context, actorID, academyID, userID int64, perms []string) (*model.AcademyMember, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageMembers); err != nil {
		return nil, err
	}

	parsed := make([]model.Permission, 0, len(perms))
	seen := make(map[model.Permission]bool, len(perms))
	for _, p := range perms {
		perm := model.Permission(p)
		if !perm.Valid() {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, p)
		}
		if !seen[perm] {
			seen[perm] = true
			parsed = append(parsed, perm)
		}
	}

	target, err := s.memberStore.Get(ctx, academyID, userID)
	if err != nil {
		return nil, notFound(err, "member")
	}
	if target.IsOwner() {
		return nil, ErrOwnerImmutable
	}

	member, err := s.memberStore.UpdatePermissions(ctx, academyID, userID, parsed)
	if err != nil {
		return nil, notFound(err, "member")
	}

	slog.InfoContext(ctx, "academy member permissions updated",
		"academy_id", academyID,
		"user_id", userID,
		"permissions", parsed)

	return member, nil
}

func (s *memberService) Remove(ctx context.Context, actorID, academyID, userID int64) error {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageMembers); err != nil {
		return err
	}

	target, err := s.memberStore.Get(ctx, academyID, userID)
	if err != nil {
		return notFound(err, "member")
	}
	if target.IsOwner() {
		return ErrOwnerImmutable
	}

	if err := s.memberStore.Delete(ctx, academyID, userID); err != nil {
		return notFound(err, "member")
	}

	slog.InfoContext(ctx, "academy member removed",
		"academy_id", academyID,
		"user_id", userID,
		"removed_by", actorID)

	return nil
}

func (s *memberService) RotateJoinCode(ctx context.Context, actorID, academyID int64) (string, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageMembers); err != nil {
		return "", err
	}

	code, err := generateJoinCode()
	if err != nil {
		return "", fmt.Errorf("generating join code: %w", err)
	}

	academy, err := s.academyStore.UpdateJoinCode(ctx, academyID, code)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return "", fmt.Errorf("%w: join code collision, try again", ErrConflict)
		}
		return "", notFound(err, "academy")
	}

	slog.InfoContext(ctx, "join code rotated", "academy_id", academyID, "user_id", actorID)
	return academy.JoinCode, nil
}
