package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"academyhub.app/server/internal/matching"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page clamps list paging to the API defaults.
func Page(limit, offset int32) (int32, int32) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// requirePermission loads the caller's membership and checks perm.
// Non-members get ErrForbidden so academy existence is not leaked.
func requirePermission(ctx context.Context, members store.MemberStore, academyID, userID int64, perm model.Permission) (*model.AcademyMember, error) {
	member, err := members.Get(ctx, academyID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	if !member.Can(perm) {
		return nil, ErrForbidden
	}
	return member, nil
}

// requireActiveMember is requirePermission without a specific permission.
func requireActiveMember(ctx context.Context, members store.MemberStore, academyID, userID int64) (*model.AcademyMember, error) {
	member, err := members.Get(ctx, academyID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	if !member.IsActive() {
		return nil, ErrForbidden
	}
	return member, nil
}

// notFound converts store.ErrNotFound into the service sentinel with a noun.
func notFound(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

func requireText(field, value string, maxRunes int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if maxRunes > 0 && utf8.RuneCountInString(value) > maxRunes {
		return "", fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, maxRunes)
	}
	return value, nil
}

func validateTags(tags []string) ([]string, error) {
	if tags == nil {
		return []string{}, nil
	}
	if bad, ok := matching.ValidateTags(tags); !ok {
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, bad)
	}
	return tags, nil
}

func validateRegion(region string) error {
	if !model.IsValidRegion(region) {
		return fmt.Errorf("%w: unknown region %q", ErrInvalidInput, region)
	}
	return nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
