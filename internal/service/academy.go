package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"academyhub.app/server/common"
	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const (
	JoinCodeLength = 8

	// No 0/O or 1/I, so codes survive being read out over the phone.
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxSlugAttempts   = 50
	detailPostsLimit  = 5
	candidatePageSize = 500
	descriptionLength = 2000
)

type AcademyInput struct {
	Name        string
	Description string
	Region      string
	Address     string
	Phone       *string
	Tags        []string
	LogoKey     *string
}

// AcademyUpdate carries only the fields being changed.
type AcademyUpdate struct {
	Name        *string
	Description *string
	Region      *string
	Address     *string
	Phone       *string
	Tags        []string // nil leaves tags unchanged
	LogoKey     *string
}

// AcademyDetail is the public academy page.
type AcademyDetail struct {
	Academy  *model.Academy  `json:"academy"`
	Classes  []ClassView     `json:"classes"`
	Teachers []model.Teacher `json:"teachers"`
	Seminars []model.Seminar `json:"seminars"`
	Posts    []model.Post    `json:"posts"`
}

type AcademyService interface {
	Create(ctx context.Context, userID int64, input AcademyInput) (*model.Academy, error)
	Get(ctx context.Context, id int64) (*AcademyDetail, error)
	GetBySlug(ctx context.Context, slug string) (*AcademyDetail, error)
	List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error)
	Update(ctx context.Context, userID, academyID int64, update AcademyUpdate) (*model.Academy, error)
	Delete(ctx context.Context, userID, academyID int64) error
}

type academyService struct {
	txRunner     TxRunner
	academyStore store.AcademyStore
	memberStore  store.MemberStore
	teacherStore store.TeacherStore
	classStore   store.ClassStore
	seminarStore store.SeminarStore
	postStore    store.PostStore
	now          func() time.Time
}

func NewAcademyService(
	txRunner TxRunner,
	academyStore store.AcademyStore,
	memberStore store.MemberStore,
	teacherStore store.TeacherStore,
	classStore store.ClassStore,
	seminarStore store.SeminarStore,
	postStore store.PostStore,
) AcademyService {
	return &academyService{
		txRunner:     txRunner,
		academyStore: academyStore,
		memberStore:  memberStore,
		teacherStore: teacherStore,
		classStore:   classStore,
		seminarStore: seminarStore,
		postStore:    postStore,
		now:          time.Now,
	}
}

func (s *academyService) Create(ctx context.Context, userID int64, input AcademyInput) (*model.Academy, error) {
	name, err := requireText("name", input.Name, 100)
	if err != nil {
		return nil, err
	}
	if err := validateRegion(input.Region); err != nil {
		return nil, err
	}
	tags, err := validateTags(input.Tags)
	if err != nil {
		return nil, err
	}

	baseSlug, err := common.Slugify(name, "academy")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	joinCode, err := generateJoinCode()
	if err != nil {
		return nil, fmt.Errorf("generating join code: %w", err)
	}

	academy := &model.Academy{
		ID:          id.New(),
		OwnerUserID: userID,
		Name:        name,
		Description: input.Description,
		Region:      input.Region,
		Address:     input.Address,
		Phone:       trimmedPtr(input.Phone),
		Tags:        tags,
		LogoKey:     trimmedPtr(input.LogoKey),
		JoinCode:    joinCode,
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		verification, err := sp.Verifications().GetUsableByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrVerificationRequired
			}
			return fmt.Errorf("getting verification: %w", err)
		}

		slug, err := uniqueSlug(ctx, sp.Academies(), baseSlug)
		if err != nil {
			return err
		}
		academy.Slug = slug
		academy.VerificationID = &verification.ID

		if err := sp.Academies().Create(ctx, academy); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return fmt.Errorf("creating academy: %w", err)
		}

		if _, err := sp.Verifications().Consume(ctx, verification.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrVerificationRequired
			}
			return fmt.Errorf("consuming verification: %w", err)
		}

		owner := &model.AcademyMember{
			AcademyID:   academy.ID,
			UserID:      userID,
			Role:        model.MemberRoleOwner,
			Status:      model.MemberStatusActive,
			Permissions: model.AllPermissions,
		}
		if err := sp.Members().Create(ctx, owner); err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "academy created",
		"academy_id", academy.ID,
		"slug", academy.Slug,
		"owner_user_id", userID)

	return academy, nil
}

func (s *academyService) Get(ctx context.Context, id int64) (*AcademyDetail, error) {
	academy, err := s.academyStore.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "academy")
	}
	return s.detail(ctx, academy)
}

func (s *academyService) GetBySlug(ctx context.Context, slug string) (*AcademyDetail, error) {
	academy, err := s.academyStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "academy")
	}
	return s.detail(ctx, academy)
}

func (s *academyService) detail(ctx context.Context, academy *model.Academy) (*AcademyDetail, error) {
	classes, err := s.classStore.ListByAcademy(ctx, academy.ID)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	teachers, err := s.teacherStore.ListByAcademy(ctx, academy.ID)
	if err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}
	seminars, err := s.seminarStore.ListByAcademy(ctx, academy.ID)
	if err != nil {
		return nil, fmt.Errorf("listing seminars: %w", err)
	}
	posts, err := s.postStore.ListByAcademy(ctx, academy.ID, nil, detailPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	now := s.now()
	upcoming := make([]model.Seminar, 0, len(seminars))
	for _, sem := range seminars {
		if sem.AcceptsRegistrations(now) {
			upcoming = append(upcoming, sem)
		}
	}

	return &AcademyDetail{
		Academy:  academy,
		Classes:  toClassViews(classes),
		Teachers: teachers,
		Seminars: upcoming,
		Posts:    posts,
	}, nil
}

func (s *academyService) List(ctx context.Context, filter model.AcademyFilter) ([]model.Academy, error) {
	filter.Limit, filter.Offset = Page(filter.Limit, filter.Offset)
	filter.Region = trimmedPtr(filter.Region)
	filter.Subject = trimmedPtr(filter.Subject)
	filter.Query = trimmedPtr(filter.Query)
	return s.academyStore.List(ctx, filter)
}

func (s *academyService) Update(ctx context.Context, userID, academyID int64, update AcademyUpdate) (*model.Academy, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, userID, model.PermissionManageAcademy); err != nil {
		return nil, err
	}

	academy, err := s.academyStore.GetByID(ctx, academyID)
	if err != nil {
		return nil, notFound(err, "academy")
	}

	if update.Name != nil {
		name, err := requireText("name", *update.Name, 100)
		if err != nil {
			return nil, err
		}
		academy.Name = name
	}
	if update.Description != nil {
		if len([]rune(*update.Description)) > descriptionLength {
			return nil, fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, descriptionLength)
		}
		academy.Description = *update.Description
	}
	if update.Region != nil {
		if err := validateRegion(*update.Region); err != nil {
			return nil, err
		}
		academy.Region = *update.Region
	}
	if update.Address != nil {
		academy.Address = *update.Address
	}
	if update.Phone != nil {
		academy.Phone = trimmedPtr(update.Phone)
	}
	if update.Tags != nil {
		tags, err := validateTags(update.Tags)
		if err != nil {
			return nil, err
		}
		academy.Tags = tags
	}
	if update.LogoKey != nil {
		academy.LogoKey = trimmedPtr(update.LogoKey)
	}

	if err := s.academyStore.Update(ctx, academy); err != nil {
		return nil, notFound(err, "academy")
	}

	slog.InfoContext(ctx, "academy updated", "academy_id", academyID, "user_id", userID)
	return academy, nil
}

func (s *academyService) Delete(ctx context.Context, userID, academyID int64) error {
	member, err := requireActiveMember(ctx, s.memberStore, academyID, userID)
	if err != nil {
		return err
	}
	if !member.IsOwner() {
		return ErrForbidden
	}

	if err := s.academyStore.SoftDelete(ctx, academyID); err != nil {
		return notFound(err, "academy")
	}

	slog.InfoContext(ctx, "academy deleted", "academy_id", academyID, "user_id", userID)
	return nil
}

// uniqueSlug returns base, or base-2, base-3, ... for the first free slug.
// Deleted academies keep their slug reserved.
func uniqueSlug(ctx context.Context, academies store.AcademyStore, base string) (string, error) {
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := common.WithSuffix(base, n)
		exists, err := academies.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}

func generateJoinCode() (string, error) {
	buf := make([]byte, JoinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	// 256 is a multiple of len(alphabet), so the modulo is unbiased.
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
