package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const (
	maxChildName  = 50
	maxChildGrade = 20
	minBirthYear  = 1990
)

type ChildInput struct {
	Name      string
	Grade     string
	BirthYear *int32
	Tags      []string
}

type ChildService interface {
	Create(ctx context.Context, parentID int64, input ChildInput) (*model.Child, error)
	Get(ctx context.Context, parentID, childID int64) (*model.Child, error)
	List(ctx context.Context, parentID int64) ([]model.Child, error)
	Update(ctx context.Context, parentID, childID int64, input ChildInput) (*model.Child, error)
	Delete(ctx context.Context, parentID, childID int64) error
}

type childService struct {
	childStore store.ChildStore
	now        func() time.Time
}

func NewChildService(childStore store.ChildStore) ChildService {
	return &childService{
		childStore: childStore,
		now:        time.Now,
	}
}

func (s *childService) Create(ctx context.Context, parentID int64, input ChildInput) (*model.Child, error) {
	child := &model.Child{ID: id.New(), ParentID: parentID}
	if err := s.apply(child, input); err != nil {
		return nil, err
	}

	if err := s.childStore.Create(ctx, child); err != nil {
		return nil, fmt.Errorf("creating child: %w", err)
	}

	slog.InfoContext(ctx, "child created", "child_id", child.ID, "parent_id", parentID)
	return child, nil
}

func (s *childService) Get(ctx context.Context, parentID, childID int64) (*model.Child, error) {
	child, err := s.childStore.Get(ctx, parentID, childID)
	if err != nil {
		return nil, notFound(err, "child")
	}
	return child, nil
}

func (s *childService) List(ctx context.Context, parentID int64) ([]model.Child, error) {
	return s.childStore.ListByParent(ctx, parentID)
}

func (s *childService) Update(ctx context.Context, parentID, childID int64, input ChildInput) (*model.Child, error) {
	child, err := s.childStore.Get(ctx, parentID, childID)
	if err != nil {
		return nil, notFound(err, "child")
	}
	if err := s.apply(child, input); err != nil {
		return nil, err
	}

	if err := s.childStore.Update(ctx, child); err != nil {
		return nil, notFound(err, "child")
	}
	return child, nil
}

func (s *childService) Delete(ctx context.Context, parentID, childID int64) error {
	if err := s.childStore.Delete(ctx, parentID, childID); err != nil {
		return notFound(err, "child")
	}
	return nil
}

func (s *childService) apply(child *model.Child, input ChildInput) error {
	name, err := requireText("name", input.Name, maxChildName)
	if err != nil {
		return err
	}

	grade := strings.TrimSpace(input.Grade)
	if utf8.RuneCountInString(grade) > maxChildGrade {
		return fmt.Errorf("%w: grade is longer than %d characters", ErrInvalidInput, maxChildGrade)
	}

	if input.BirthYear != nil {
		year := *input.BirthYear
		if year < minBirthYear || int(year) > s.now().Year() {
			return fmt.Errorf("%w: birth_year must be between %d and %d", ErrInvalidInput, minBirthYear, s.now().Year())
		}
	}

	tags, err := validateTags(input.Tags)
	if err != nil {
		return err
	}

	child.Name = name
	child.Grade = grade
	child.BirthYear = input.BirthYear
	child.Tags = tags
	return nil
}
