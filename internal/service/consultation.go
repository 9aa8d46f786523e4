package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const maxConsultationMessage = 1000

type ConsultationInput struct {
	ChildID     *int64
	PreferredAt *time.Time
	Message     string
}

type ConsultationService interface {
	Request(ctx context.Context, userID, academyID int64, input ConsultationInput) (*model.Consultation, error)
	ListMine(ctx context.Context, userID int64, limit, offset int32) ([]model.Consultation, error)
	ListForAcademy(ctx context.Context, actorID, academyID int64, status *string, limit, offset int32) ([]model.Consultation, error)
	UpdateStatus(ctx context.Context, actorID, academyID, consultationID int64, status string, note *string) (*model.Consultation, error)
	CancelMine(ctx context.Context, userID, consultationID int64) (*model.Consultation, error)
}

type consultationService struct {
	academyStore      store.AcademyStore
	memberStore       store.MemberStore
	childStore        store.ChildStore
	consultationStore store.ConsultationStore
}

func NewConsultationService(
	academyStore store.AcademyStore,
	memberStore store.MemberStore,
	childStore store.ChildStore,
	consultationStore store.ConsultationStore,
) ConsultationService {
	return &consultationService{
		academyStore:      academyStore,
		memberStore:       memberStore,
		childStore:        childStore,
		consultationStore: consultationStore,
	}
}

func (s *consultationService) Request(ctx context.Context, userID, academyID int64, input ConsultationInput) (*model.Consultation, error) {
	message, err := requireText("message", input.Message, maxConsultationMessage)
	if err != nil {
		return nil, err
	}

	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return nil, notFound(err, "academy")
	}

	if input.ChildID != nil {
		if _, err := s.childStore.Get(ctx, userID, *input.ChildID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown child", ErrInvalidInput)
			}
			return nil, fmt.Errorf("getting child: %w", err)
		}
	}

	c := &model.Consultation{
		ID:          id.New(),
		AcademyID:   academyID,
		UserID:      userID,
		ChildID:     input.ChildID,
		PreferredAt: input.PreferredAt,
		Message:     message,
		Status:      model.ConsultationStatusPending,
	}
	if err := s.consultationStore.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating consultation: %w", err)
	}

	slog.InfoContext(ctx, "consultation requested",
		"consultation_id", c.ID,
		"academy_id", academyID,
		"user_id", userID)

	return c, nil
}

func (s *consultationService) ListMine(ctx context.Context, userID int64, limit, offset int32) ([]model.Consultation, error) {
	limit, offset = Page(limit, offset)
	return s.consultationStore.ListByUser(ctx, userID, limit, offset)
}

func (s *consultationService) ListForAcademy(ctx context.Context, actorID, academyID int64, status *string, limit, offset int32) ([]model.Consultation, error) {
	if _, err := requireActiveMember(ctx, s.memberStore, academyID, actorID); err != nil {
		return nil, err
	}

	var filter *model.ConsultationStatus
	if status := trimmedPtr(status); status != nil {
		st := model.ConsultationStatus(*status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		filter = &st
	}

	limit, offset = Page(limit, offset)
	return s.consultationStore.ListByAcademy(ctx, academyID, filter, limit, offset)
}

func (s *consultationService) UpdateStatus(ctx context.Context, actorID, academyID, consultationID int64, status string, note *string) (*model.Consultation, error) {
	if _, err := requireActiveMember(ctx, s.memberStore, academyID, actorID); err != nil {
		return nil, err
	}

	next := model.ConsultationStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	c, err := s.consultationStore.GetByID(ctx, consultationID)
	if err != nil {
		return nil, notFound(err, "consultation")
	}
	if c.AcademyID != academyID {
		return nil, fmt.Errorf("%w: consultation", ErrNotFound)
	}

	if note == nil {
		note = c.AcademyNote
	}
	return s.transition(ctx, c, next, trimmedPtr(note))
}

func (s *consultationService) CancelMine(ctx context.Context, userID, consultationID int64) (*model.Consultation, error) {
	c, err := s.consultationStore.GetByID(ctx, consultationID)
	if err != nil {
		return nil, notFound(err, "consultation")
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("%w: consultation", ErrNotFound)
	}
	return s.transition(ctx, c, model.ConsultationStatusCancelled, c.AcademyNote)
}

func (s *consultationService) transition(ctx context.Context, c *model.Consultation, next model.ConsultationStatus, note *string) (*model.Consultation, error) {
	if !c.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, next)
	}

	updated, err := s.consultationStore.UpdateStatus(ctx, c.ID, c.Status, next, note)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Someone else moved it first.
			return nil, fmt.Errorf("%w: %s changed concurrently", ErrInvalidTransition, c.Status)
		}
		return nil, fmt.Errorf("updating consultation: %w", err)
	}

	slog.InfoContext(ctx, "consultation status changed",
		"consultation_id", c.ID,
		"from", c.Status,
		"to", next)

	return updated, nil
}
