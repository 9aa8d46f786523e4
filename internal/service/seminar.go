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

type SeminarInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int32
}

type RegistrationInput struct {
	ChildID       *int64
	AttendeeCount int32
}

type SeminarService interface {
	Create(ctx context.Context, actorID, academyID int64, input SeminarInput) (*model.Seminar, error)
	Update(ctx context.Context, actorID, academyID, seminarID int64, input SeminarInput) (*model.Seminar, error)
	Close(ctx context.Context, actorID, academyID, seminarID int64) (*model.Seminar, error)
	Cancel(ctx context.Context, actorID, academyID, seminarID int64) (*model.Seminar, error)
	Get(ctx context.Context, seminarID int64) (*model.Seminar, error)
	ListByAcademy(ctx context.Context, academyID int64) ([]model.Seminar, error)
	ListUpcoming(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error)

	// Register holds the seminar row lock while counting seats, so concurrent
	// registrations cannot oversell capacity.
	Register(ctx context.Context, userID, seminarID int64, input RegistrationInput) (*model.SeminarRegistration, error)
	CancelRegistration(ctx context.Context, userID, seminarID int64) (*model.SeminarRegistration, error)
	ListRegistrations(ctx context.Context, actorID, academyID, seminarID int64) ([]model.SeminarRegistration, error)
	ListMyRegistrations(ctx context.Context, userID int64) ([]model.SeminarRegistration, error)
}

type seminarService struct {
	txRunner          TxRunner
	memberStore       store.MemberStore
	seminarStore      store.SeminarStore
	registrationStore store.RegistrationStore
	childStore        store.ChildStore
	now               func() time.Time
}

func NewSeminarService(
	txRunner TxRunner,
	memberStore store.MemberStore,
	seminarStore store.SeminarStore,
	registrationStore store.RegistrationStore,
	childStore store.ChildStore,
) SeminarService {
	return &seminarService{
		txRunner:          txRunner,
		memberStore:       memberStore,
		seminarStore:      seminarStore,
		registrationStore: registrationStore,
		childStore:        childStore,
		now:               time.Now,
	}
}

func (s *seminarService) Create(ctx context.Context, actorID, academyID int64, input SeminarInput) (*model.Seminar, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageSeminars); err != nil {
		return nil, err
	}

	seminar := &model.Seminar{
		ID:        id.New(),
		AcademyID: academyID,
		Status:    model.SeminarStatusOpen,
	}
	if err := s.applyInput(seminar, input); err != nil {
		return nil, err
	}

	if err := s.seminarStore.Create(ctx, seminar); err != nil {
		return nil, fmt.Errorf("creating seminar: %w", err)
	}

	slog.InfoContext(ctx, "seminar created",
		"academy_id", academyID,
		"seminar_id", seminar.ID,
		"starts_at", seminar.StartsAt)

	return seminar, nil
}

func (s *seminarService) Update(ctx context.Context, actorID, academyID, seminarID int64, input SeminarInput) (*model.Seminar, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageSeminars); err != nil {
		return nil, err
	}

	seminar, err := s.getOwned(ctx, academyID, seminarID)
	if err != nil {
		return nil, err
	}
	if seminar.Status == model.SeminarStatusCancelled {
		return nil, ErrInvalidTransition
	}
	if err := s.applyInput(seminar, input); err != nil {
		return nil, err
	}
	if seminar.Capacity < seminar.SeatsTaken {
		return nil, fmt.Errorf("%w: capacity is below the %d seats already taken", ErrInvalidInput, seminar.SeatsTaken)
	}

	seatsTaken := seminar.SeatsTaken
	if err := s.seminarStore.Update(ctx, seminar); err != nil {
		return nil, notFound(err, "seminar")
	}
	seminar.SeatsTaken = seatsTaken
	return seminar, nil
}

func (s *seminarService) Close(ctx context.Context, actorID, academyID, seminarID int64) (*model.Seminar, error) {
	return s.transition(ctx, actorID, academyID, seminarID, model.SeminarStatusClosed)
}

func (s *seminarService) Cancel(ctx context.Context, actorID, academyID, seminarID int64) (*model.Seminar, error) {
	return s.transition(ctx, actorID, academyID, seminarID, model.SeminarStatusCancelled)
}

// transition allows open -> closed and open|closed -> cancelled.
func (s *seminarService) transition(ctx context.Context, actorID, academyID, seminarID int64, next model.SeminarStatus) (*model.Seminar, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageSeminars); err != nil {
		return nil, err
	}

	seminar, err := s.getOwned(ctx, academyID, seminarID)
	if err != nil {
		return nil, err
	}

	allowed := seminar.Status == model.SeminarStatusOpen ||
		(seminar.Status == model.SeminarStatusClosed && next == model.SeminarStatusCancelled)
	if !allowed {
		return nil, ErrInvalidTransition
	}

	updated, err := s.seminarStore.SetStatus(ctx, academyID, seminarID, seminar.Status, next)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s changed concurrently", ErrInvalidTransition, seminar.Status)
		}
		return nil, fmt.Errorf("updating seminar status: %w", err)
	}
	updated.SeatsTaken = seminar.SeatsTaken

	slog.InfoContext(ctx, "seminar status changed",
		"seminar_id", seminarID,
		"from", seminar.Status,
		"to", next)

	return updated, nil
}

func (s *seminarService) Get(ctx context.Context, seminarID int64) (*model.Seminar, error) {
	seminar, err := s.seminarStore.GetByID(ctx, seminarID)
	if err != nil {
		return nil, notFound(err, "seminar")
	}
	return seminar, nil
}

func (s *seminarService) ListByAcademy(ctx context.Context, academyID int64) ([]model.Seminar, error) {
	return s.seminarStore.ListByAcademy(ctx, academyID)
}

func (s *seminarService) ListUpcoming(ctx context.Context, region *string, limit, offset int32) ([]model.Seminar, error) {
	limit, offset = Page(limit, offset)
	return s.seminarStore.ListUpcoming(ctx, trimmedPtr(region), limit, offset)
}

func (s *seminarService) Register(ctx context.Context, userID, seminarID int64, input RegistrationInput) (*model.SeminarRegistration, error) {
	if input.AttendeeCount < 1 || input.AttendeeCount > model.MaxAttendeesPerRegistration {
		return nil, fmt.Errorf("%w: attendee_count must be between 1 and %d", ErrInvalidInput, model.MaxAttendeesPerRegistration)
	}
	if input.ChildID != nil {
		if _, err := s.childStore.Get(ctx, userID, *input.ChildID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown child", ErrInvalidInput)
			}
			return nil, fmt.Errorf("getting child: %w", err)
		}
	}

	var registration *model.SeminarRegistration
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		seminar, err := sp.Seminars().Lock(ctx, seminarID)
		if err != nil {
			return notFound(err, "seminar")
		}
		if !seminar.AcceptsRegistrations(s.now()) {
			return ErrSeminarClosed
		}

		existing, err := sp.Registrations().Get(ctx, seminarID, userID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("getting registration: %w", err)
		}
		if existing != nil && existing.Status == model.RegistrationStatusRegistered {
			return ErrAlreadyRegistered
		}

		taken, err := sp.Seminars().SeatsTaken(ctx, seminarID)
		if err != nil {
			return fmt.Errorf("counting seats: %w", err)
		}
		if taken+input.AttendeeCount > seminar.Capacity {
			return ErrSeminarFull
		}

		if existing != nil {
			registration, err = sp.Registrations().Reactivate(ctx, existing.ID, input.ChildID, input.AttendeeCount)
			if err != nil {
				return fmt.Errorf("reactivating registration: %w", err)
			}
			return nil
		}

		registration = &model.SeminarRegistration{
			ID:            id.New(),
			SeminarID:     seminarID,
			UserID:        userID,
			ChildID:       input.ChildID,
			AttendeeCount: input.AttendeeCount,
			Status:        model.RegistrationStatusRegistered,
		}
		if err := sp.Registrations().Create(ctx, registration); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyRegistered
			}
			return fmt.Errorf("creating registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "seminar registration created",
		"seminar_id", seminarID,
		"user_id", userID,
		"attendees", input.AttendeeCount)

	return registration, nil
}

func (s *seminarService) CancelRegistration(ctx context.Context, userID, seminarID int64) (*model.SeminarRegistration, error) {
	seminar, err := s.seminarStore.GetByID(ctx, seminarID)
	if err != nil {
		return nil, notFound(err, "seminar")
	}
	if !s.now().Before(seminar.StartsAt) {
		return nil, ErrSeminarStarted
	}

	registration, err := s.registrationStore.Cancel(ctx, seminarID, userID)
	if err != nil {
		return nil, notFound(err, "registration")
	}

	slog.InfoContext(ctx, "seminar registration cancelled",
		"seminar_id", seminarID,
		"user_id", userID)

	return registration, nil
}

func (s *seminarService) ListRegistrations(ctx context.Context, actorID, academyID, seminarID int64) ([]model.SeminarRegistration, error) {
	if _, err := requirePermission(ctx, s.memberStore, academyID, actorID, model.PermissionManageSeminars); err != nil {
		return nil, err
	}
	if _, err := s.getOwned(ctx, academyID, seminarID); err != nil {
		return nil, err
	}
	return s.registrationStore.ListBySeminar(ctx, seminarID)
}

func (s *seminarService) ListMyRegistrations(ctx context.Context, userID int64) ([]model.SeminarRegistration, error) {
	return s.registrationStore.ListByUser(ctx, userID)
}

// getOwned loads a seminar and hides seminars of other academies.
func (s *seminarService) getOwned(ctx context.Context, academyID, seminarID int64) (*model.Seminar, error) {
	seminar, err := s.seminarStore.GetByID(ctx, seminarID)
	if err != nil {
		return nil, notFound(err, "seminar")
	}
	if seminar.AcademyID != academyID {
		return nil, fmt.Errorf("%w: seminar", ErrNotFound)
	}
	return seminar, nil
}

func (s *seminarService) applyInput(seminar *model.Seminar, input SeminarInput) error {
	title, err := requireText("title", input.Title, 100)
	if err != nil {
		return err
	}
	if !input.StartsAt.After(s.now()) {
		return fmt.Errorf("%w: starts_at must be in the future", ErrInvalidInput)
	}
	if input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}

	seminar.Title = title
	seminar.Description = input.Description
	seminar.Location = input.Location
	seminar.StartsAt = input.StartsAt
	seminar.Capacity = input.Capacity
	return nil
}
