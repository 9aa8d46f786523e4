package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"academyhub.app/server/common/id"
	"academyhub.app/server/internal/bizno"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/store"
)

type VerificationInput struct {
	BusinessNumber     string
	BusinessName       string
	RepresentativeName string
	DocumentKey        *string
}

type VerificationService interface {
	Submit(ctx context.Context, userID int64, input VerificationInput) (*model.BusinessVerification, error)
	GetLatest(ctx context.Context, userID int64) (*model.BusinessVerification, error)
	List(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error)
	// Approve grants academy_admin to the applicant in the same transaction.
	// reviewerID is nil when the review comes from the admin CLI.
	Approve(ctx context.Context, reviewerID *int64, id int64) (*model.BusinessVerification, error)
	Reject(ctx context.Context, reviewerID *int64, id int64, reason string) (*model.BusinessVerification, error)
	// ResendEmail re-enqueues the result email for a reviewed verification.
	ResendEmail(ctx context.Context, id int64) error
}

type verificationService struct {
	txRunner          TxRunner
	verificationStore store.VerificationStore
	producer          queue.Producer
}

func NewVerificationService(txRunner TxRunner, verificationStore store.VerificationStore, producer queue.Producer) VerificationService {
	return &verificationService{
		txRunner:          txRunner,
		verificationStore: verificationStore,
		producer:          producer,
	}
}

func (s *verificationService) Submit(ctx context.Context, userID int64, input VerificationInput) (*model.BusinessVerification, error) {
	if err := bizno.Validate(input.BusinessNumber); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	formatted, err := bizno.Format(input.BusinessNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	businessName, err := requireText("business_name", input.BusinessName, 100)
	if err != nil {
		return nil, err
	}
	representative, err := requireText("representative_name", input.RepresentativeName, 50)
	if err != nil {
		return nil, err
	}

	latest, err := s.verificationStore.GetLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting latest verification: %w", err)
	}
	if latest != nil && latest.Status == model.VerificationStatusPending {
		return nil, ErrVerificationPending
	}

	v := &model.BusinessVerification{
		ID:                 id.New(),
		UserID:             userID,
		BusinessNumber:     formatted,
		BusinessName:       businessName,
		RepresentativeName: representative,
		DocumentKey:        trimmedPtr(input.DocumentKey),
		Status:             model.VerificationStatusPending,
	}

	if err := s.verificationStore.Create(ctx, v); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrVerificationPending
		}
		return nil, fmt.Errorf("creating verification: %w", err)
	}

	slog.InfoContext(ctx, "business verification submitted",
		"verification_id", v.ID,
		"user_id", userID)

	return v, nil
}

func (s *verificationService) GetLatest(ctx context.Context, userID int64) (*model.BusinessVerification, error) {
	v, err := s.verificationStore.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, notFound(err, "verification")
	}
	return v, nil
}

func (s *verificationService) List(ctx context.Context, status model.VerificationStatus, limit, offset int32) ([]model.BusinessVerification, error) {
	if status == "" {
		status = model.VerificationStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	limit, offset = Page(limit, offset)
	return s.verificationStore.ListByStatus(ctx, status, limit, offset)
}

func (s *verificationService) Approve(ctx context.Context, reviewerID *int64, id int64) (*model.BusinessVerification, error) {
	var reviewed *model.BusinessVerification

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		v, err := sp.Verifications().Review(ctx, id, model.VerificationStatusApproved, nil, reviewerID)
		if err != nil {
			return s.reviewError(ctx, sp.Verifications(), id, err)
		}
		if err := sp.Roles().Grant(ctx, v.UserID, model.RoleAcademyAdmin); err != nil {
			return fmt.Errorf("granting academy_admin: %w", err)
		}
		reviewed = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "business verification approved",
		"verification_id", id,
		"user_id", reviewed.UserID)

	s.enqueueEmail(ctx, id)
	return reviewed, nil
}

func (s *verificationService) Reject(ctx context.Context, reviewerID *int64, id int64, reason string) (*model.BusinessVerification, error) {
	reason, err := requireText("reason", reason, 500)
	if err != nil {
		return nil, err
	}

	var reviewed *model.BusinessVerification
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		v, err := sp.Verifications().Review(ctx, id, model.VerificationStatusRejected, &reason, reviewerID)
		if err != nil {
			return s.reviewError(ctx, sp.Verifications(), id, err)
		}
		reviewed = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "business verification rejected",
		"verification_id", id,
		"user_id", reviewed.UserID)

	s.enqueueEmail(ctx, id)
	return reviewed, nil
}

func (s *verificationService) ResendEmail(ctx context.Context, id int64) error {
	v, err := s.verificationStore.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "verification")
	}
	if v.Status == model.VerificationStatusPending {
		return ErrNotReviewed
	}

	if err := s.producer.Enqueue(ctx, queue.VerificationEmailTask(id)); err != nil {
		return fmt.Errorf("enqueueing verification email: %w", err)
	}
	return nil
}

// reviewError tells a missing verification apart from one that was already
// reviewed. Review only matches pending rows.
func (s *verificationService) reviewError(ctx context.Context, verifications store.VerificationStore, id int64, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("reviewing verification: %w", err)
	}
	if _, getErr := verifications.GetByID(ctx, id); getErr != nil {
		return notFound(getErr, "verification")
	}
	return ErrNotReviewable
}

// enqueueEmail runs after commit. The review already happened, so a queue
// failure is logged and left to ResendEmail.
func (s *verificationService) enqueueEmail(ctx context.Context, id int64) {
	if err := s.producer.Enqueue(ctx, queue.VerificationEmailTask(id)); err != nil {
		slog.ErrorContext(ctx, "failed to enqueue verification email",
			"error", err,
			"verification_id", id)
	}
}
