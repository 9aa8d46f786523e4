package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"academyhub.app/server/common/logger"
	"academyhub.app/server/internal/mailer"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/queue"
	"academyhub.app/server/internal/store"
)

// ErrPermanent marks failures that retrying cannot fix. The message goes
// straight to the dead letter stream.
var ErrPermanent = errors.New("permanent failure")

// MailProcessor sends the review outcome email for a business verification.
type MailProcessor struct {
	verifications store.VerificationStore
	users         store.UserStore
	mailer        mailer.Mailer
	dashboardURL  string
}

func NewMailProcessor(verifications store.VerificationStore, users store.UserStore, m mailer.Mailer, dashboardURL string) *MailProcessor {
	return &MailProcessor{
		verifications: verifications,
		users:         users,
		mailer:        m,
		dashboardURL:  dashboardURL,
	}
}

func (p *MailProcessor) Process(ctx context.Context, msg queue.Message) error {
	switch msg.TaskType {
	case queue.TaskTypeVerificationEmail:
		return p.sendVerificationEmail(ctx, *msg.VerificationID)
	default:
		return fmt.Errorf("%w: unknown task type %q", ErrPermanent, msg.TaskType)
	}
}

func (p *MailProcessor) sendVerificationEmail(ctx context.Context, verificationID int64) error {
	v, err := p.verifications.GetByID(ctx, verificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: verification %d not found", ErrPermanent, verificationID)
		}
		return fmt.Errorf("getting verification: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &v.UserID})

	if v.Status == model.VerificationStatusPending {
		// Resend raced a re-submission; nothing to announce yet.
		slog.InfoContext(ctx, "verification still pending, skipping email",
			"verification_id", verificationID)
		return nil
	}

	user, err := p.users.GetByID(ctx, v.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: user %d not found", ErrPermanent, v.UserID)
		}
		return fmt.Errorf("getting user: %w", err)
	}

	msg, err := mailer.VerificationMessage(v, user, p.dashboardURL)
	if err != nil {
		return fmt.Errorf("%w: rendering email: %v", ErrPermanent, err)
	}

	sc := logger.StartSpan(ctx, "mailer.send")
	err = p.mailer.Send(sc.Context(), msg)
	sc.RecordError(err)
	sc.End()
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	slog.InfoContext(ctx, "verification email sent",
		"verification_id", verificationID,
		"status", v.Status)
	return nil
}
