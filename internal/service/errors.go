package service

import "errors"

// Generic outcomes. Handlers map these onto status codes, so wrap them with
// detail (fmt.Errorf("%w: ...", ErrInvalidInput)) rather than replacing them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

var (
	ErrVerificationRequired = errors.New("an approved business verification is required")
	ErrVerificationPending  = errors.New("a pending verification already exists")
	ErrNotReviewable        = errors.New("verification is not pending")
	ErrNotReviewed          = errors.New("verification has not been reviewed")
	ErrAlreadyMember        = errors.New("already a member of this academy")
	ErrOwnerImmutable       = errors.New("the academy owner cannot be changed")
	ErrSeminarClosed        = errors.New("seminar is not accepting registrations")
	ErrSeminarFull          = errors.New("seminar is full")
	ErrSeminarStarted       = errors.New("seminar has already started")
	ErrAlreadyRegistered    = errors.New("already registered for this seminar")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNoLearnerTags        = errors.New("no learner tags to match against")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrInsufficientRole     = errors.New("token role not allowed")
)
