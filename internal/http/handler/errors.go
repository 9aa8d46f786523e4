package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"academyhub.app/server/common/errtrack"
	"academyhub.app/server/internal/service"
	"academyhub.app/server/internal/store"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Checked in order, so more specific sentinels come first.
var errorMappings = []errorMapping{
	{service.ErrVerificationRequired, http.StatusForbidden, "verification_required"},
	{service.ErrInsufficientRole, http.StatusForbidden, "insufficient_role"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},

	{service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
	{service.ErrSessionExpired, http.StatusUnauthorized, "session_expired"},
	{service.ErrInvalidCode, http.StatusUnauthorized, "invalid_code"},

	{service.ErrNoLearnerTags, http.StatusBadRequest, "no_learner_tags"},
	{service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},

	{service.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{service.ErrNotFound, http.StatusNotFound, "not_found"},
	{store.ErrNotFound, http.StatusNotFound, "not_found"},

	{service.ErrVerificationPending, http.StatusConflict, "verification_pending"},
	{service.ErrNotReviewable, http.StatusConflict, "not_reviewable"},
	{service.ErrNotReviewed, http.StatusConflict, "not_reviewed"},
	{service.ErrAlreadyMember, http.StatusConflict, "already_member"},
	{service.ErrOwnerImmutable, http.StatusConflict, "owner_immutable"},
	{service.ErrSeminarClosed, http.StatusConflict, "seminar_closed"},
	{service.ErrSeminarFull, http.StatusConflict, "seminar_full"},
	{service.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
	{service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{service.ErrConflict, http.StatusConflict, "conflict"},
	{store.ErrConflict, http.StatusConflict, "conflict"},

	{service.ErrSeminarStarted, http.StatusGone, "seminar_started"},
	{service.ErrUploadTooLarge, http.StatusRequestEntityTooLarge, "upload_too_large"},
}

// respondError maps a service error onto a status and the JSON error body.
// Anything unmapped is a 500 and gets reported.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{"error": err.Error(), "code": m.code})
			return
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		c.JSON(http.StatusConflict, gin.H{"error": "already exists", "code": "conflict"})
		return
	}

	ctx := c.Request.Context()
	slog.ErrorContext(ctx, "request failed", "error", err, "path", c.FullPath())
	errtrack.Error(ctx, err, map[string]interface{}{
		"method": c.Request.Method,
		"route":  c.FullPath(),
	})
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_input"})
}
