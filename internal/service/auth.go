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

const SessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	// Logout drops the session and returns the WorkOS logout URL when the
	// session was linked to one.
	Logout(ctx context.Context, sessionID int64) (*string, error)
}

type authService struct {
	txRunner     TxRunner
	userStore    store.UserStore
	roleStore    store.RoleStore
	sessionStore store.SessionStore
	provider     IdentityProvider
}

func NewAuthService(
	txRunner TxRunner,
	userStore store.UserStore,
	roleStore store.RoleStore,
	sessionStore store.SessionStore,
	provider IdentityProvider,
) AuthService {
	return &authService{
		txRunner:     txRunner,
		userStore:    userStore,
		roleStore:    roleStore,
		sessionStore: sessionStore,
		provider:     provider,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	return s.provider.AuthorizationURL(state)
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	identity, err := s.provider.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	user := &model.User{
		ID:        id.New(),
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		WorkOSID:  &identity.WorkOSID,
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Users().UpsertByWorkOSID(ctx, user); err != nil {
			return fmt.Errorf("upserting user: %w", err)
		}

		roles, err := sp.Roles().List(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("listing roles: %w", err)
		}
		if len(roles) == 0 {
			if err := sp.Roles().Grant(ctx, user.ID, model.RoleParent); err != nil {
				return fmt.Errorf("granting default role: %w", err)
			}
			roles = []model.Role{model.RoleParent}
		}
		user.Roles = roles
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upsert user",
			"error", err,
			"email", user.Email,
			"workos_id", identity.WorkOSID,
		)
		return nil, nil, err
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if identity.SessionID != "" {
		session.WorkOSSessionID = &identity.SessionID
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID,
	)

	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	roles, err := s.roleStore.List(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	user.Roles = roles

	return user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) (*string, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("deleting session: %w", err)
	}

	if session.WorkOSSessionID == nil {
		return nil, nil
	}

	url, err := s.provider.LogoutURL(*session.WorkOSSessionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to build logout url", "error", err, "session_id", sessionID)
		return nil, nil
	}
	return &url, nil
}
