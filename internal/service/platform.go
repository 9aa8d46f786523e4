package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/dgrijalva/jwt-go"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/store"
)

const platformIssuer = "academyhub"

// Roles accepted on elevated platform tokens.
const (
	PlatformRoleSuperAdmin  = "super_admin"
	PlatformRoleServiceRole = "service_role"
)

var settingKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,63}$`)

// PlatformClaims are carried by the HS256 bearer token that guards flag writes.
type PlatformClaims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

type PlatformService interface {
	ListSettings(ctx context.Context) ([]model.PlatformSetting, error)
	GetSetting(ctx context.Context, key string) (*model.PlatformSetting, error)
	PutSetting(ctx context.Context, claims *PlatformClaims, key string, value json.RawMessage) (*model.PlatformSetting, error)

	IssueToken(subject, role string, ttl time.Duration) (string, error)
	VerifyToken(token string) (*PlatformClaims, error)
}

type platformService struct {
	settingStore store.PlatformSettingStore
	secret       []byte
	now          func() time.Time
}

func NewPlatformService(settingStore store.PlatformSettingStore, secret string) PlatformService {
	return &platformService{
		settingStore: settingStore,
		secret:       []byte(secret),
		now:          time.Now,
	}
}

func (s *platformService) ListSettings(ctx context.Context) ([]model.PlatformSetting, error) {
	return s.settingStore.List(ctx)
}

func (s *platformService) GetSetting(ctx context.Context, key string) (*model.PlatformSetting, error) {
	setting, err := s.settingStore.Get(ctx, key)
	if err != nil {
		return nil, notFound(err, "setting")
	}
	return setting, nil
}

func (s *platformService) PutSetting(ctx context.Context, claims *PlatformClaims, key string, value json.RawMessage) (*model.PlatformSetting, error) {
	if claims == nil || !allowedPlatformRole(claims.Role) {
		return nil, ErrInsufficientRole
	}
	if !settingKeyPattern.MatchString(key) {
		return nil, fmt.Errorf("%w: invalid setting key %q", ErrInvalidInput, key)
	}
	if len(value) == 0 || !json.Valid(value) {
		return nil, fmt.Errorf("%w: value must be valid JSON", ErrInvalidInput)
	}

	setting := &model.PlatformSetting{
		Key:   key,
		Value: value,
	}
	if claims.Subject != "" {
		sub := claims.Subject
		setting.UpdatedBy = &sub
	}

	if err := s.settingStore.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("upserting setting: %w", err)
	}

	slog.InfoContext(ctx, "platform setting updated",
		"key", key,
		"updated_by", claims.Subject,
		"role", claims.Role)

	return setting, nil
}

// IssueToken mints a token for the admin CLI. The secret must be configured.
func (s *platformService) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("platform JWT secret is not configured")
	}
	if !allowedPlatformRole(role) {
		return "", fmt.Errorf("%w: %q", ErrInsufficientRole, role)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("%w: ttl must be positive", ErrInvalidInput)
	}

	now := s.now()
	claims := &PlatformClaims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    platformIssuer,
			Subject:   subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing platform token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the HS256 signature and a required expiry, then the role. A bad token yields
// ErrInvalidToken, a valid token with the wrong role ErrInsufficientRole.
func (s *platformService) VerifyToken(raw string) (*PlatformClaims, error) {
	if len(s.secret) == 0 || raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &PlatformClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// StandardClaims.Valid lets a token without exp through.
	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return nil, ErrInvalidToken
	}
	if !allowedPlatformRole(claims.Role) {
		return nil, ErrInsufficientRole
	}
	return claims, nil
}

func allowedPlatformRole(role string) bool {
	return role == PlatformRoleSuperAdmin || role == PlatformRoleServiceRole
}

