package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type roleStore struct {
	queries *sqlc.Queries
}

func newRoleStore(queries *sqlc.Queries) RoleStore {
	return &roleStore{queries: queries}
}

func (s *roleStore) List(ctx context.Context, userID int64) ([]model.Role, error) {
	rows, err := s.queries.ListUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles := make([]model.Role, len(rows))
	for i, r := range rows {
		roles[i] = model.Role(r.Role)
	}
	return roles, nil
}

func (s *roleStore) Grant(ctx context.Context, userID int64, role model.Role) error {
	return translate(s.queries.GrantUserRole(ctx, sqlc.GrantUserRoleParams{
		UserID: userID,
		Role:   string(role),
	}))
}

func (s *roleStore) Revoke(ctx context.Context, userID int64, role model.Role) error {
	return affected(s.queries.RevokeUserRole(ctx, sqlc.RevokeUserRoleParams{
		UserID: userID,
		Role:   string(role),
	}))
}
