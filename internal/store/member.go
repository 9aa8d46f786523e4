package store

import (
	"context"

	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) Create(ctx context.Context, member *model.AcademyMember) error {
	row, err := s.queries.CreateAcademyMember(ctx, sqlc.CreateAcademyMemberParams{
		AcademyID:   member.AcademyID,
		UserID:      member.UserID,
		Role:        string(member.Role),
		Status:      string(member.Status),
		Permissions: fromPermissions(member.Permissions),
	})
	if err != nil {
		return translate(err)
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) Get(ctx context.Context, academyID, userID int64) (*model.AcademyMember, error) {
	row, err := s.queries.GetAcademyMember(ctx, sqlc.GetAcademyMemberParams{
		AcademyID: academyID,
		UserID:    userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) ListByAcademy(ctx context.Context, academyID int64) ([]model.AcademyMember, error) {
	rows, err := s.queries.ListAcademyMembers(ctx, academyID)
	if err != nil {
		return nil, err
	}
	out := make([]model.AcademyMember, len(rows))
	for i, r := range rows {
		m := toMemberModel(sqlc.AcademyMember{
			AcademyID:   r.AcademyID,
			UserID:      r.UserID,
			Role:        r.Role,
			Status:      r.Status,
			Permissions: r.Permissions,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
		m.UserName = r.UserName
		m.UserEmail = r.UserEmail
		out[i] = *m
	}
	return out, nil
}

func (s *memberStore) ListByUser(ctx context.Context, userID int64) ([]model.AcademyMember, error) {
	rows, err := s.queries.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.AcademyMember, len(rows))
	for i, r := range rows {
		m := toMemberModel(sqlc.AcademyMember{
			AcademyID:   r.AcademyID,
			UserID:      r.UserID,
			Role:        r.Role,
			Status:      r.Status,
			Permissions: r.Permissions,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
		m.AcademyName = r.AcademyName
		out[i] = *m
	}
	return out, nil
}

func (s *memberStore) Activate(ctx context.Context, academyID, userID int64) (*model.AcademyMember, error) {
	row, err := s.queries.ActivateAcademyMember(ctx, sqlc.ActivateAcademyMemberParams{
		AcademyID: academyID,
		UserID:    userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) UpdatePermissions(ctx context.Context, academyID, userID int64, perms []model.Permission) (*model.AcademyMember, error) {
	row, err := s.queries.UpdateAcademyMemberPermissions(ctx, sqlc.UpdateAcademyMemberPermissionsParams{
		AcademyID:   academyID,
		UserID:      userID,
		Permissions: fromPermissions(perms),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Delete(ctx context.Context, academyID, userID int64) error {
	return affected(s.queries.DeleteAcademyMember(ctx, sqlc.DeleteAcademyMemberParams{
		AcademyID: academyID,
		UserID:    userID,
	}))
}

func toMemberModel(row sqlc.AcademyMember) *model.AcademyMember {
	perms := make([]model.Permission, len(row.Permissions))
	for i, p := range row.Permissions {
		perms[i] = model.Permission(p)
	}
	return &model.AcademyMember{
		AcademyID:   row.AcademyID,
		UserID:      row.UserID,
		Role:        model.MemberRole(row.Role),
		Status:      model.MemberStatus(row.Status),
		Permissions: perms,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func fromPermissions(perms []model.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
