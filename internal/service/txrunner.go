package service

import (
	"context"

	"academyhub.app/server/core/db"
	"academyhub.app/server/core/db/sqlc"
	"academyhub.app/server/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Users() store.UserStore
	Roles() store.RoleStore
	Verifications() store.VerificationStore
	Academies() store.AcademyStore
	Members() store.MemberStore
	Seminars() store.SeminarStore
	Registrations() store.RegistrationStore
	Chat() store.ChatStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}
