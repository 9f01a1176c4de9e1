package service

import (
	"context"

	"basepost.app/server/core/db"
	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/store"
)

// StoreProvider exposes the stores a workflow operation needs.
// *store.Stores satisfies it both outside and inside a transaction.
type StoreProvider interface {
	Users() store.UserStore
	SponsorRequests() store.SponsorRequestStore
	FamilyLinks() store.FamilyLinkStore
	SponsorCooldowns() store.SponsorCooldownStore
	Audit() store.AuditStore
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
