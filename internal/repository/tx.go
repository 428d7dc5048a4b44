package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so every
// repository can run against either a pooled connection or an open
// transaction.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// TxManager runs fn inside a single database transaction. If fn returns an
// error (or the context is cancelled) the transaction rolls back entirely;
// otherwise it commits. Callers rebind their repositories onto the supplied
// transaction with WithTx.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}
