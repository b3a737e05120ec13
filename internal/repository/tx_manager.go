package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRepositories bundles the repositories that participate in guarded
// mutations, all scoped to one transaction.
type TxRepositories struct {
	Classes       ClassRepository
	Students      StudentRepository
	Registrations RegistrationRepository
	Subscriptions SubscriptionRepository
}

// TxManager runs a unit of work inside a single database transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// PgxTxManager is the pgx-backed TxManager.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

// NewPgxTxManager creates a TxManager over the given pool.
func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithTx begins a transaction, hands transaction-scoped repositories to fn,
// and commits when fn succeeds. Any error from fn rolls everything back.
func (m *PgxTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	// Releases the transaction on every exit path, including a panic
	// inside fn. After a successful commit this is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	repos := TxRepositories{
		Classes:       NewClassRepository(tx),
		Students:      NewStudentRepository(tx),
		Registrations: NewRegistrationRepository(tx),
		Subscriptions: NewSubscriptionRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			// Keep the unit-of-work failure visible next to the rollback cause.
			return errors.Join(err, rollbackErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
