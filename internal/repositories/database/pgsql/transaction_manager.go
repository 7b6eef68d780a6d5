package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &pgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*pgxTransactionManager)(nil)

// RunInTx runs fn in a transaction. A call made while ctx already carries a
// transaction joins it, and the outermost call decides commit or rollback.
func (m *pgxTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) // no-op once committed

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}
