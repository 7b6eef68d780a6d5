package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a database transaction.
// Repositories called with the ctx passed to fn take part in the same transaction.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
