package pgsql

import (
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     newPgxTransactionManager(dbPool),
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		GroupRepo:     newPgxGroupRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		VoucherRepo:   newPgxVoucherRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		GSTRepo:       newPgxGSTEntryRepository(dbPool),
	}
}
