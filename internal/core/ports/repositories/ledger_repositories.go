package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger data
type LedgerReader interface {
	// FindLedgerByID retrieves a ledger of the company.
	FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error)

	// FindLedgersByIDs retrieves the ledgers of the company with the given IDs, keyed by ID.
	FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error)

	// ListLedgers retrieves the ledgers of the company, optionally only those in groupID.
	ListLedgers(ctx context.Context, companyID string, groupID *string) ([]domain.Ledger, error)

	// CountLedgersInGroup counts the ledgers directly under groupID.
	CountLedgersInGroup(ctx context.Context, groupID string) (int, error)
}

// LedgerWriter defines write operations for ledger data
type LedgerWriter interface {
	// SaveLedger persists a new ledger.
	SaveLedger(ctx context.Context, ledger domain.Ledger) error

	// UpdateLedger updates a ledger's details. The cached balance is left untouched.
	UpdateLedger(ctx context.Context, ledger domain.Ledger) error

	// UpdateLedgerBalance overwrites the cached current balance.
	UpdateLedgerBalance(ctx context.Context, ledgerID string, balance domain.Balance, now time.Time) error

	// DeleteLedger removes a ledger.
	DeleteLedger(ctx context.Context, companyID string, ledgerID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
