package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledgers
type LedgerReaderSvc interface {
	// GetLedger recomputes the current balance by replay and writes it back before returning.
	GetLedger(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error)

	// ListLedgers retrieves the company's ledgers, optionally within one group.
	ListLedgers(ctx context.Context, companyID string, params dto.ListLedgersParams) ([]domain.Ledger, error)

	// GetStatement builds the running-balance statement of a ledger.
	GetStatement(ctx context.Context, companyID string, ledgerID string, params dto.StatementParams) (*domain.LedgerStatement, error)
}

// LedgerWriterSvc defines write operations for ledgers
type LedgerWriterSvc interface {
	CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error)
	UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.Ledger, error)
	// DeleteLedger fails with ErrReferentialIntegrity while any voucher references the ledger.
	DeleteLedger(ctx context.Context, companyID string, ledgerID string) error
}

// LedgerBalanceSvc maintains the cached balances
type LedgerBalanceSvc interface {
	// RefreshBalances recomputes and stores the cached balance of each ledger.
	RefreshBalances(ctx context.Context, companyID string, ledgerIDs []string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerBalanceSvc
}
