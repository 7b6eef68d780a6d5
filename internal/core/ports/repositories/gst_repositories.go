package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// GSTEntryRepositoryFacade stores the tax register derived from vouchers
type GSTEntryRepositoryFacade interface {
	SaveGSTEntry(ctx context.Context, entry domain.GSTEntry) error
	DeleteGSTEntryByVoucher(ctx context.Context, voucherID string) error
	ListGSTEntries(ctx context.Context, companyID string, period domain.Period) ([]domain.GSTEntry, error)
}
