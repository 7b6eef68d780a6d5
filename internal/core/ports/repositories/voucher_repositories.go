package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher with its entries.
	FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a page of vouchers, newest first, and the total matching count.
	ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter, limit int, offset int) ([]domain.Voucher, int, error)

	// FindVouchers retrieves every voucher of the company with its entries, filtered but not paged.
	FindVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) ([]domain.Voucher, error)

	// CountVouchersByLedger counts the vouchers with an entry against ledgerID.
	CountVouchersByLedger(ctx context.Context, ledgerID string) (int, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a new voucher and its entries.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// UpdateVoucher replaces a voucher's fields and entries.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error

	// DeleteVoucher removes a voucher and its entries.
	DeleteVoucher(ctx context.Context, companyID string, voucherID string) error
}

// VoucherSequencer hands out voucher sequence numbers.
type VoucherSequencer interface {
	// NextVoucherSequence returns the next 1-based sequence for the company, type and
	// calendar month of date. The first call for a month starts after the vouchers
	// already numbered in that month.
	NextVoucherSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, date time.Time) (int, error)
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
	VoucherSequencer
}
