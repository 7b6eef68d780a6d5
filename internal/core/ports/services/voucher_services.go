package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// VoucherReaderSvc defines read operations for vouchers
type VoucherReaderSvc interface {
	GetVoucher(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

// VoucherWriterSvc defines posting operations for vouchers
type VoucherWriterSvc interface {
	// PostVoucher validates, numbers and persists a voucher with its side records in one transaction.
	PostVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)

	// UpdateVoucher replaces a voucher's data, keeps its number and rebuilds its side records.
	UpdateVoucher(ctx context.Context, companyID string, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher and its side records.
	DeleteVoucher(ctx context.Context, companyID string, voucherID string, userID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
