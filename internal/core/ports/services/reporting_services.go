package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// ReportingSvcFacade defines operations for generating financial reports
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, companyID string, params dto.ReportParams) (*domain.TrialBalance, error)
	ProfitAndLoss(ctx context.Context, companyID string, params dto.ReportParams) (*domain.ProfitAndLoss, error)
	BalanceSheet(ctx context.Context, companyID string, params dto.ReportParams) (*domain.BalanceSheet, error)

	// CashBook returns one book per Cash-in-Hand ledger, or only the requested ledger.
	CashBook(ctx context.Context, companyID string, params dto.ReportParams) ([]domain.Book, error)
	BankBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Book, error)
	DayBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.DayBook, error)

	Receivables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error)
	Payables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error)
	Dashboard(ctx context.Context, companyID string) (*domain.Dashboard, error)
}
