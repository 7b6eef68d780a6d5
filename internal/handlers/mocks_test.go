package handlers_test

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListCompanies(ctx context.Context, params dto.ListCompaniesParams) ([]domain.Company, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock GroupService ---
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) ListGroups(ctx context.Context, companyID string) ([]domain.Group, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupService) CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	args := m.Called(ctx, companyID, groupID)
	return args.Error(0)
}
func (m *MockGroupService) SeedDefaultGroups(ctx context.Context, company domain.Company, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, company, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

var _ portssvc.GroupSvcFacade = (*MockGroupService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) ListLedgers(ctx context.Context, companyID string, params dto.ListLedgersParams) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) GetStatement(ctx context.Context, companyID string, ledgerID string, params dto.StatementParams) (*domain.LedgerStatement, error) {
	args := m.Called(ctx, companyID, ledgerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStatement), args.Error(1)
}
func (m *MockLedgerService) CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	args := m.Called(ctx, companyID, ledgerID)
	return args.Error(0)
}
func (m *MockLedgerService) RefreshBalances(ctx context.Context, companyID string, ledgerIDs []string) error {
	args := m.Called(ctx, companyID, ledgerIDs)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) GetVoucher(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}
func (m *MockVoucherService) PostVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) UpdateVoucher(ctx context.Context, companyID string, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) DeleteVoucher(ctx context.Context, companyID string, voucherID string, userID string) error {
	args := m.Called(ctx, companyID, voucherID, userID)
	return args.Error(0)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateItem(ctx context.Context, companyID string, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) GetItem(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, companyID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) UpdateItem(ctx context.Context, companyID string, itemID string, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, companyID, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) DeleteItem(ctx context.Context, companyID string, itemID string) error {
	args := m.Called(ctx, companyID, itemID)
	return args.Error(0)
}
func (m *MockInventoryService) ListStockTransactions(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error) {
	args := m.Called(ctx, companyID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}
func (m *MockInventoryService) ListGSTEntries(ctx context.Context, companyID string, params dto.GSTEntriesParams) ([]domain.GSTEntry, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTEntry), args.Error(1)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, companyID string, params dto.ReportParams) (*domain.TrialBalance, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, companyID string, params dto.ReportParams) (*domain.ProfitAndLoss, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLoss), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, companyID string, params dto.ReportParams) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) CashBook(ctx context.Context, companyID string, params dto.ReportParams) ([]domain.Book, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockReportingService) BankBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Book, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockReportingService) DayBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.DayBook, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayBook), args.Error(1)
}
func (m *MockReportingService) Receivables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outstanding), args.Error(1)
}
func (m *MockReportingService) Payables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outstanding), args.Error(1)
}
func (m *MockReportingService) Dashboard(ctx context.Context, companyID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)
