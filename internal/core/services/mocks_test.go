package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---
// Runs fn directly; Rollbacks counts the calls that returned an error.
type MockTxManager struct {
	Calls     int
	Rollbacks int
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if err := fn(ctx); err != nil {
		m.Rollbacks++
		return err
	}
	return nil
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Mock GroupRepository ---
type MockGroupRepository struct {
	mock.Mock
}

var _ portsrepo.GroupRepositoryFacade = (*MockGroupRepository)(nil)

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context, companyID string) ([]domain.Group, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) CountChildGroups(ctx context.Context, groupID string) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupRepository) SaveGroups(ctx context.Context, groups []domain.Group) error {
	args := m.Called(ctx, groups)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	args := m.Called(ctx, companyID, groupID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgers(ctx context.Context, companyID string, groupID *string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) CountLedgersInGroup(ctx context.Context, groupID string) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateLedgerBalance(ctx context.Context, ledgerID string, balance domain.Balance, now time.Time) error {
	args := m.Called(ctx, ledgerID, balance, now)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	args := m.Called(ctx, companyID, ledgerID)
	return args.Error(0)
}

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter, limit int, offset int) ([]domain.Voucher, int, error) {
	args := m.Called(ctx, companyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Voucher), args.Int(1), args.Error(2)
}

func (m *MockVoucherRepository) FindVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) ([]domain.Voucher, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) CountVouchersByLedger(ctx context.Context, ledgerID string) (int, error) {
	args := m.Called(ctx, ledgerID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	args := m.Called(ctx, companyID, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) NextVoucherSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, date time.Time) (int, error) {
	args := m.Called(ctx, companyID, voucherType, date)
	return args.Int(0), args.Error(1)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, companyID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItemsByIDs(ctx context.Context, companyID string, itemIDs []string) (map[string]domain.InventoryItem, error) {
	args := m.Called(ctx, companyID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItemStock(ctx context.Context, itemID string, stock domain.StockLevel, now time.Time) error {
	args := m.Called(ctx, itemID, stock, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, companyID string, itemID string) error {
	args := m.Called(ctx, companyID, itemID)
	return args.Error(0)
}

func (m *MockInventoryRepository) SaveStockTransactions(ctx context.Context, txns []domain.StockTransaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListStockTransactionsByVoucher(ctx context.Context, voucherID string) ([]domain.StockTransaction, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}

func (m *MockInventoryRepository) ListStockTransactionsByItem(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error) {
	args := m.Called(ctx, companyID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}

func (m *MockInventoryRepository) CountStockTransactionsByItem(ctx context.Context, itemID string) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) DeleteStockTransactionsByVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

// --- Mock GSTEntryRepository ---
type MockGSTRepository struct {
	mock.Mock
}

var _ portsrepo.GSTEntryRepositoryFacade = (*MockGSTRepository)(nil)

func (m *MockGSTRepository) SaveGSTEntry(ctx context.Context, entry domain.GSTEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGSTRepository) DeleteGSTEntryByVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockGSTRepository) ListGSTEntries(ctx context.Context, companyID string, period domain.Period) ([]domain.GSTEntry, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTEntry), args.Error(1)
}

// --- Mock LedgerBalanceSvc ---
type MockBalanceService struct {
	mock.Mock
}

var _ portssvc.LedgerBalanceSvc = (*MockBalanceService)(nil)

func (m *MockBalanceService) RefreshBalances(ctx context.Context, companyID string, ledgerIDs []string) error {
	args := m.Called(ctx, companyID, ledgerIDs)
	return args.Error(0)
}

// --- Mock GroupSeederSvc ---
type MockGroupSeeder struct {
	mock.Mock
}

var _ portssvc.GroupSeederSvc = (*MockGroupSeeder)(nil)

func (m *MockGroupSeeder) SeedDefaultGroups(ctx context.Context, company domain.Company, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, company, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}
