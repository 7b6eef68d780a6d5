package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// RecentVoucherCount is the number of vouchers shown on the dashboard.
const RecentVoucherCount = 5

type reportingService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerReader
	groupRepo   portsrepo.GroupReader
	voucherRepo portsrepo.VoucherReader
}

// NewReportingService creates a new reporting service
func NewReportingService(ledgerRepo portsrepo.LedgerReader, groupRepo portsrepo.GroupReader, voucherRepo portsrepo.VoucherReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo:  ledgerRepo,
		groupRepo:   groupRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// books is everything a report is derived from.
type books struct {
	ledgers  []domain.Ledger
	groups   domain.GroupTree
	vouchers []domain.Voucher
	names    map[string]string
}

func (b books) balances() map[string]domain.Balance {
	return accounting.ComputeBalances(b.ledgers, b.vouchers)
}

func (s *reportingService) load(ctx context.Context, companyID string, period domain.Period) (*books, error) {
	ledgers, err := s.ledgerRepo.ListLedgers(ctx, companyID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledgers for report", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load ledgers: %w", err)
	}
	groups, err := s.groupRepo.ListGroups(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load groups for report", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	vouchers, err := s.voucherRepo.FindVouchers(ctx, companyID, domain.VoucherFilter{Period: period})
	if err != nil {
		s.LogError(ctx, err, "Failed to load vouchers for report", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load vouchers: %w", err)
	}

	names := make(map[string]string, len(ledgers))
	for _, l := range ledgers {
		names[l.LedgerID] = l.Name
	}
	return &books{
		ledgers:  ledgers,
		groups:   domain.NewGroupTree(groups),
		vouchers: vouchers,
		names:    names,
	}, nil
}

func asOfPeriod(asOf string) (domain.Period, error) {
	to, err := dto.ParseOptionalDate("asOf", asOf)
	if err != nil {
		return domain.Period{}, err
	}
	return domain.Period{To: to}, nil
}

func (s *reportingService) TrialBalance(ctx context.Context, companyID string, params dto.ReportParams) (*domain.TrialBalance, error) {
	period, err := asOfPeriod(params.AsOf)
	if err != nil {
		return nil, err
	}
	b, err := s.load(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	tb := accounting.BuildTrialBalance(b.ledgers, b.groups, b.balances())
	tb.AsOf = period.To
	if !tb.IsBalanced {
		s.LogInfo(ctx, "Trial balance does not agree",
			slog.String("company_id", companyID),
			slog.String("difference", tb.Difference.StringFixed(2)))
	}
	return &tb, nil
}

// ProfitAndLoss covers the vouchers dated in the period. When the period has a start
// date the opening balances are left out since they belong to earlier periods.
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, params dto.ReportParams) (*domain.ProfitAndLoss, error) {
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	b, err := s.load(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	ledgers := b.ledgers
	if period.From != nil {
		ledgers = withoutOpenings(b.ledgers)
	}
	pl := accounting.BuildProfitAndLoss(ledgers, b.groups, accounting.ComputeBalances(ledgers, b.vouchers))
	pl.From, pl.To = period.From, period.To
	return &pl, nil
}

func withoutOpenings(ledgers []domain.Ledger) []domain.Ledger {
	out := make([]domain.Ledger, len(ledgers))
	for i, l := range ledgers {
		l.OpeningBalance.Amount = decimal.Zero
		out[i] = l
	}
	return out
}

func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, params dto.ReportParams) (*domain.BalanceSheet, error) {
	period, err := asOfPeriod(params.AsOf)
	if err != nil {
		return nil, err
	}
	b, err := s.load(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	bs := accounting.BuildBalanceSheet(b.ledgers, b.groups, b.balances())
	bs.AsOf = period.To
	return &bs, nil
}

// bookData loads everything dated up to the end of period. Earlier vouchers feed
// the opening balance of the book.
func (s *reportingService) bookData(ctx context.Context, companyID string, params dto.ReportParams) (*books, domain.Period, error) {
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, domain.Period{}, err
	}
	b, err := s.load(ctx, companyID, domain.Period{To: period.To})
	if err != nil {
		return nil, domain.Period{}, err
	}
	return b, period, nil
}

func (b books) ledger(ledgerID string) (domain.Ledger, bool) {
	for _, l := range b.ledgers {
		if l.LedgerID == ledgerID {
			return l, true
		}
	}
	return domain.Ledger{}, false
}

func (s *reportingService) CashBook(ctx context.Context, companyID string, params dto.ReportParams) ([]domain.Book, error) {
	b, period, err := s.bookData(ctx, companyID, params)
	if err != nil {
		return nil, err
	}

	if params.LedgerID != "" {
		l, ok := b.ledger(params.LedgerID)
		if !ok {
			return nil, apperrors.NewNotFoundError("ledger " + params.LedgerID)
		}
		return []domain.Book{accounting.BuildBook(l, b.vouchers, period, b.names)}, nil
	}

	out := []domain.Book{}
	for _, l := range b.ledgers {
		if b.groups.IsUnder(l.GroupID, domain.GroupCashInHand) {
			out = append(out, accounting.BuildBook(l, b.vouchers, period, b.names))
		}
	}
	return out, nil
}

func (s *reportingService) BankBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Book, error) {
	if params.LedgerID == "" {
		return nil, fmt.Errorf("%w: ledgerId is required for the bank book", apperrors.ErrValidation)
	}
	b, period, err := s.bookData(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	l, ok := b.ledger(params.LedgerID)
	if !ok {
		return nil, apperrors.NewNotFoundError("ledger " + params.LedgerID)
	}
	if !b.groups.IsUnder(l.GroupID, domain.GroupBankAccounts) {
		return nil, fmt.Errorf("%w: ledger %s is not a bank account", apperrors.ErrValidation, l.Name)
	}
	book := accounting.BuildBook(l, b.vouchers, period, b.names)
	return &book, nil
}

// DayBook lists the vouchers of params.Date, or of today when no date is given.
func (s *reportingService) DayBook(ctx context.Context, companyID string, params dto.ReportParams) (*domain.DayBook, error) {
	day, err := dto.ParseOptionalDate("date", params.Date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		day = &today
	}
	b, err := s.load(ctx, companyID, domain.Period{From: day, To: day})
	if err != nil {
		return nil, err
	}
	db := accounting.BuildDayBook(*day, b.vouchers, b.names)
	return &db, nil
}

func (s *reportingService) outstanding(ctx context.Context, companyID string, params dto.ReportParams, groupName string, side domain.BalanceType) (*domain.Outstanding, error) {
	period, err := asOfPeriod(params.AsOf)
	if err != nil {
		return nil, err
	}
	b, err := s.load(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	out := accounting.BuildOutstanding(b.ledgers, b.groups, b.balances(), groupName, side)
	return &out, nil
}

func (s *reportingService) Receivables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error) {
	return s.outstanding(ctx, companyID, params, domain.GroupSundryDebtors, domain.Debit)
}

func (s *reportingService) Payables(ctx context.Context, companyID string, params dto.ReportParams) (*domain.Outstanding, error) {
	return s.outstanding(ctx, companyID, params, domain.GroupSundryCreditors, domain.Credit)
}

func (s *reportingService) Dashboard(ctx context.Context, companyID string) (*domain.Dashboard, error) {
	b, err := s.load(ctx, companyID, domain.Period{})
	if err != nil {
		return nil, err
	}
	balances := b.balances()

	d := domain.Dashboard{
		CashBalance:    decimal.Zero,
		BankBalance:    decimal.Zero,
		VoucherCount:   len(b.vouchers),
		RecentVouchers: []domain.VoucherSummary{},
	}
	for _, l := range b.ledgers {
		switch {
		case b.groups.IsUnder(l.GroupID, domain.GroupCashInHand):
			d.CashBalance = d.CashBalance.Add(balances[l.LedgerID].Signed(domain.Debit))
		case b.groups.IsUnder(l.GroupID, domain.GroupBankAccounts):
			d.BankBalance = d.BankBalance.Add(balances[l.LedgerID].Signed(domain.Debit))
		}
	}
	d.CashAndBank = d.CashBalance.Add(d.BankBalance)
	d.Receivables = accounting.BuildOutstanding(b.ledgers, b.groups, balances, domain.GroupSundryDebtors, domain.Debit).Total
	d.Payables = accounting.BuildOutstanding(b.ledgers, b.groups, balances, domain.GroupSundryCreditors, domain.Credit).Total

	pl := accounting.BuildProfitAndLoss(b.ledgers, b.groups, balances)
	d.TotalIncome = pl.TotalDirectIncome.Add(pl.TotalIndirectIncome)
	d.TotalExpenses = pl.TotalDirectExpenses.Add(pl.TotalIndirectExpenses)
	d.NetProfit = pl.NetProfit

	sorted := accounting.SortVouchers(b.vouchers)
	for i := len(sorted) - 1; i >= 0 && len(d.RecentVouchers) < RecentVoucherCount; i-- {
		v := sorted[i]
		d.RecentVouchers = append(d.RecentVouchers, domain.VoucherSummary{
			VoucherID:       v.VoucherID,
			VoucherNumber:   v.VoucherNumber,
			VoucherType:     v.VoucherType,
			Date:            v.Date,
			PartyLedgerName: v.PartyLedgerName,
			TotalAmount:     v.TotalAmount,
		})
	}
	return &d, nil
}
