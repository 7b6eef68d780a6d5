package accounting

import (
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitAndLossLedgerName is the row that carries net profit onto the liabilities side.
const ProfitAndLossLedgerName = "Profit & Loss A/c"

func natureOf(groups domain.GroupTree, l domain.Ledger) domain.GroupNature {
	return groups[l.GroupID].Nature
}

func ledgerAmount(l domain.Ledger, groups domain.GroupTree, amount decimal.Decimal) domain.LedgerAmount {
	return domain.LedgerAmount{
		LedgerID:   l.LedgerID,
		LedgerName: l.Name,
		GroupName:  groups.Name(l.GroupID),
		Amount:     amount,
	}
}

// BuildTrialBalance lists every ledger whose balance is above zero.
func BuildTrialBalance(ledgers []domain.Ledger, groups domain.GroupTree, balances map[string]domain.Balance) domain.TrialBalance {
	tb := domain.TrialBalance{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, l := range ledgers {
		b := balances[l.LedgerID]
		if !b.Amount.IsPositive() {
			continue
		}
		row := domain.TrialBalanceRow{
			LedgerID:   l.LedgerID,
			LedgerName: l.Name,
			GroupName:  groups.Name(l.GroupID),
			Debit:      decimal.Zero,
			Credit:     decimal.Zero,
		}
		if b.Type == domain.Debit {
			row.Debit = b.Amount
			tb.TotalDebit = tb.TotalDebit.Add(b.Amount)
		} else {
			row.Credit = b.Amount
			tb.TotalCredit = tb.TotalCredit.Add(b.Amount)
		}
		tb.Rows = append(tb.Rows, row)
	}
	tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit)
	tb.IsBalanced = WithinTolerance(tb.TotalDebit, tb.TotalCredit)
	return tb
}

// BuildProfitAndLoss splits income and expense ledgers into direct and indirect
// by their group's affectsGrossProfit flag.
func BuildProfitAndLoss(ledgers []domain.Ledger, groups domain.GroupTree, balances map[string]domain.Balance) domain.ProfitAndLoss {
	pl := domain.ProfitAndLoss{
		DirectIncome:          []domain.LedgerAmount{},
		IndirectIncome:        []domain.LedgerAmount{},
		DirectExpenses:        []domain.LedgerAmount{},
		IndirectExpenses:      []domain.LedgerAmount{},
		TotalDirectIncome:     decimal.Zero,
		TotalIndirectIncome:   decimal.Zero,
		TotalDirectExpenses:   decimal.Zero,
		TotalIndirectExpenses: decimal.Zero,
	}
	for _, l := range ledgers {
		g := groups[l.GroupID]
		b := balances[l.LedgerID]
		switch g.Nature {
		case domain.NatureIncome:
			amt := b.Signed(domain.Credit)
			if amt.IsZero() {
				continue
			}
			if g.AffectsGrossProfit {
				pl.DirectIncome = append(pl.DirectIncome, ledgerAmount(l, groups, amt))
				pl.TotalDirectIncome = pl.TotalDirectIncome.Add(amt)
			} else {
				pl.IndirectIncome = append(pl.IndirectIncome, ledgerAmount(l, groups, amt))
				pl.TotalIndirectIncome = pl.TotalIndirectIncome.Add(amt)
			}
		case domain.NatureExpenses:
			amt := b.Signed(domain.Debit)
			if amt.IsZero() {
				continue
			}
			if g.AffectsGrossProfit {
				pl.DirectExpenses = append(pl.DirectExpenses, ledgerAmount(l, groups, amt))
				pl.TotalDirectExpenses = pl.TotalDirectExpenses.Add(amt)
			} else {
				pl.IndirectExpenses = append(pl.IndirectExpenses, ledgerAmount(l, groups, amt))
				pl.TotalIndirectExpenses = pl.TotalIndirectExpenses.Add(amt)
			}
		}
	}
	pl.GrossProfit = pl.TotalDirectIncome.Sub(pl.TotalDirectExpenses)
	pl.NetProfit = pl.GrossProfit.Add(pl.TotalIndirectIncome).Sub(pl.TotalIndirectExpenses)
	return pl
}

// BuildBalanceSheet places asset ledgers (Dr positive) and liability ledgers (Cr positive)
// into their buckets and carries net profit to the liabilities side.
func BuildBalanceSheet(ledgers []domain.Ledger, groups domain.GroupTree, balances map[string]domain.Balance) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		Assets:           []domain.BalanceSheetLine{},
		Liabilities:      []domain.BalanceSheetLine{},
		Buckets:          make(map[domain.BalanceSheetBucket]decimal.Decimal),
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}
	for _, bucket := range []domain.BalanceSheetBucket{
		domain.BucketFixedAssets, domain.BucketCurrentAssets, domain.BucketInvestments,
		domain.BucketCapital, domain.BucketLoans, domain.BucketCurrentLiabilities, domain.BucketReserves,
	} {
		bs.Buckets[bucket] = decimal.Zero
	}

	for _, l := range ledgers {
		nature := natureOf(groups, l)
		bucket, ok := ClassifyLedgerGroup(groups, l.GroupID)
		if !ok {
			continue
		}
		b := balances[l.LedgerID]
		if b.Amount.IsZero() {
			continue
		}
		if nature == domain.NatureAssets {
			line := domain.BalanceSheetLine{LedgerAmount: ledgerAmount(l, groups, b.Signed(domain.Debit)), Bucket: bucket}
			bs.Assets = append(bs.Assets, line)
			bs.TotalAssets = bs.TotalAssets.Add(line.Amount)
			bs.Buckets[bucket] = bs.Buckets[bucket].Add(line.Amount)
		} else {
			line := domain.BalanceSheetLine{LedgerAmount: ledgerAmount(l, groups, b.Signed(domain.Credit)), Bucket: bucket}
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
			bs.Buckets[bucket] = bs.Buckets[bucket].Add(line.Amount)
		}
	}

	bs.NetProfit = BuildProfitAndLoss(ledgers, groups, balances).NetProfit
	if !bs.NetProfit.IsZero() {
		bs.Liabilities = append(bs.Liabilities, domain.BalanceSheetLine{
			LedgerAmount: domain.LedgerAmount{LedgerName: ProfitAndLossLedgerName, Amount: bs.NetProfit},
			Bucket:       domain.BucketReserves,
		})
		bs.TotalLiabilities = bs.TotalLiabilities.Add(bs.NetProfit)
		bs.Buckets[domain.BucketReserves] = bs.Buckets[domain.BucketReserves].Add(bs.NetProfit)
	}

	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilities)
	bs.IsBalanced = WithinTolerance(bs.TotalAssets, bs.TotalLiabilities)
	return bs
}

// BuildOutstanding lists ledgers under groupName whose balance sits on side and exceeds Tolerance.
func BuildOutstanding(ledgers []domain.Ledger, groups domain.GroupTree, balances map[string]domain.Balance, groupName string, side domain.BalanceType) domain.Outstanding {
	out := domain.Outstanding{Rows: []domain.OutstandingRow{}, Total: decimal.Zero}
	for _, l := range ledgers {
		if !groups.IsUnder(l.GroupID, groupName) {
			continue
		}
		b := balances[l.LedgerID]
		if b.Type != side || !b.Amount.GreaterThan(Tolerance) {
			continue
		}
		out.Rows = append(out.Rows, domain.OutstandingRow{
			LedgerID:       l.LedgerID,
			LedgerName:     l.Name,
			GroupName:      groups.Name(l.GroupID),
			Amount:         b.Amount,
			ContactDetails: l.ContactDetails,
		})
		out.Total = out.Total.Add(b.Amount)
	}
	return out
}

// BuildBook is the running statement of a cash or bank ledger with the other
// ledgers of each voucher shown as particulars. Debits are inflows.
func BuildBook(ledger domain.Ledger, vouchers []domain.Voucher, period domain.Period, ledgerNames map[string]string) domain.Book {
	stmt := RunningStatement(ledger, vouchers, period)

	byID := make(map[string]domain.Voucher, len(vouchers))
	for _, v := range vouchers {
		byID[v.VoucherID] = v
	}

	book := domain.Book{
		LedgerID:       ledger.LedgerID,
		LedgerName:     ledger.Name,
		OpeningBalance: stmt.OpeningBalance,
		Rows:           make([]domain.BookRow, 0, len(stmt.Rows)),
		TotalInflow:    stmt.TotalDebit,
		TotalOutflow:   stmt.TotalCredit,
		ClosingBalance: stmt.ClosingBalance,
	}
	for _, r := range stmt.Rows {
		book.Rows = append(book.Rows, domain.BookRow{
			Date:          r.Date,
			VoucherID:     r.VoucherID,
			VoucherType:   r.VoucherType,
			VoucherNumber: r.VoucherNumber,
			Particulars:   particulars(byID[r.VoucherID], ledger.LedgerID, ledgerNames),
			Narration:     r.Narration,
			Inflow:        r.Debit,
			Outflow:       r.Credit,
			Balance:       r.Balance,
		})
	}
	return book
}

func particulars(v domain.Voucher, self string, ledgerNames map[string]string) string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range v.Entries {
		if e.LedgerID == self || seen[e.LedgerID] {
			continue
		}
		seen[e.LedgerID] = true
		name := ledgerNames[e.LedgerID]
		if name == "" {
			name = e.LedgerName
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// BuildDayBook lists the vouchers dated on day with their entries as Dr/Cr lines.
func BuildDayBook(day time.Time, vouchers []domain.Voucher, ledgerNames map[string]string) domain.DayBook {
	db := domain.DayBook{
		Date:        day,
		Vouchers:    []domain.DayBookVoucher{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	y, m, d := day.Date()
	for _, v := range SortVouchers(vouchers) {
		vy, vm, vd := v.Date.Date()
		if vy != y || vm != m || vd != d {
			continue
		}
		dv := domain.DayBookVoucher{
			VoucherID:     v.VoucherID,
			VoucherNumber: v.VoucherNumber,
			VoucherType:   v.VoucherType,
			Narration:     v.Narration,
			Lines:         make([]domain.DayBookLine, 0, len(v.Entries)),
			TotalDebit:    decimal.Zero,
			TotalCredit:   decimal.Zero,
		}
		for _, e := range v.Entries {
			line := domain.DayBookLine{
				LedgerID:   e.LedgerID,
				LedgerName: ledgerNames[e.LedgerID],
				Type:       e.Type,
				Debit:      decimal.Zero,
				Credit:     decimal.Zero,
			}
			if e.Type == domain.Debit {
				line.Debit = e.Amount
				dv.TotalDebit = dv.TotalDebit.Add(e.Amount)
			} else {
				line.Credit = e.Amount
				dv.TotalCredit = dv.TotalCredit.Add(e.Amount)
			}
			dv.Lines = append(dv.Lines, line)
		}
		db.TotalDebit = db.TotalDebit.Add(dv.TotalDebit)
		db.TotalCredit = db.TotalCredit.Add(dv.TotalCredit)
		db.Vouchers = append(db.Vouchers, dv)
	}
	return db
}
