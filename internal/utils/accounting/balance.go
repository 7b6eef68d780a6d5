package accounting

import (
	"sort"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyEntry moves a balance by one entry.
// An entry on the same side adds to the balance. An entry on the opposite side
// reduces it, and when it crosses zero the remainder sits on the entry's side.
func ApplyEntry(balance domain.Balance, side domain.BalanceType, amount decimal.Decimal) domain.Balance {
	if side == balance.Type {
		return domain.Balance{Amount: balance.Amount.Add(amount), Type: balance.Type}
	}
	remaining := balance.Amount.Sub(amount)
	if remaining.IsNegative() {
		return domain.Balance{Amount: remaining.Abs(), Type: side}
	}
	return domain.Balance{Amount: remaining, Type: balance.Type}
}

// ComputeBalance replays every entry that references the ledger on top of its opening balance.
// Vouchers that do not reference the ledger are ignored.
func ComputeBalance(ledger domain.Ledger, vouchers []domain.Voucher) domain.Balance {
	balance := ledger.Opening()
	for _, v := range vouchers {
		for _, e := range v.Entries {
			if e.LedgerID == ledger.LedgerID {
				balance = ApplyEntry(balance, e.Type, e.Amount)
			}
		}
	}
	return balance
}

// ComputeBalances computes the balance of many ledgers in one pass over the vouchers.
func ComputeBalances(ledgers []domain.Ledger, vouchers []domain.Voucher) map[string]domain.Balance {
	balances := make(map[string]domain.Balance, len(ledgers))
	for _, l := range ledgers {
		balances[l.LedgerID] = l.Opening()
	}
	for _, v := range vouchers {
		for _, e := range v.Entries {
			if b, ok := balances[e.LedgerID]; ok {
				balances[e.LedgerID] = ApplyEntry(b, e.Type, e.Amount)
			}
		}
	}
	return balances
}

// SortVouchers returns a copy of vouchers ordered by date then voucher number.
func SortVouchers(vouchers []domain.Voucher) []domain.Voucher {
	sorted := make([]domain.Voucher, len(vouchers))
	copy(sorted, vouchers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].VoucherNumber < sorted[j].VoucherNumber
	})
	return sorted
}

// RunningStatement builds the statement of a ledger over a period.
// Vouchers dated before period.From fold into the opening balance and
// vouchers after period.To are left out.
func RunningStatement(ledger domain.Ledger, vouchers []domain.Voucher, period domain.Period) domain.LedgerStatement {
	balance := ledger.Opening()
	stmt := domain.LedgerStatement{
		LedgerID:    ledger.LedgerID,
		LedgerName:  ledger.Name,
		Rows:        []domain.StatementRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	sorted := SortVouchers(vouchers)
	i := 0
	for ; i < len(sorted) && period.From != nil && sorted[i].Date.Before(*period.From); i++ {
		for _, e := range sorted[i].Entries {
			if e.LedgerID == ledger.LedgerID {
				balance = ApplyEntry(balance, e.Type, e.Amount)
			}
		}
	}
	stmt.OpeningBalance = balance

	for ; i < len(sorted); i++ {
		v := sorted[i]
		if period.To != nil && v.Date.After(*period.To) {
			break
		}
		for _, e := range v.Entries {
			if e.LedgerID != ledger.LedgerID {
				continue
			}
			balance = ApplyEntry(balance, e.Type, e.Amount)
			row := domain.StatementRow{
				Date:           v.Date,
				VoucherID:      v.VoucherID,
				VoucherType:    v.VoucherType,
				VoucherNumber:  v.VoucherNumber,
				Narration:      v.Narration,
				Debit:          decimal.Zero,
				Credit:         decimal.Zero,
				Balance:        balance.String(),
				RunningBalance: balance,
			}
			if e.Type == domain.Debit {
				row.Debit = e.Amount
				stmt.TotalDebit = stmt.TotalDebit.Add(e.Amount)
			} else {
				row.Credit = e.Amount
				stmt.TotalCredit = stmt.TotalCredit.Add(e.Amount)
			}
			stmt.Rows = append(stmt.Rows, row)
		}
	}

	stmt.ClosingBalance = balance
	return stmt
}
