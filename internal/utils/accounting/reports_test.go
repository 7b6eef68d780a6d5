package accounting

import (
	"testing"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	groups   domain.GroupTree
	ledgers  []domain.Ledger
	vouchers []domain.Voucher
}

func strPtr(s string) *string { return &s }

func newFixture() fixture {
	groups := []domain.Group{
		{GroupID: "ca", Name: domain.GroupCurrentAssets, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "cash", Name: domain.GroupCashInHand, ParentGroupID: strPtr("ca"), Nature: domain.NatureAssets},
		{GroupID: "debtors", Name: domain.GroupSundryDebtors, ParentGroupID: strPtr("ca"), Nature: domain.NatureAssets},
		{GroupID: "fa", Name: domain.GroupFixedAssets, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "cap", Name: domain.GroupCapitalAccount, Nature: domain.NatureLiabilities, IsPrimary: true},
		{GroupID: "cl", Name: domain.GroupCurrentLiabilities, Nature: domain.NatureLiabilities, IsPrimary: true},
		{GroupID: "tax", Name: domain.GroupDutiesAndTaxes, ParentGroupID: strPtr("cl"), Nature: domain.NatureLiabilities},
		{GroupID: "creditors", Name: domain.GroupSundryCreditors, ParentGroupID: strPtr("cl"), Nature: domain.NatureLiabilities},
		{GroupID: "sales", Name: domain.GroupSalesAccounts, Nature: domain.NatureIncome, IsPrimary: true, AffectsGrossProfit: true},
		{GroupID: "purchase", Name: domain.GroupPurchaseAccounts, Nature: domain.NatureExpenses, IsPrimary: true, AffectsGrossProfit: true},
		{GroupID: "indexp", Name: domain.GroupIndirectExpenses, Nature: domain.NatureExpenses, IsPrimary: true},
		{GroupID: "indinc", Name: domain.GroupIndirectIncomes, Nature: domain.NatureIncome, IsPrimary: true},
	}
	ledgers := []domain.Ledger{
		{LedgerID: "cash", Name: "Cash", GroupID: "cash", OpeningBalance: domain.OpeningBalance{Amount: dec("100000"), Type: domain.Debit}},
		{LedgerID: "capital", Name: "Capital", GroupID: "cap", OpeningBalance: domain.OpeningBalance{Amount: dec("100000"), Type: domain.Credit}},
		{LedgerID: "acme", Name: "Acme Traders", GroupID: "debtors"},
		{LedgerID: "overpaid", Name: "Overpaid Customer", GroupID: "debtors"},
		{LedgerID: "supplier", Name: "Supplier", GroupID: "creditors"},
		{LedgerID: "sales", Name: "Sales", GroupID: "sales", OpeningBalance: domain.OpeningBalance{Type: domain.Credit}},
		{LedgerID: "purchase", Name: "Purchases", GroupID: "purchase"},
		{LedgerID: "cgst", Name: "CGST", GroupID: "tax", OpeningBalance: domain.OpeningBalance{Type: domain.Credit}},
		{LedgerID: "sgst", Name: "SGST", GroupID: "tax", OpeningBalance: domain.OpeningBalance{Type: domain.Credit}},
		{LedgerID: "rent", Name: "Rent", GroupID: "indexp"},
		{LedgerID: "interest", Name: "Interest Received", GroupID: "indinc"},
		{LedgerID: "furniture", Name: "Furniture", GroupID: "fa"},
	}
	vouchers := []domain.Voucher{
		voucher("v1", "SAL-202404-0001", "2024-04-15", dr("acme", "59000"), cr("sales", "50000"), cr("cgst", "4500"), cr("sgst", "4500")),
		voucher("v2", "PUR-202404-0001", "2024-04-16", dr("purchase", "20000"), cr("supplier", "20000")),
		voucher("v3", "PAY-202404-0001", "2024-04-16", dr("rent", "5000"), cr("cash", "5000")),
		voucher("v4", "REC-202404-0001", "2024-04-17", dr("cash", "500"), cr("overpaid", "500")),
		voucher("v5", "REC-202404-0002", "2024-04-18", dr("cash", "250"), cr("interest", "250")),
		voucher("v6", "PAY-202404-0002", "2024-04-18", dr("furniture", "12000"), cr("cash", "12000")),
	}
	return fixture{groups: domain.NewGroupTree(groups), ledgers: ledgers, vouchers: vouchers}
}

func (f fixture) balances() map[string]domain.Balance {
	return ComputeBalances(f.ledgers, f.vouchers)
}

func TestBuildTrialBalance_Identity(t *testing.T) {
	f := newFixture()

	tb := BuildTrialBalance(f.ledgers, f.groups, f.balances())

	assert.True(t, tb.IsBalanced)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit), "debit %s credit %s", tb.TotalDebit, tb.TotalCredit)
	assert.True(t, tb.Difference.IsZero())
	for _, r := range tb.Rows {
		assert.True(t, r.Debit.IsZero() || r.Credit.IsZero(), "row %s has both columns", r.LedgerName)
	}
}

func TestBuildTrialBalance_FlagsImbalance(t *testing.T) {
	f := newFixture()
	f.ledgers[0].OpeningBalance.Amount = dec("100001")

	tb := BuildTrialBalance(f.ledgers, f.groups, f.balances())

	assert.False(t, tb.IsBalanced)
	assert.True(t, dec("1").Equal(tb.Difference))
}

func TestBuildProfitAndLoss(t *testing.T) {
	f := newFixture()

	pl := BuildProfitAndLoss(f.ledgers, f.groups, f.balances())

	assert.True(t, dec("50000").Equal(pl.TotalDirectIncome))
	assert.True(t, dec("20000").Equal(pl.TotalDirectExpenses))
	assert.True(t, dec("250").Equal(pl.TotalIndirectIncome))
	assert.True(t, dec("5000").Equal(pl.TotalIndirectExpenses))
	assert.True(t, dec("30000").Equal(pl.GrossProfit))
	assert.True(t, dec("25250").Equal(pl.NetProfit))
	require.Len(t, pl.DirectIncome, 1)
	assert.Equal(t, "Sales", pl.DirectIncome[0].LedgerName)
}

func TestBuildBalanceSheet_Identity(t *testing.T) {
	f := newFixture()

	bs := BuildBalanceSheet(f.ledgers, f.groups, f.balances())

	assert.True(t, bs.IsBalanced, "assets %s liabilities %s", bs.TotalAssets, bs.TotalLiabilities)
	assert.True(t, dec("25250").Equal(bs.NetProfit))
	assert.True(t, dec("12000").Equal(bs.Buckets[domain.BucketFixedAssets]))
	assert.True(t, dec("100000").Equal(bs.Buckets[domain.BucketCapital]))
	assert.True(t, dec("9000").Equal(bs.Buckets[domain.BucketLoans]))
	assert.True(t, dec("25250").Equal(bs.Buckets[domain.BucketReserves]))

	last := bs.Liabilities[len(bs.Liabilities)-1]
	assert.Equal(t, ProfitAndLossLedgerName, last.LedgerName)

	// an overpaid debtor shows as a negative asset rather than moving sides
	var overpaid *domain.BalanceSheetLine
	for i := range bs.Assets {
		if bs.Assets[i].LedgerID == "overpaid" {
			overpaid = &bs.Assets[i]
		}
	}
	require.NotNil(t, overpaid)
	assert.True(t, dec("-500").Equal(overpaid.Amount))
}

func TestBuildBalanceSheet_SubGroupLedgersUseParentBucket(t *testing.T) {
	groups := domain.NewGroupTree([]domain.Group{
		{GroupID: "fa", Name: domain.GroupFixedAssets, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "computers", Name: "Computers", ParentGroupID: strPtr("fa"), Nature: domain.NatureAssets},
		{GroupID: "inv", Name: domain.GroupInvestments, Nature: domain.NatureAssets, IsPrimary: true},
		{GroupID: "mf", Name: "Mutual Funds", ParentGroupID: strPtr("inv"), Nature: domain.NatureAssets},
		{GroupID: "cap", Name: domain.GroupCapitalAccount, Nature: domain.NatureLiabilities, IsPrimary: true},
	})
	ledgers := []domain.Ledger{
		{LedgerID: "laptop", Name: "Laptops", GroupID: "computers"},
		{LedgerID: "fund", Name: "Index Fund", GroupID: "mf"},
		{LedgerID: "capital", Name: "Capital", GroupID: "cap"},
	}
	balances := map[string]domain.Balance{
		"laptop":  {Amount: dec("1000"), Type: domain.Debit},
		"fund":    {Amount: dec("500"), Type: domain.Debit},
		"capital": {Amount: dec("1500"), Type: domain.Credit},
	}

	bs := BuildBalanceSheet(ledgers, groups, balances)

	assert.True(t, dec("1000").Equal(bs.Buckets[domain.BucketFixedAssets]))
	assert.True(t, dec("500").Equal(bs.Buckets[domain.BucketInvestments]))
	assert.True(t, bs.Buckets[domain.BucketCurrentAssets].IsZero())
	assert.True(t, bs.IsBalanced)
}

func TestBuildOutstanding_ReceivablesSkipCreditBalances(t *testing.T) {
	f := newFixture()
	balances := f.balances()
	assertBalance(t, "500", domain.Credit, balances["overpaid"])

	rec := BuildOutstanding(f.ledgers, f.groups, balances, domain.GroupSundryDebtors, domain.Debit)

	require.Len(t, rec.Rows, 1)
	assert.Equal(t, "acme", rec.Rows[0].LedgerID)
	assert.True(t, dec("59000").Equal(rec.Total))

	pay := BuildOutstanding(f.ledgers, f.groups, balances, domain.GroupSundryCreditors, domain.Credit)
	require.Len(t, pay.Rows, 1)
	assert.True(t, dec("20000").Equal(pay.Total))
}

func TestBuildOutstanding_IgnoresDust(t *testing.T) {
	f := newFixture()
	f.vouchers = []domain.Voucher{voucher("v", "JOU-202404-0001", "2024-04-01", dr("acme", "0.01"), cr("sales", "0.01"))}

	rec := BuildOutstanding(f.ledgers, f.groups, f.balances(), domain.GroupSundryDebtors, domain.Debit)

	assert.Empty(t, rec.Rows)
}

func TestBuildBook(t *testing.T) {
	f := newFixture()
	names := make(map[string]string)
	for _, l := range f.ledgers {
		names[l.LedgerID] = l.Name
	}

	book := BuildBook(f.ledgers[0], f.vouchers, domain.Period{}, names)

	require.Len(t, book.Rows, 4)
	assert.Equal(t, "Rent", book.Rows[0].Particulars)
	assert.True(t, dec("5000").Equal(book.Rows[0].Outflow))
	assert.Equal(t, "95000.00 Dr", book.Rows[0].Balance)
	assert.True(t, dec("750").Equal(book.TotalInflow))
	assert.True(t, dec("17000").Equal(book.TotalOutflow))
	assertBalance(t, "83750", domain.Debit, book.ClosingBalance)
}

func TestBuildDayBook(t *testing.T) {
	f := newFixture()
	names := map[string]string{"acme": "Acme Traders"}

	db := BuildDayBook(day("2024-04-16"), f.vouchers, names)

	require.Len(t, db.Vouchers, 2)
	assert.Equal(t, "PAY-202404-0001", db.Vouchers[0].VoucherNumber)
	assert.Equal(t, "PUR-202404-0001", db.Vouchers[1].VoucherNumber)
	assert.True(t, dec("25000").Equal(db.TotalDebit))
	assert.True(t, db.TotalDebit.Equal(db.TotalCredit))

	empty := BuildDayBook(day("2024-01-01"), f.vouchers, names)
	assert.Empty(t, empty.Vouchers)
}
