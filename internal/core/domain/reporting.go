package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of a running-balance ledger statement.
type StatementRow struct {
	Date           time.Time       `json:"date"`
	VoucherID      string          `json:"voucherID"`
	VoucherType    VoucherType     `json:"voucherType"`
	VoucherNumber  string          `json:"voucherNumber"`
	Narration      string          `json:"narration,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        string          `json:"balance"`
	RunningBalance Balance         `json:"runningBalance"`
}

// LedgerStatement is a ledger's transactions in date order with the balance after each.
type LedgerStatement struct {
	LedgerID       string          `json:"ledgerID"`
	LedgerName     string          `json:"ledgerName"`
	OpeningBalance Balance         `json:"openingBalance"`
	Rows           []StatementRow  `json:"rows"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance Balance         `json:"closingBalance"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	LedgerID   string          `json:"ledgerID"`
	LedgerName string          `json:"ledgerName"`
	GroupName  string          `json:"groupName"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
}

// TrialBalance lists every ledger with a balance split into debit and credit columns.
type TrialBalance struct {
	AsOf        *time.Time        `json:"asOf,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Difference  decimal.Decimal   `json:"difference"`
	IsBalanced  bool              `json:"isBalanced"`
}

// LedgerAmount represents a ledger with its amount for financial reports
type LedgerAmount struct {
	LedgerID   string          `json:"ledgerID"`
	LedgerName string          `json:"ledgerName"`
	GroupName  string          `json:"groupName"`
	Amount     decimal.Decimal `json:"amount"`
}

// ProfitAndLoss represents a profit and loss report
type ProfitAndLoss struct {
	From                  *time.Time      `json:"from,omitempty"`
	To                    *time.Time      `json:"to,omitempty"`
	DirectIncome          []LedgerAmount  `json:"directIncome"`
	IndirectIncome        []LedgerAmount  `json:"indirectIncome"`
	DirectExpenses        []LedgerAmount  `json:"directExpenses"`
	IndirectExpenses      []LedgerAmount  `json:"indirectExpenses"`
	TotalDirectIncome     decimal.Decimal `json:"totalDirectIncome"`
	TotalIndirectIncome   decimal.Decimal `json:"totalIndirectIncome"`
	TotalDirectExpenses   decimal.Decimal `json:"totalDirectExpenses"`
	TotalIndirectExpenses decimal.Decimal `json:"totalIndirectExpenses"`
	GrossProfit           decimal.Decimal `json:"grossProfit"`
	NetProfit             decimal.Decimal `json:"netProfit"`
}

// BalanceSheetBucket is the balance sheet section a ledger is reported under.
type BalanceSheetBucket string

const (
	BucketFixedAssets        BalanceSheetBucket = "fixedAssets"
	BucketCurrentAssets      BalanceSheetBucket = "currentAssets"
	BucketInvestments        BalanceSheetBucket = "investments"
	BucketCapital            BalanceSheetBucket = "capital"
	BucketLoans              BalanceSheetBucket = "loans"
	BucketCurrentLiabilities BalanceSheetBucket = "currentLiabilities"
	BucketReserves           BalanceSheetBucket = "reserves"
)

// BalanceSheetLine is a ledger on the balance sheet.
type BalanceSheetLine struct {
	LedgerAmount
	Bucket BalanceSheetBucket `json:"bucket"`
}

// BalanceSheet represents a balance sheet report
type BalanceSheet struct {
	AsOf             *time.Time                             `json:"asOf,omitempty"`
	Assets           []BalanceSheetLine                     `json:"assets"`
	Liabilities      []BalanceSheetLine                     `json:"liabilities"`
	Buckets          map[BalanceSheetBucket]decimal.Decimal `json:"buckets"`
	NetProfit        decimal.Decimal                        `json:"netProfit"`
	TotalAssets      decimal.Decimal                        `json:"totalAssets"`
	TotalLiabilities decimal.Decimal                        `json:"totalLiabilities"`
	Difference       decimal.Decimal                        `json:"difference"`
	IsBalanced       bool                                   `json:"isBalanced"`
}

// BookRow is one line of a cash or bank book.
// Inflow is a receipt (cash) or deposit (bank); Outflow is a payment or withdrawal.
type BookRow struct {
	Date          time.Time       `json:"date"`
	VoucherID     string          `json:"voucherID"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"`
	Particulars   string          `json:"particulars"`
	Narration     string          `json:"narration,omitempty"`
	Inflow        decimal.Decimal `json:"inflow"`
	Outflow       decimal.Decimal `json:"outflow"`
	Balance       string          `json:"balance"`
}

// Book is the cash or bank book of one ledger.
type Book struct {
	LedgerID       string          `json:"ledgerID"`
	LedgerName     string          `json:"ledgerName"`
	OpeningBalance Balance         `json:"openingBalance"`
	Rows           []BookRow       `json:"rows"`
	TotalInflow    decimal.Decimal `json:"totalInflow"`
	TotalOutflow   decimal.Decimal `json:"totalOutflow"`
	ClosingBalance Balance         `json:"closingBalance"`
}

// DayBookLine is one entry of a voucher in the day book.
type DayBookLine struct {
	LedgerID   string          `json:"ledgerID"`
	LedgerName string          `json:"ledgerName"`
	Type       BalanceType     `json:"type"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
}

// DayBookVoucher is a voucher in the day book with its entries as lines.
type DayBookVoucher struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherType   VoucherType     `json:"voucherType"`
	Narration     string          `json:"narration,omitempty"`
	Lines         []DayBookLine   `json:"lines"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
}

// DayBook lists all vouchers posted on one date.
type DayBook struct {
	Date        time.Time        `json:"date"`
	Vouchers    []DayBookVoucher `json:"vouchers"`
	TotalDebit  decimal.Decimal  `json:"totalDebit"`
	TotalCredit decimal.Decimal  `json:"totalCredit"`
}

// OutstandingRow is a party ledger with an amount due.
type OutstandingRow struct {
	LedgerID       string          `json:"ledgerID"`
	LedgerName     string          `json:"ledgerName"`
	GroupName      string          `json:"groupName"`
	Amount         decimal.Decimal `json:"amount"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
}

// Outstanding is the receivables or payables report.
type Outstanding struct {
	Rows  []OutstandingRow `json:"rows"`
	Total decimal.Decimal  `json:"total"`
}

// VoucherSummary is a compact voucher for listings.
type VoucherSummary struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherType     VoucherType     `json:"voucherType"`
	Date            time.Time       `json:"date"`
	PartyLedgerName string          `json:"partyLedgerName,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// Dashboard is the company overview.
type Dashboard struct {
	CashBalance    decimal.Decimal  `json:"cashBalance"`
	BankBalance    decimal.Decimal  `json:"bankBalance"`
	CashAndBank    decimal.Decimal  `json:"cashAndBank"`
	Receivables    decimal.Decimal  `json:"receivables"`
	Payables       decimal.Decimal  `json:"payables"`
	TotalIncome    decimal.Decimal  `json:"totalIncome"`
	TotalExpenses  decimal.Decimal  `json:"totalExpenses"`
	NetProfit      decimal.Decimal  `json:"netProfit"`
	VoucherCount   int              `json:"voucherCount"`
	RecentVouchers []VoucherSummary `json:"recentVouchers"`
}
