package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType is the side of a balance or entry.
type BalanceType string

const (
	Debit  BalanceType = "Dr"
	Credit BalanceType = "Cr"
)

// IsValid reports whether t is Dr or Cr.
func (t BalanceType) IsValid() bool {
	return t == Debit || t == Credit
}

// Balance is an unsigned amount together with the side it sits on.
type Balance struct {
	Amount decimal.Decimal `json:"amount"`
	Type   BalanceType     `json:"type"`
}

// ZeroBalance is the balance assumed when a ledger has no opening balance.
func ZeroBalance() Balance {
	return Balance{Amount: decimal.Zero, Type: Debit}
}

// String formats the balance as "<amount 2dp> <Dr|Cr>".
func (b Balance) String() string {
	return fmt.Sprintf("%s %s", b.Amount.StringFixed(2), b.Type)
}

// Signed returns the balance as a number that is positive on the given side.
func (b Balance) Signed(positive BalanceType) decimal.Decimal {
	if b.Type == positive {
		return b.Amount
	}
	return b.Amount.Neg()
}

// OpeningBalance is the balance a ledger carries into the books.
type OpeningBalance struct {
	Amount decimal.Decimal `json:"amount"`
	Type   BalanceType     `json:"type"`
	Date   time.Time       `json:"date"`
}

// ContactDetails holds party information for debtor and creditor ledgers.
type ContactDetails struct {
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	GSTIN         string `json:"gstin,omitempty"`
	PAN           string `json:"pan,omitempty"`
}

// BankDetails holds account information for bank ledgers.
type BankDetails struct {
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	Branch        string `json:"branch,omitempty"`
}

// Ledger is an account under a group.
// CurrentBalance is a cache; it is rebuilt by replaying every voucher that references the ledger.
type Ledger struct {
	LedgerID       string          `json:"ledgerID"`
	CompanyID      string          `json:"companyID"`
	GroupID        string          `json:"groupID"`
	Name           string          `json:"name"`
	OpeningBalance OpeningBalance  `json:"openingBalance"`
	CurrentBalance Balance         `json:"currentBalance"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
	BankDetails    *BankDetails    `json:"bankDetails,omitempty"`
	GSTApplicable  bool            `json:"gstApplicable"`
	AuditFields
}

// Opening returns the opening balance as a Balance, defaulting a missing side to Dr.
func (l Ledger) Opening() Balance {
	t := l.OpeningBalance.Type
	if !t.IsValid() {
		t = Debit
	}
	return Balance{Amount: l.OpeningBalance.Amount, Type: t}
}
