package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger represents a row in the ledgers table.
// ContactDetails and BankDetails are raw JSONB and may be nil.
type Ledger struct {
	LedgerID           string          `db:"ledger_id"`
	CompanyID          string          `db:"company_id"`
	GroupID            string          `db:"group_id"`
	Name               string          `db:"name"`
	OpeningBalance     decimal.Decimal `db:"opening_balance"`
	OpeningBalanceType string          `db:"opening_balance_type"`
	OpeningBalanceDate time.Time       `db:"opening_balance_date"`
	CurrentBalance     decimal.Decimal `db:"current_balance"`
	CurrentBalanceType string          `db:"current_balance_type"`
	ContactDetails     []byte          `db:"contact_details"`
	BankDetails        []byte          `db:"bank_details"`
	GSTApplicable      bool            `db:"gst_applicable"`
	AuditFields
}
