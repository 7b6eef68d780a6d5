package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a row in the vouchers table. Entries live in voucher_entries.
type Voucher struct {
	VoucherID     string          `db:"voucher_id"`
	CompanyID     string          `db:"company_id"`
	VoucherNumber string          `db:"voucher_number"`
	VoucherType   string          `db:"voucher_type"`
	VoucherDate   time.Time       `db:"voucher_date"`
	Narration     string          `db:"narration"`
	PartyLedgerID *string         `db:"party_ledger_id"`
	GSTDetails    []byte          `db:"gst_details"` // JSONB, nil when the voucher has no tax
	Items         []byte          `db:"items"`       // JSONB array
	TotalAmount   decimal.Decimal `db:"total_amount"`
	EditHistory   []byte          `db:"edit_history"` // JSONB array
	AuditFields
}

// VoucherEntry represents a row in the voucher_entries table.
type VoucherEntry struct {
	VoucherID string          `db:"voucher_id"`
	LineNo    int             `db:"line_no"`
	LedgerID  string          `db:"ledger_id"`
	EntryType string          `db:"entry_type"`
	Amount    decimal.Decimal `db:"amount"`
}
