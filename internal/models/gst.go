package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTEntry represents a row in the gst_entries table.
type GSTEntry struct {
	GSTEntryID    string          `db:"gst_entry_id"`
	CompanyID     string          `db:"company_id"`
	VoucherID     string          `db:"voucher_id"`
	VoucherNumber string          `db:"voucher_number"`
	EntryDate     time.Time       `db:"entry_date"`
	VoucherType   string          `db:"voucher_type"`
	PartyLedgerID *string         `db:"party_ledger_id"`
	GSTIN         string          `db:"gstin"`
	TaxableAmount decimal.Decimal `db:"taxable_amount"`
	CGST          decimal.Decimal `db:"cgst"`
	SGST          decimal.Decimal `db:"sgst"`
	IGST          decimal.Decimal `db:"igst"`
	TotalTax      decimal.Decimal `db:"total_tax"`
	LineItems     []byte          `db:"line_items"` // JSONB array
	CreatedAt     time.Time       `db:"created_at"`
}
