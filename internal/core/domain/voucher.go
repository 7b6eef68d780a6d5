package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the kind of transaction a voucher records.
type VoucherType string

const (
	Payment    VoucherType = "Payment"
	Receipt    VoucherType = "Receipt"
	Contra     VoucherType = "Contra"
	Journal    VoucherType = "Journal"
	Sales      VoucherType = "Sales"
	Purchase   VoucherType = "Purchase"
	CreditNote VoucherType = "CreditNote"
	DebitNote  VoucherType = "DebitNote"
)

// VoucherTypes lists every supported voucher type.
var VoucherTypes = []VoucherType{Payment, Receipt, Contra, Journal, Sales, Purchase, CreditNote, DebitNote}

// IsValid reports whether t is a supported voucher type.
func (t VoucherType) IsValid() bool {
	for _, vt := range VoucherTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// StockDirection returns the direction inventory moves for items on a voucher of this type.
func (t VoucherType) StockDirection() StockDirection {
	if t == Sales || t == DebitNote {
		return StockOut
	}
	return StockIn
}

// VoucherEntry is one debit or credit line of a voucher.
type VoucherEntry struct {
	LedgerID   string          `json:"ledgerID"`
	LedgerName string          `json:"ledgerName,omitempty"`
	Type       BalanceType     `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
}

// VoucherItem is an inventory line of a voucher.
type VoucherItem struct {
	InventoryItemID string          `json:"inventoryItemID"`
	ItemName        string          `json:"itemName,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	Discount        decimal.Decimal `json:"discount"`
}

// GSTDetails summarises the tax charged on a voucher.
type GSTDetails struct {
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	PlaceOfSupply string          `json:"placeOfSupply,omitempty"`
}

// EditRecord is one entry in a voucher's edit history.
type EditRecord struct {
	EditedBy string    `json:"editedBy"`
	EditedAt time.Time `json:"editedAt"`
	Changes  string    `json:"changes"`
}

// Voucher is a balanced set of debit and credit entries.
type Voucher struct {
	VoucherID       string          `json:"voucherID"`
	CompanyID       string          `json:"companyID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherType     VoucherType     `json:"voucherType"`
	Date            time.Time       `json:"date"`
	Entries         []VoucherEntry  `json:"entries"`
	Narration       string          `json:"narration,omitempty"`
	PartyLedgerID   *string         `json:"partyLedgerID,omitempty"`
	PartyLedgerName string          `json:"partyLedgerName,omitempty"`
	GSTDetails      *GSTDetails     `json:"gstDetails,omitempty"`
	Items           []VoucherItem   `json:"items,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	EditHistory     []EditRecord    `json:"editHistory,omitempty"`
	AuditFields
}

// References reports whether any entry of the voucher posts to ledgerID.
func (v Voucher) References(ledgerID string) bool {
	for _, e := range v.Entries {
		if e.LedgerID == ledgerID {
			return true
		}
	}
	return false
}

// LedgerIDs returns the distinct ledgers referenced by the voucher's entries.
func (v Voucher) LedgerIDs() []string {
	seen := make(map[string]bool, len(v.Entries))
	ids := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		if !seen[e.LedgerID] {
			seen[e.LedgerID] = true
			ids = append(ids, e.LedgerID)
		}
	}
	return ids
}

// HasTax reports whether the voucher carries a GST amount that needs a side record.
func (v Voucher) HasTax() bool {
	return v.GSTDetails != nil && v.GSTDetails.TotalTax.GreaterThan(decimal.Zero)
}

// VoucherFilter narrows a voucher listing.
type VoucherFilter struct {
	VoucherType *VoucherType
	Period
	LedgerID *string
}
