package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTLineItem is the tax breakdown of one voucher item.
type GSTLineItem struct {
	InventoryItemID string          `json:"inventoryItemID"`
	ItemName        string          `json:"itemName,omitempty"`
	HSNCode         string          `json:"hsnCode,omitempty"`
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	GSTRate         decimal.Decimal `json:"gstRate"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
}

// GSTEntry is the tax register record derived from a voucher with GST.
type GSTEntry struct {
	GSTEntryID    string          `json:"gstEntryID"`
	CompanyID     string          `json:"companyID"`
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	Date          time.Time       `json:"date"`
	VoucherType   VoucherType     `json:"voucherType"`
	PartyLedgerID *string         `json:"partyLedgerID,omitempty"`
	GSTIN         string          `json:"gstin,omitempty"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	LineItems     []GSTLineItem   `json:"lineItems,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
