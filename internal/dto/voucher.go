package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// VoucherEntryRequest is one debit or credit line.
type VoucherEntryRequest struct {
	LedgerID string             `json:"ledgerID" binding:"required"`
	Type     domain.BalanceType `json:"type" binding:"required,drcr"`
	Amount   decimal.Decimal    `json:"amount"`
}

// VoucherItemRequest is one inventory line.
type VoucherItemRequest struct {
	InventoryItemID string          `json:"inventoryItemID" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"` // Defaults to quantity * rate - discount
	Discount        decimal.Decimal `json:"discount"`
}

// GSTDetailsRequest is the tax summary of a voucher.
type GSTDetailsRequest struct {
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"totalTax"` // Defaults to cgst + sgst + igst
	PlaceOfSupply string          `json:"placeOfSupply"`
}

// VoucherBody holds the fields shared by create and update.
type VoucherBody struct {
	Date          string                `json:"date" binding:"required,datetime=2006-01-02"`
	Entries       []VoucherEntryRequest `json:"entries" binding:"required,min=2,dive"`
	Narration     string                `json:"narration"`
	PartyLedgerID *string               `json:"partyLedgerID"`
	GSTDetails    *GSTDetailsRequest    `json:"gstDetails"`
	Items         []VoucherItemRequest  `json:"items" binding:"omitempty,dive"`
}

// CreateVoucherRequest defines the data needed to post a voucher.
type CreateVoucherRequest struct {
	VoucherType domain.VoucherType `json:"voucherType" binding:"required,vouchertype"`
	VoucherBody
}

// UpdateVoucherRequest defines the data allowed for updating a voucher.
// The type and number of a voucher never change.
type UpdateVoucherRequest struct {
	VoucherBody
}

// ListVouchersParams defines the query parameters for listing vouchers.
type ListVouchersParams struct {
	VoucherType string `form:"voucherType" binding:"omitempty,vouchertype"`
	StartDate   string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	PageParams
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID       string                `json:"voucherID"`
	CompanyID       string                `json:"companyID"`
	VoucherNumber   string                `json:"voucherNumber"`
	VoucherType     domain.VoucherType    `json:"voucherType"`
	Date            string                `json:"date"`
	Entries         []domain.VoucherEntry `json:"entries"`
	Narration       string                `json:"narration,omitempty"`
	PartyLedgerID   *string               `json:"partyLedgerID,omitempty"`
	PartyLedgerName string                `json:"partyLedgerName,omitempty"`
	GSTDetails      *domain.GSTDetails    `json:"gstDetails,omitempty"`
	Items           []domain.VoucherItem  `json:"items,omitempty"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	EditHistory     []domain.EditRecord   `json:"editHistory,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	LastUpdatedAt   time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy   string                `json:"lastUpdatedBy"`
}

// ListVouchersResponse is a page of vouchers.
type ListVouchersResponse struct {
	Vouchers   []VoucherResponse `json:"vouchers"`
	Pagination pagination.Meta   `json:"pagination"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:       v.VoucherID,
		CompanyID:       v.CompanyID,
		VoucherNumber:   v.VoucherNumber,
		VoucherType:     v.VoucherType,
		Date:            FormatDate(v.Date),
		Entries:         v.Entries,
		Narration:       v.Narration,
		PartyLedgerID:   v.PartyLedgerID,
		PartyLedgerName: v.PartyLedgerName,
		GSTDetails:      v.GSTDetails,
		Items:           v.Items,
		TotalAmount:     v.TotalAmount,
		EditHistory:     v.EditHistory,
		CreatedAt:       v.CreatedAt,
		CreatedBy:       v.CreatedBy,
		LastUpdatedAt:   v.LastUpdatedAt,
		LastUpdatedBy:   v.LastUpdatedBy,
	}
}

// ToListVoucherResponse converts a slice of vouchers.
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		out[i] = ToVoucherResponse(&vouchers[i])
	}
	return out
}
