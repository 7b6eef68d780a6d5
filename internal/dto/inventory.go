package dto

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines the data needed to create a stock item.
type CreateInventoryItemRequest struct {
	Name         string             `json:"name" binding:"required"`
	SKU          string             `json:"sku"`
	Unit         string             `json:"unit" binding:"required"`
	HSNCode      string             `json:"hsnCode" binding:"omitempty,numeric,min=4,max=8"`
	GSTRate      decimal.Decimal    `json:"gstRate"`
	OpeningStock *domain.StockLevel `json:"openingStock"`
}

// UpdateInventoryItemRequest defines the data allowed for updating a stock item.
// Stock on hand only moves through vouchers.
type UpdateInventoryItemRequest struct {
	Name    *string          `json:"name" binding:"omitempty,min=1"`
	SKU     *string          `json:"sku"`
	Unit    *string          `json:"unit" binding:"omitempty,min=1"`
	HSNCode *string          `json:"hsnCode" binding:"omitempty,numeric,min=4,max=8"`
	GSTRate *decimal.Decimal `json:"gstRate"`
}

// GSTEntriesParams defines the query parameters for the tax register.
type GSTEntriesParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// InventoryItemResponse defines the data returned for a stock item.
type InventoryItemResponse struct {
	ItemID       string            `json:"itemID"`
	CompanyID    string            `json:"companyID"`
	Name         string            `json:"name"`
	SKU          string            `json:"sku,omitempty"`
	Unit         string            `json:"unit"`
	HSNCode      string            `json:"hsnCode,omitempty"`
	GSTRate      decimal.Decimal   `json:"gstRate"`
	CurrentStock domain.StockLevel `json:"currentStock"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to InventoryItemResponse DTO
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:       i.ItemID,
		CompanyID:    i.CompanyID,
		Name:         i.Name,
		SKU:          i.SKU,
		Unit:         i.Unit,
		HSNCode:      i.HSNCode,
		GSTRate:      i.GSTRate,
		CurrentStock: i.CurrentStock,
	}
}

// ToListInventoryItemResponse converts a slice of stock items.
func ToListInventoryItemResponse(items []domain.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i := range items {
		out[i] = ToInventoryItemResponse(&items[i])
	}
	return out
}
