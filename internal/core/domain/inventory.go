package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDirection is the direction of a stock movement.
type StockDirection string

const (
	StockIn  StockDirection = "In"
	StockOut StockDirection = "Out"
)

// StockLevel is the quantity and value on hand.
type StockLevel struct {
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// Apply returns the level after moving quantity and value in the given direction.
func (s StockLevel) Apply(dir StockDirection, quantity, value decimal.Decimal) StockLevel {
	if dir == StockOut {
		return StockLevel{Quantity: s.Quantity.Sub(quantity), Value: s.Value.Sub(value)}
	}
	return StockLevel{Quantity: s.Quantity.Add(quantity), Value: s.Value.Add(value)}
}

// InventoryItem is a stock item tracked by quantity and value.
type InventoryItem struct {
	ItemID       string          `json:"itemID"`
	CompanyID    string          `json:"companyID"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit"`
	HSNCode      string          `json:"hsnCode,omitempty"`
	GSTRate      decimal.Decimal `json:"gstRate"`
	CurrentStock StockLevel      `json:"currentStock"`
	AuditFields
}

// StockTransaction records the stock movement caused by one voucher item.
type StockTransaction struct {
	StockTransactionID string          `json:"stockTransactionID"`
	CompanyID          string          `json:"companyID"`
	VoucherID          string          `json:"voucherID"`
	InventoryItemID    string          `json:"inventoryItemID"`
	Date               time.Time       `json:"date"`
	Direction          StockDirection  `json:"direction"`
	Quantity           decimal.Decimal `json:"quantity"`
	Rate               decimal.Decimal `json:"rate"`
	Value              decimal.Decimal `json:"value"`
	CreatedAt          time.Time       `json:"createdAt"`
}
