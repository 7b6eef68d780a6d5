package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents a row in the inventory_items table.
type InventoryItem struct {
	ItemID        string          `db:"item_id"`
	CompanyID     string          `db:"company_id"`
	Name          string          `db:"name"`
	SKU           string          `db:"sku"`
	Unit          string          `db:"unit"`
	HSNCode       string          `db:"hsn_code"`
	GSTRate       decimal.Decimal `db:"gst_rate"`
	StockQuantity decimal.Decimal `db:"stock_quantity"`
	StockValue    decimal.Decimal `db:"stock_value"`
	AuditFields
}

// StockTransaction represents a row in the stock_transactions table.
type StockTransaction struct {
	StockTransactionID string          `db:"stock_transaction_id"`
	CompanyID          string          `db:"company_id"`
	VoucherID          string          `db:"voucher_id"`
	InventoryItemID    string          `db:"inventory_item_id"`
	TxnDate            time.Time       `db:"txn_date"`
	Direction          string          `db:"direction"`
	Quantity           decimal.Decimal `db:"quantity"`
	Rate               decimal.Decimal `db:"rate"`
	Value              decimal.Decimal `db:"value"`
	CreatedAt          time.Time       `db:"created_at"`
}
