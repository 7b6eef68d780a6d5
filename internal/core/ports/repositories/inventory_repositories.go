package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory items
type InventoryReader interface {
	FindItemByID(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error)
	FindItemsByIDs(ctx context.Context, companyID string, itemIDs []string) (map[string]domain.InventoryItem, error)
	ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory items
type InventoryWriter interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	// UpdateItemStock overwrites the stock on hand.
	UpdateItemStock(ctx context.Context, itemID string, stock domain.StockLevel, now time.Time) error
	DeleteItem(ctx context.Context, companyID string, itemID string) error
}

// StockTransactionRepository stores the stock movements derived from vouchers
type StockTransactionRepository interface {
	SaveStockTransactions(ctx context.Context, txns []domain.StockTransaction) error
	ListStockTransactionsByVoucher(ctx context.Context, voucherID string) ([]domain.StockTransaction, error)
	ListStockTransactionsByItem(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error)
	CountStockTransactionsByItem(ctx context.Context, itemID string) (int, error)
	DeleteStockTransactionsByVoucher(ctx context.Context, voucherID string) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
	StockTransactionRepository
}
