package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// InventorySvcFacade defines stock item operations and the derived registers
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, companyID string, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, companyID string, itemID string, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	// DeleteItem fails with ErrReferentialIntegrity while stock transactions reference the item.
	DeleteItem(ctx context.Context, companyID string, itemID string) error

	ListStockTransactions(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error)
	ListGSTEntries(ctx context.Context, companyID string, params dto.GSTEntriesParams) ([]domain.GSTEntry, error)
}
