package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxGSTRate = decimal.NewFromInt(100)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
	gstRepo       portsrepo.GSTEntryRepositoryFacade
}

// NewInventoryService creates the stock item service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, gstRepo portsrepo.GSTEntryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		gstRepo:       gstRepo,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func validateGSTRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxGSTRate) {
		return fmt.Errorf("%w: gstRate must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

func (s *inventoryService) CreateItem(ctx context.Context, companyID string, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if err := validateGSTRate(req.GSTRate); err != nil {
		return nil, err
	}

	item := domain.InventoryItem{
		ItemID:       uuid.NewString(),
		CompanyID:    companyID,
		Name:         name,
		SKU:          req.SKU,
		Unit:         req.Unit,
		HSNCode:      req.HSNCode,
		GSTRate:      req.GSTRate,
		CurrentStock: domain.StockLevel{Quantity: decimal.Zero, Value: decimal.Zero},
		AuditFields:  newAuditFields(time.Now().UTC(), userID),
	}
	if req.OpeningStock != nil {
		if req.OpeningStock.Quantity.IsNegative() || req.OpeningStock.Value.IsNegative() {
			return nil, fmt.Errorf("%w: opening stock cannot be negative", apperrors.ErrValidation)
		}
		item.CurrentStock = *req.OpeningStock
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save inventory item", slog.String("company_id", companyID))
		}
		return nil, fmt.Errorf("failed to create inventory item %q: %w", name, err)
	}

	s.LogInfo(ctx, "Inventory item created",
		slog.String("item_id", item.ItemID),
		slog.String("company_id", companyID))
	return &item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, companyID, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("inventory item " + itemID)
		}
		s.LogError(ctx, err, "Failed to find inventory item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, companyID string, itemID string, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	item, err := s.GetItem(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		item.Name = name
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.HSNCode != nil {
		item.HSNCode = *req.HSNCode
	}
	if req.GSTRate != nil {
		if err := validateGSTRate(*req.GSTRate); err != nil {
			return nil, err
		}
		item.GSTRate = *req.GSTRate
	}
	touch(&item.AuditFields, time.Now().UTC(), userID)

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("inventory item " + itemID)
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update inventory item", slog.String("item_id", itemID))
		}
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, companyID string, itemID string) error {
	if _, err := s.GetItem(ctx, companyID, itemID); err != nil {
		return err
	}
	count, err := s.inventoryRepo.CountStockTransactionsByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to count stock transactions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: inventory item has %d stock transactions", apperrors.ErrReferentialIntegrity, count)
	}
	if err := s.inventoryRepo.DeleteItem(ctx, companyID, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("inventory item " + itemID)
		}
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	s.LogInfo(ctx, "Inventory item deleted", slog.String("item_id", itemID))
	return nil
}

func (s *inventoryService) ListStockTransactions(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error) {
	if _, err := s.GetItem(ctx, companyID, itemID); err != nil {
		return nil, err
	}
	txns, err := s.inventoryRepo.ListStockTransactionsByItem(ctx, companyID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	return txns, nil
}

func (s *inventoryService) ListGSTEntries(ctx context.Context, companyID string, params dto.GSTEntriesParams) ([]domain.GSTEntry, error) {
	period, err := dto.ParsePeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.gstRepo.ListGSTEntries(ctx, companyID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list gst entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list gst entries: %w", err)
	}
	return entries, nil
}
