package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/core/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := services.NewInventoryService(repo, new(MockGSTRepository))

	t.Run("opening stock", func(t *testing.T) {
		repo.On("SaveItem", mock.Anything, mock.MatchedBy(func(i domain.InventoryItem) bool {
			return i.Name == "Widget" && i.CurrentStock.Quantity.Equal(dec(12))
		})).Return(nil).Once()

		item, err := svc.CreateItem(context.Background(), "c1", dto.CreateInventoryItemRequest{
			Name:         " Widget ",
			Unit:         "pcs",
			GSTRate:      dec(18),
			OpeningStock: &domain.StockLevel{Quantity: dec(12), Value: dec(1200)},
		}, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Widget", item.Name)
		assert.NotEmpty(t, item.ItemID)
	})

	t.Run("gst rate out of range", func(t *testing.T) {
		_, err := svc.CreateItem(context.Background(), "c1", dto.CreateInventoryItemRequest{
			Name:    "Widget",
			Unit:    "pcs",
			GSTRate: decimal.NewFromInt(101),
		}, "u1")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo.On("SaveItem", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()
		_, err := svc.CreateItem(context.Background(), "c1", dto.CreateInventoryItemRequest{Name: "Widget", Unit: "pcs"}, "u1")
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})
}

func TestDeleteItem_BlockedByStockTransactions(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := services.NewInventoryService(repo, new(MockGSTRepository))
	repo.On("FindItemByID", mock.Anything, "c1", "i1").Return(&domain.InventoryItem{ItemID: "i1"}, nil).Once()
	repo.On("CountStockTransactionsByItem", mock.Anything, "i1").Return(4, nil).Once()

	err := svc.DeleteItem(context.Background(), "c1", "i1")

	assert.ErrorIs(t, err, apperrors.ErrReferentialIntegrity)
	repo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateItem_PartialFields(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := services.NewInventoryService(repo, new(MockGSTRepository))
	existing := &domain.InventoryItem{ItemID: "i1", Name: "Widget", Unit: "pcs", GSTRate: dec(5)}
	rate := dec(12)
	repo.On("FindItemByID", mock.Anything, "c1", "i1").Return(existing, nil).Once()
	repo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(i domain.InventoryItem) bool {
		return i.Name == "Widget" && i.GSTRate.Equal(rate) && i.LastUpdatedBy == "u2"
	})).Return(nil).Once()

	item, err := svc.UpdateItem(context.Background(), "c1", "i1", dto.UpdateInventoryItemRequest{GSTRate: &rate}, "u2")

	require.NoError(t, err)
	assert.Equal(t, "pcs", item.Unit)
	repo.AssertExpectations(t)
}

func TestListGSTEntries(t *testing.T) {
	gstRepo := new(MockGSTRepository)
	svc := services.NewInventoryService(new(MockInventoryRepository), gstRepo)

	_, err := svc.ListGSTEntries(context.Background(), "c1", dto.GSTEntriesParams{StartDate: "2024-05-01", EndDate: "2024-04-01"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	gstRepo.On("ListGSTEntries", mock.Anything, "c1", mock.MatchedBy(func(p domain.Period) bool {
		return p.From != nil && p.To == nil
	})).Return([]domain.GSTEntry{{GSTEntryID: "g1"}}, nil).Once()
	entries, err := svc.ListGSTEntries(context.Background(), "c1", dto.GSTEntriesParams{StartDate: "2024-04-01"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
