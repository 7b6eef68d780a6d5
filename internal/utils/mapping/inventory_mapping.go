package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:        d.ItemID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		SKU:           d.SKU,
		Unit:          d.Unit,
		HSNCode:       d.HSNCode,
		GSTRate:       d.GSTRate,
		StockQuantity: d.CurrentStock.Quantity,
		StockValue:    d.CurrentStock.Value,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:    m.ItemID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		SKU:       m.SKU,
		Unit:      m.Unit,
		HSNCode:   m.HSNCode,
		GSTRate:   m.GSTRate,
		CurrentStock: domain.StockLevel{
			Quantity: m.StockQuantity,
			Value:    m.StockValue,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}

// ToModelStockTransaction converts a domain StockTransaction to a model StockTransaction
func ToModelStockTransaction(d domain.StockTransaction) models.StockTransaction {
	return models.StockTransaction{
		StockTransactionID: d.StockTransactionID,
		CompanyID:          d.CompanyID,
		VoucherID:          d.VoucherID,
		InventoryItemID:    d.InventoryItemID,
		TxnDate:            d.Date,
		Direction:          string(d.Direction),
		Quantity:           d.Quantity,
		Rate:               d.Rate,
		Value:              d.Value,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainStockTransaction converts a model StockTransaction to a domain StockTransaction
func ToDomainStockTransaction(m models.StockTransaction) domain.StockTransaction {
	return domain.StockTransaction{
		StockTransactionID: m.StockTransactionID,
		CompanyID:          m.CompanyID,
		VoucherID:          m.VoucherID,
		InventoryItemID:    m.InventoryItemID,
		Date:               m.TxnDate,
		Direction:          domain.StockDirection(m.Direction),
		Quantity:           m.Quantity,
		Rate:               m.Rate,
		Value:              m.Value,
		CreatedAt:          m.CreatedAt,
	}
}

func ToDomainStockTransactionSlice(ms []models.StockTransaction) []domain.StockTransaction {
	ds := make([]domain.StockTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockTransaction(m)
	}
	return ds
}
