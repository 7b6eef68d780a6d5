package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger_app/internal/models"
	"github.com/SscSPs/erp_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const itemColumns = `item_id, company_id, name, sku, unit, hsn_code, gst_rate, stock_quantity, stock_value,
	created_at, created_by, last_updated_at, last_updated_by`

const stockTxnColumns = `stock_transaction_id, company_id, voucher_id, inventory_item_id, txn_date,
	direction, quantity, rate, value, created_at`

func scanItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.CompanyID,
		&m.Name,
		&m.SKU,
		&m.Unit,
		&m.HSNCode,
		&m.GSTRate,
		&m.StockQuantity,
		&m.StockValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectItems(rows pgx.Rows) ([]domain.InventoryItem, error) {
	defer rows.Close()
	var items []models.InventoryItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan inventory item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating inventory item rows", err)
	}
	return mapping.ToDomainInventoryItemSlice(items), nil
}

// SaveItem inserts a new inventory item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ItemID, m.CompanyID, m.Name, m.SKU, m.Unit, m.HSNCode, m.GSTRate, m.StockQuantity, m.StockValue,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "inventory item "+m.ItemID)
	}
	return nil
}

// FindItemByID retrieves an inventory item of the company.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, companyID string, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1 AND item_id = $2;`
	m, err := scanItem(r.db(ctx).QueryRow(ctx, query, companyID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to find inventory item "+itemID, err)
	}
	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// FindItemsByIDs retrieves the company's items with the given IDs, locking them for the
// rest of the transaction so concurrent postings apply stock moves one at a time.
func (r *PgxInventoryRepository) FindItemsByIDs(ctx context.Context, companyID string, itemIDs []string) (map[string]domain.InventoryItem, error) {
	result := make(map[string]domain.InventoryItem, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1 AND item_id = ANY($2)`
	if _, inTx := txFromCtx(ctx); inTx {
		query += ` FOR UPDATE`
	}
	rows, err := r.db(ctx).Query(ctx, query, companyID, itemIDs)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to find inventory items", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		result[it.ItemID] = it
	}
	return result, nil
}

// ListItems retrieves the company's inventory items ordered by name.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, companyID string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE company_id = $1 ORDER BY name;`
	rows, err := r.db(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list inventory items", err)
	}
	return collectItems(rows)
}

// UpdateItem updates an item's descriptive fields.
func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `UPDATE inventory_items
		SET name = $1, sku = $2, unit = $3, hsn_code = $4, gst_rate = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $8 AND item_id = $9;`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.Name, m.SKU, m.Unit, m.HSNCode, m.GSTRate, m.LastUpdatedAt, m.LastUpdatedBy, m.CompanyID, m.ItemID,
	)
	if err != nil {
		return mapWriteError(err, "inventory item "+m.ItemID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateItemStock overwrites the stock on hand.
func (r *PgxInventoryRepository) UpdateItemStock(ctx context.Context, itemID string, stock domain.StockLevel, now time.Time) error {
	query := `UPDATE inventory_items SET stock_quantity = $1, stock_value = $2, last_updated_at = $3 WHERE item_id = $4;`
	tag, err := r.db(ctx).Exec(ctx, query, stock.Quantity, stock.Value, now, itemID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update stock of item "+itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes an inventory item.
func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, companyID string, itemID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM inventory_items WHERE company_id = $1 AND item_id = $2;`, companyID, itemID)
	if err != nil {
		return mapWriteError(err, "inventory item "+itemID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveStockTransactions inserts the movements in one batch.
func (r *PgxInventoryRepository) SaveStockTransactions(ctx context.Context, txns []domain.StockTransaction) error {
	if len(txns) == 0 {
		return nil
	}
	query := `INSERT INTO stock_transactions (` + stockTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	batch := &pgx.Batch{}
	for _, t := range txns {
		m := mapping.ToModelStockTransaction(t)
		batch.Queue(query,
			m.StockTransactionID, m.CompanyID, m.VoucherID, m.InventoryItemID, m.TxnDate,
			m.Direction, m.Quantity, m.Rate, m.Value, m.CreatedAt,
		)
	}
	if err := r.db(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "stock transactions")
	}
	return nil
}

func (r *PgxInventoryRepository) queryStockTransactions(ctx context.Context, query string, args ...any) ([]domain.StockTransaction, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query stock transactions", err)
	}
	defer rows.Close()

	var txns []models.StockTransaction
	for rows.Next() {
		var m models.StockTransaction
		if err := rows.Scan(
			&m.StockTransactionID,
			&m.CompanyID,
			&m.VoucherID,
			&m.InventoryItemID,
			&m.TxnDate,
			&m.Direction,
			&m.Quantity,
			&m.Rate,
			&m.Value,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan stock transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating stock transaction rows", err)
	}
	return mapping.ToDomainStockTransactionSlice(txns), nil
}

// ListStockTransactionsByVoucher retrieves the movements a voucher caused.
func (r *PgxInventoryRepository) ListStockTransactionsByVoucher(ctx context.Context, voucherID string) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockTxnColumns + ` FROM stock_transactions WHERE voucher_id = $1 ORDER BY created_at, stock_transaction_id;`
	return r.queryStockTransactions(ctx, query, voucherID)
}

// ListStockTransactionsByItem retrieves an item's movements in date order.
func (r *PgxInventoryRepository) ListStockTransactionsByItem(ctx context.Context, companyID string, itemID string) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockTxnColumns + ` FROM stock_transactions
		WHERE company_id = $1 AND inventory_item_id = $2 ORDER BY txn_date, created_at;`
	return r.queryStockTransactions(ctx, query, companyID, itemID)
}

// CountStockTransactionsByItem counts an item's movements.
func (r *PgxInventoryRepository) CountStockTransactionsByItem(ctx context.Context, itemID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM stock_transactions WHERE inventory_item_id = $1;`
	if err := r.db(ctx).QueryRow(ctx, query, itemID).Scan(&n); err != nil {
		return 0, apperrors.NewPersistenceError("failed to count stock transactions", err)
	}
	return n, nil
}

// DeleteStockTransactionsByVoucher removes the movements a voucher caused.
func (r *PgxInventoryRepository) DeleteStockTransactionsByVoucher(ctx context.Context, voucherID string) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM stock_transactions WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewPersistenceError("failed to delete stock transactions of voucher "+voucherID, err)
	}
	return nil
}
