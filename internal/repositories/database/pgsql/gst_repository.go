package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger_app/internal/models"
	"github.com/SscSPs/erp_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGSTEntryRepository struct {
	BaseRepository
}

func newPgxGSTEntryRepository(pool *pgxpool.Pool) portsrepo.GSTEntryRepositoryFacade {
	return &PgxGSTEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GSTEntryRepositoryFacade = (*PgxGSTEntryRepository)(nil)

const gstColumns = `gst_entry_id, company_id, voucher_id, voucher_number, entry_date, voucher_type,
	party_ledger_id, gstin, taxable_amount, cgst, sgst, igst, total_tax, line_items, created_at`

// SaveGSTEntry inserts the tax register record of a voucher.
func (r *PgxGSTEntryRepository) SaveGSTEntry(ctx context.Context, entry domain.GSTEntry) error {
	m, err := mapping.ToModelGSTEntry(entry)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode gst entry "+entry.GSTEntryID, err)
	}
	query := `INSERT INTO gst_entries (` + gstColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err = r.db(ctx).Exec(ctx, query,
		m.GSTEntryID, m.CompanyID, m.VoucherID, m.VoucherNumber, m.EntryDate, m.VoucherType,
		m.PartyLedgerID, m.GSTIN, m.TaxableAmount, m.CGST, m.SGST, m.IGST, m.TotalTax, m.LineItems, m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "gst entry for voucher "+m.VoucherID)
	}
	return nil
}

// DeleteGSTEntryByVoucher removes the tax record of a voucher, if any.
func (r *PgxGSTEntryRepository) DeleteGSTEntryByVoucher(ctx context.Context, voucherID string) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM gst_entries WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewPersistenceError("failed to delete gst entry of voucher "+voucherID, err)
	}
	return nil
}

// ListGSTEntries retrieves the company's tax records within the period, oldest first.
func (r *PgxGSTEntryRepository) ListGSTEntries(ctx context.Context, companyID string, period domain.Period) ([]domain.GSTEntry, error) {
	query := `SELECT ` + gstColumns + ` FROM gst_entries WHERE company_id = $1`
	args := []any{companyID}
	if period.From != nil {
		args = append(args, *period.From)
		query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
	}
	if period.To != nil {
		args = append(args, *period.To)
		query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
	}
	query += " ORDER BY entry_date, voucher_number;"

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list gst entries", err)
	}
	defer rows.Close()

	var entries []domain.GSTEntry
	for rows.Next() {
		var m models.GSTEntry
		if err := rows.Scan(
			&m.GSTEntryID,
			&m.CompanyID,
			&m.VoucherID,
			&m.VoucherNumber,
			&m.EntryDate,
			&m.VoucherType,
			&m.PartyLedgerID,
			&m.GSTIN,
			&m.TaxableAmount,
			&m.CGST,
			&m.SGST,
			&m.IGST,
			&m.TotalTax,
			&m.LineItems,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan gst entry row", err)
		}
		d, err := mapping.ToDomainGSTEntry(m)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to decode gst entry "+m.GSTEntryID, err)
		}
		entries = append(entries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating gst entry rows", err)
	}
	return entries, nil
}
