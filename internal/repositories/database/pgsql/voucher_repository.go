package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger_app/internal/models"
	"github.com/SscSPs/erp_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/erp_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `v.voucher_id, v.company_id, v.voucher_number, v.voucher_type, v.voucher_date, v.narration,
	v.party_ledger_id, v.gst_details, v.items, v.total_amount, v.edit_history,
	v.created_at, v.created_by, v.last_updated_at, v.last_updated_by`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherNumber,
		&m.VoucherType,
		&m.VoucherDate,
		&m.Narration,
		&m.PartyLedgerID,
		&m.GSTDetails,
		&m.Items,
		&m.TotalAmount,
		&m.EditHistory,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// voucherWhere renders the filter as a WHERE clause over vouchers aliased v.
func voucherWhere(companyID string, filter domain.VoucherFilter) (string, []any) {
	clauses := []string{"v.company_id = $1"}
	args := []any{companyID}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.VoucherType != nil {
		clauses = append(clauses, "v.voucher_type = "+next(string(*filter.VoucherType)))
	}
	if filter.From != nil {
		clauses = append(clauses, "v.voucher_date >= "+next(*filter.From))
	}
	if filter.To != nil {
		clauses = append(clauses, "v.voucher_date <= "+next(*filter.To))
	}
	if filter.LedgerID != nil {
		clauses = append(clauses, "EXISTS (SELECT 1 FROM voucher_entries e WHERE e.voucher_id = v.voucher_id AND e.ledger_id = "+next(*filter.LedgerID)+")")
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// loadVouchers runs a header query and attaches the entries of every voucher it returns.
func (r *PgxVoucherRepository) loadVouchers(ctx context.Context, query string, args ...any) ([]domain.Voucher, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query vouchers", err)
	}
	var headers []models.Voucher
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			rows.Close()
			return nil, apperrors.NewPersistenceError("failed to scan voucher row", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating voucher rows", err)
	}
	if len(headers) == 0 {
		return []domain.Voucher{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.VoucherID
	}
	entries, err := r.entriesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	vouchers := make([]domain.Voucher, 0, len(headers))
	for _, h := range headers {
		v, err := mapping.ToDomainVoucher(h, entries[h.VoucherID])
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to decode voucher "+h.VoucherID, err)
		}
		vouchers = append(vouchers, v)
	}
	if err := r.attachLedgerNames(ctx, vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

func (r *PgxVoucherRepository) entriesFor(ctx context.Context, voucherIDs []string) (map[string][]models.VoucherEntry, error) {
	query := `SELECT voucher_id, line_no, ledger_id, entry_type, amount
		FROM voucher_entries WHERE voucher_id = ANY($1)
		ORDER BY voucher_id, line_no;`
	rows, err := r.db(ctx).Query(ctx, query, voucherIDs)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to query voucher entries", err)
	}
	defer rows.Close()

	byVoucher := make(map[string][]models.VoucherEntry, len(voucherIDs))
	for rows.Next() {
		var e models.VoucherEntry
		if err := rows.Scan(&e.VoucherID, &e.LineNo, &e.LedgerID, &e.EntryType, &e.Amount); err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan voucher entry row", err)
		}
		byVoucher[e.VoucherID] = append(byVoucher[e.VoucherID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating voucher entry rows", err)
	}
	return byVoucher, nil
}

// attachLedgerNames fills in entry and party ledger names in place.
func (r *PgxVoucherRepository) attachLedgerNames(ctx context.Context, vouchers []domain.Voucher) error {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, v := range vouchers {
		for _, e := range v.Entries {
			add(e.LedgerID)
		}
		if v.PartyLedgerID != nil {
			add(*v.PartyLedgerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db(ctx).Query(ctx, `SELECT ledger_id, name FROM ledgers WHERE ledger_id = ANY($1);`, ids)
	if err != nil {
		return apperrors.NewPersistenceError("failed to query ledger names", err)
	}
	defer rows.Close()
	names := make(map[string]string, len(ids))
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return apperrors.NewPersistenceError("failed to scan ledger name", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewPersistenceError("error iterating ledger names", err)
	}

	for i := range vouchers {
		for j := range vouchers[i].Entries {
			vouchers[i].Entries[j].LedgerName = names[vouchers[i].Entries[j].LedgerID]
		}
		if p := vouchers[i].PartyLedgerID; p != nil {
			vouchers[i].PartyLedgerName = names[*p]
		}
	}
	return nil
}

// FindVoucherByID retrieves a voucher of the company with its entries.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers v WHERE v.company_id = $1 AND v.voucher_id = $2;`
	vouchers, err := r.loadVouchers(ctx, query, companyID, voucherID)
	if err != nil {
		return nil, err
	}
	if len(vouchers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &vouchers[0], nil
}

// ListVouchers retrieves a page of vouchers, newest first, and the total matching the filter.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter, limit int, offset int) ([]domain.Voucher, int, error) {
	where, args := voucherWhere(companyID, filter)

	var total int
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM vouchers v`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewPersistenceError("failed to count vouchers", err)
	}

	n := len(args)
	query := `SELECT ` + voucherColumns + ` FROM vouchers v` + where +
		fmt.Sprintf(` ORDER BY v.voucher_date DESC, v.voucher_number DESC LIMIT $%d OFFSET $%d;`, n+1, n+2)
	vouchers, err := r.loadVouchers(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return vouchers, total, nil
}

// FindVouchers retrieves every matching voucher in posting order.
func (r *PgxVoucherRepository) FindVouchers(ctx context.Context, companyID string, filter domain.VoucherFilter) ([]domain.Voucher, error) {
	where, args := voucherWhere(companyID, filter)
	query := `SELECT ` + voucherColumns + ` FROM vouchers v` + where + ` ORDER BY v.voucher_date, v.voucher_number;`
	return r.loadVouchers(ctx, query, args...)
}

// CountVouchersByLedger counts the vouchers with an entry against ledgerID.
func (r *PgxVoucherRepository) CountVouchersByLedger(ctx context.Context, ledgerID string) (int, error) {
	var n int
	query := `SELECT COUNT(DISTINCT voucher_id) FROM voucher_entries WHERE ledger_id = $1;`
	if err := r.db(ctx).QueryRow(ctx, query, ledgerID).Scan(&n); err != nil {
		return 0, apperrors.NewPersistenceError("failed to count vouchers for ledger", err)
	}
	return n, nil
}

func queueEntries(batch *pgx.Batch, entries []models.VoucherEntry) {
	query := `INSERT INTO voucher_entries (voucher_id, line_no, ledger_id, entry_type, amount)
		VALUES ($1, $2, $3, $4, $5);`
	for _, e := range entries {
		batch.Queue(query, e.VoucherID, e.LineNo, e.LedgerID, e.EntryType, e.Amount)
	}
}

// SaveVoucher inserts the voucher header and its entries in one batch.
// Call it inside RunInTx so a failed entry insert leaves nothing behind.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m, entries, err := mapping.ToModelVoucher(voucher)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode voucher "+voucher.VoucherID, err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`INSERT INTO vouchers (voucher_id, company_id, voucher_number, voucher_type, voucher_date, narration,
			party_ledger_id, gst_details, items, total_amount, edit_history,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		m.VoucherID, m.CompanyID, m.VoucherNumber, m.VoucherType, m.VoucherDate, m.Narration,
		m.PartyLedgerID, m.GSTDetails, m.Items, m.TotalAmount, m.EditHistory,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	queueEntries(batch, entries)

	if err := r.db(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "voucher "+m.VoucherID)
	}
	return nil
}

// UpdateVoucher rewrites the voucher header and replaces its entries.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m, entries, err := mapping.ToModelVoucher(voucher)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode voucher "+voucher.VoucherID, err)
	}

	tag, err := r.db(ctx).Exec(ctx, `UPDATE vouchers
		SET voucher_date = $1, narration = $2, party_ledger_id = $3, gst_details = $4, items = $5,
		    total_amount = $6, edit_history = $7, last_updated_at = $8, last_updated_by = $9
		WHERE company_id = $10 AND voucher_id = $11;`,
		m.VoucherDate, m.Narration, m.PartyLedgerID, m.GSTDetails, m.Items,
		m.TotalAmount, m.EditHistory, m.LastUpdatedAt, m.LastUpdatedBy,
		m.CompanyID, m.VoucherID,
	)
	if err != nil {
		return mapWriteError(err, "voucher "+m.VoucherID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM voucher_entries WHERE voucher_id = $1;`, m.VoucherID)
	queueEntries(batch, entries)
	if err := r.db(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "entries of voucher "+m.VoucherID)
	}
	return nil
}

// DeleteVoucher removes a voucher. Entries, stock movements and GST records cascade.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, companyID string, voucherID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM vouchers WHERE company_id = $1 AND voucher_id = $2;`, companyID, voucherID)
	if err != nil {
		return mapWriteError(err, "voucher "+voucherID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// NextVoucherSequence atomically increments the counter for the company, type and month.
// A missing counter is seeded from the vouchers already in that month.
func (r *PgxVoucherRepository) NextVoucherSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, date time.Time) (int, error) {
	start, end := accounting.MonthBounds(date)
	query := `
		INSERT INTO voucher_sequences (company_id, voucher_type, period, last_value)
		VALUES ($1, $2, $3, (
			SELECT COUNT(*) + 1 FROM vouchers
			WHERE company_id = $1 AND voucher_type = $2 AND voucher_date BETWEEN $4 AND $5
		))
		ON CONFLICT (company_id, voucher_type, period)
		DO UPDATE SET last_value = voucher_sequences.last_value + 1
		RETURNING last_value;`

	var seq int
	err := r.db(ctx).QueryRow(ctx, query,
		companyID, string(voucherType), accounting.SequencePeriod(date), start, end,
	).Scan(&seq)
	if err != nil {
		return 0, mapWriteError(err, "voucher sequence")
	}
	return seq, nil
}
