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

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `ledger_id, company_id, group_id, name,
	opening_balance, opening_balance_type, opening_balance_date,
	current_balance, current_balance_type, contact_details, bank_details, gst_applicable,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLedger(row pgx.Row) (domain.Ledger, error) {
	var m models.Ledger
	err := row.Scan(
		&m.LedgerID,
		&m.CompanyID,
		&m.GroupID,
		&m.Name,
		&m.OpeningBalance,
		&m.OpeningBalanceType,
		&m.OpeningBalanceDate,
		&m.CurrentBalance,
		&m.CurrentBalanceType,
		&m.ContactDetails,
		&m.BankDetails,
		&m.GSTApplicable,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Ledger{}, err
	}
	return mapping.ToDomainLedger(m)
}

func (r *PgxLedgerRepository) collectLedgers(rows pgx.Rows) ([]domain.Ledger, error) {
	defer rows.Close()
	var ledgers []domain.Ledger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan ledger row", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating ledger rows", err)
	}
	return ledgers, nil
}

// SaveLedger inserts a new ledger.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m, err := mapping.ToModelLedger(ledger)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode ledger "+ledger.LedgerID, err)
	}
	query := `INSERT INTO ledgers (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	_, err = r.db(ctx).Exec(ctx, query,
		m.LedgerID, m.CompanyID, m.GroupID, m.Name,
		m.OpeningBalance, m.OpeningBalanceType, m.OpeningBalanceDate,
		m.CurrentBalance, m.CurrentBalanceType, m.ContactDetails, m.BankDetails, m.GSTApplicable,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "ledger "+m.LedgerID)
	}
	return nil
}

// FindLedgerByID retrieves a ledger of the company.
func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE company_id = $1 AND ledger_id = $2;`
	l, err := scanLedger(r.db(ctx).QueryRow(ctx, query, companyID, ledgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to find ledger "+ledgerID, err)
	}
	return &l, nil
}

// FindLedgersByIDs retrieves the company's ledgers with the given IDs. Unknown IDs are absent from the map.
func (r *PgxLedgerRepository) FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	result := make(map[string]domain.Ledger, len(ledgerIDs))
	if len(ledgerIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE company_id = $1 AND ledger_id = ANY($2);`
	rows, err := r.db(ctx).Query(ctx, query, companyID, ledgerIDs)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to find ledgers", err)
	}
	ledgers, err := r.collectLedgers(rows)
	if err != nil {
		return nil, err
	}
	for _, l := range ledgers {
		result[l.LedgerID] = l
	}
	return result, nil
}

// ListLedgers retrieves the company's ledgers ordered by name, optionally only those in groupID.
func (r *PgxLedgerRepository) ListLedgers(ctx context.Context, companyID string, groupID *string) ([]domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers
		WHERE company_id = $1 AND ($2::varchar IS NULL OR group_id = $2)
		ORDER BY name;`
	rows, err := r.db(ctx).Query(ctx, query, companyID, groupID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list ledgers", err)
	}
	return r.collectLedgers(rows)
}

// CountLedgersInGroup counts the ledgers directly under groupID.
func (r *PgxLedgerRepository) CountLedgersInGroup(ctx context.Context, groupID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM ledgers WHERE group_id = $1;`, groupID).Scan(&n)
	if err != nil {
		return 0, apperrors.NewPersistenceError("failed to count ledgers in group", err)
	}
	return n, nil
}

// UpdateLedger updates a ledger's details, leaving the cached balance alone.
func (r *PgxLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	m, err := mapping.ToModelLedger(ledger)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode ledger "+ledger.LedgerID, err)
	}
	query := `UPDATE ledgers
		SET group_id = $1, name = $2, opening_balance = $3, opening_balance_type = $4, opening_balance_date = $5,
		    contact_details = $6, bank_details = $7, gst_applicable = $8, last_updated_at = $9, last_updated_by = $10
		WHERE company_id = $11 AND ledger_id = $12;`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.GroupID, m.Name, m.OpeningBalance, m.OpeningBalanceType, m.OpeningBalanceDate,
		m.ContactDetails, m.BankDetails, m.GSTApplicable, m.LastUpdatedAt, m.LastUpdatedBy,
		m.CompanyID, m.LedgerID,
	)
	if err != nil {
		return mapWriteError(err, "ledger "+m.LedgerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateLedgerBalance overwrites the cached current balance.
func (r *PgxLedgerRepository) UpdateLedgerBalance(ctx context.Context, ledgerID string, balance domain.Balance, now time.Time) error {
	query := `UPDATE ledgers SET current_balance = $1, current_balance_type = $2, last_updated_at = $3
		WHERE ledger_id = $4;`
	tag, err := r.db(ctx).Exec(ctx, query, balance.Amount, string(balance.Type), now, ledgerID)
	if err != nil {
		return apperrors.NewPersistenceError("failed to update balance of ledger "+ledgerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLedger removes a ledger. A ledger still referenced by vouchers fails with ErrReferentialIntegrity.
func (r *PgxLedgerRepository) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM ledgers WHERE company_id = $1 AND ledger_id = $2;`, companyID, ledgerID)
	if err != nil {
		return mapWriteError(err, "ledger "+ledgerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
