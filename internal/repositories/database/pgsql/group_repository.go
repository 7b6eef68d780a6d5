package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger_app/internal/models"
	"github.com/SscSPs/erp_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGroupRepository struct {
	BaseRepository
}

func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

const groupColumns = `group_id, company_id, name, parent_group_id, nature, is_primary, affects_gross_profit,
	created_at, created_by, last_updated_at, last_updated_by`

func scanGroup(row pgx.Row) (models.Group, error) {
	var m models.Group
	err := row.Scan(
		&m.GroupID,
		&m.CompanyID,
		&m.Name,
		&m.ParentGroupID,
		&m.Nature,
		&m.IsPrimary,
		&m.AffectsGrossProfit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGroups inserts the groups in a single batch. Parents must come before children.
func (r *PgxGroupRepository) SaveGroups(ctx context.Context, groups []domain.Group) error {
	if len(groups) == 0 {
		return nil
	}
	query := `INSERT INTO groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	batch := &pgx.Batch{}
	for _, g := range groups {
		m := mapping.ToModelGroup(g)
		batch.Queue(query,
			m.GroupID, m.CompanyID, m.Name, m.ParentGroupID, m.Nature, m.IsPrimary, m.AffectsGrossProfit,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := r.db(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "groups")
	}
	return nil
}

// FindGroupByID retrieves a group of the company.
func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE company_id = $1 AND group_id = $2;`
	m, err := scanGroup(r.db(ctx).QueryRow(ctx, query, companyID, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to find group "+groupID, err)
	}
	d := mapping.ToDomainGroup(m)
	return &d, nil
}

// ListGroups retrieves every group of the company, primaries first.
func (r *PgxGroupRepository) ListGroups(ctx context.Context, companyID string) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE company_id = $1
		ORDER BY is_primary DESC, name;`
	rows, err := r.db(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list groups", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		m, err := scanGroup(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan group row", err)
		}
		groups = append(groups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating group rows", err)
	}
	return mapping.ToDomainGroupSlice(groups), nil
}

// CountChildGroups counts the groups whose parent is groupID.
func (r *PgxGroupRepository) CountChildGroups(ctx context.Context, groupID string) (int, error) {
	var n int
	err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE parent_group_id = $1;`, groupID).Scan(&n)
	if err != nil {
		return 0, apperrors.NewPersistenceError("failed to count child groups", err)
	}
	return n, nil
}

// UpdateGroup updates the mutable fields of a group.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	query := `UPDATE groups
		SET name = $1, affects_gross_profit = $2, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $5 AND group_id = $6;`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.Name, m.AffectsGrossProfit, m.LastUpdatedAt, m.LastUpdatedBy, m.CompanyID, m.GroupID,
	)
	if err != nil {
		return mapWriteError(err, "group "+m.GroupID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes a group. Callers check for children and ledgers first.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM groups WHERE company_id = $1 AND group_id = $2;`, companyID, groupID)
	if err != nil {
		return mapWriteError(err, "group "+groupID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
