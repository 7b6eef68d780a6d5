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

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, gstin, financial_year_start, books_begin_from, address,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row pgx.Row) (models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.GSTIN,
		&m.FinancialYearStart,
		&m.BooksBeginFrom,
		&m.Address,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCompany inserts a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.CompanyID, m.Name, m.GSTIN, m.FinancialYearStart, m.BooksBeginFrom, m.Address,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "company "+m.CompanyID)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.db(ctx).QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to find company "+companyID, err)
	}
	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// ListCompanies retrieves a page of companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name, company_id LIMIT $1 OFFSET $2;`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list companies", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan company row", err)
		}
		companies = append(companies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating company rows", err)
	}
	return mapping.ToDomainCompanySlice(companies), nil
}
