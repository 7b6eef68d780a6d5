package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves a page of companies ordered by name.
	ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
