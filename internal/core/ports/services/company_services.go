package services

import (
	"context"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
)

// CompanySvcFacade defines company setup operations
type CompanySvcFacade interface {
	// CreateCompany persists a company and seeds its default chart of accounts.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error)

	// GetCompanyByID retrieves a company.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves a page of companies.
	ListCompanies(ctx context.Context, params dto.ListCompaniesParams) ([]domain.Company, error)
}
