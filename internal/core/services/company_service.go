package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type companyService struct {
	BaseService
	companyRepo     portsrepo.CompanyRepositoryFacade
	txManager       portsrepo.TransactionManager
	groupSeeder     portssvc.GroupSeederSvc
	defaultPageSize int
}

// CompanyServiceOption configures the company service
type CompanyServiceOption func(*companyService)

// WithCompanyDefaultPageSize sets the page size used when a listing gives none.
func WithCompanyDefaultPageSize(size int) CompanyServiceOption {
	return func(s *companyService) {
		if size > 0 {
			s.defaultPageSize = size
		}
	}
}

// NewCompanyService creates the company service. Company creation seeds the
// chart of accounts through groupSeeder in the same transaction.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade, txManager portsrepo.TransactionManager, groupSeeder portssvc.GroupSeederSvc, options ...CompanyServiceOption) portssvc.CompanySvcFacade {
	svc := &companyService{
		companyRepo:     repo,
		txManager:       txManager,
		groupSeeder:     groupSeeder,
		defaultPageSize: 20,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	fyStart, err := dto.ParseDate("financialYearStart", req.FinancialYearStart)
	if err != nil {
		return nil, err
	}
	booksBegin := fyStart
	if req.BooksBeginFrom != "" {
		if booksBegin, err = dto.ParseDate("booksBeginFrom", req.BooksBeginFrom); err != nil {
			return nil, err
		}
		if booksBegin.Before(fyStart) {
			return nil, fmt.Errorf("%w: booksBeginFrom is before financialYearStart", apperrors.ErrValidation)
		}
	}

	company := domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               req.Name,
		GSTIN:              req.GSTIN,
		FinancialYearStart: fyStart,
		BooksBeginFrom:     booksBegin,
		Address:            req.Address,
		AuditFields:        newAuditFields(time.Now().UTC(), userID),
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}
		if _, err := s.groupSeeder.SeedDefaultGroups(ctx, company, userID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("user_id", userID))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("company " + companyID)
		}
		s.LogError(ctx, err, "Failed to get company", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, params dto.ListCompaniesParams) ([]domain.Company, error) {
	page := pagination.Normalize(params.Page, params.Limit, s.defaultPageSize)
	companies, err := s.companyRepo.ListCompanies(ctx, page.Limit, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}
