package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/core/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany_SeedsGroupsInOneTransaction(t *testing.T) {
	repo := new(MockCompanyRepository)
	seeder := new(MockGroupSeeder)
	tx := &MockTxManager{}
	svc := services.NewCompanyService(repo, tx, seeder)

	repo.On("SaveCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Shree Traders" && c.BooksBeginFrom.Equal(c.FinancialYearStart)
	})).Return(nil).Once()
	seeder.On("SeedDefaultGroups", mock.Anything, mock.AnythingOfType("domain.Company"), "user-1").
		Return([]domain.Group{{Name: domain.GroupCurrentAssets}}, nil).Once()

	company, err := svc.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:               "Shree Traders",
		FinancialYearStart: "2024-04-01",
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), company.FinancialYearStart)
	assert.Equal(t, "user-1", company.CreatedBy)
	assert.Equal(t, 1, tx.Calls)
	repo.AssertExpectations(t)
	seeder.AssertExpectations(t)
}

func TestCreateCompany_SeedFailureRollsBack(t *testing.T) {
	repo := new(MockCompanyRepository)
	seeder := new(MockGroupSeeder)
	tx := &MockTxManager{}
	svc := services.NewCompanyService(repo, tx, seeder)

	repo.On("SaveCompany", mock.Anything, mock.Anything).Return(nil).Once()
	seeder.On("SeedDefaultGroups", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	company, err := svc.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:               "Shree Traders",
		FinancialYearStart: "2024-04-01",
	}, "user-1")

	assert.Nil(t, company)
	assert.Error(t, err)
	assert.Equal(t, 1, tx.Rollbacks)
}

func TestCreateCompany_BooksBeforeFinancialYear(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := services.NewCompanyService(repo, &MockTxManager{}, new(MockGroupSeeder))

	_, err := svc.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:               "Shree Traders",
		FinancialYearStart: "2024-04-01",
		BooksBeginFrom:     "2024-03-31",
	}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveCompany", mock.Anything, mock.Anything)
}

func TestListCompanies_UsesDefaultPageSize(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := services.NewCompanyService(repo, &MockTxManager{}, new(MockGroupSeeder), services.WithCompanyDefaultPageSize(5))
	repo.On("ListCompanies", mock.Anything, 5, 5).Return(nil, nil).Once()

	companies, err := svc.ListCompanies(context.Background(), dto.ListCompaniesParams{PageParams: dto.PageParams{Page: 2}})

	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
	repo.AssertExpectations(t)
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := services.NewCompanyService(repo, &MockTxManager{}, new(MockGroupSeeder))
	repo.On("FindCompanyByID", mock.Anything, "c1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetCompanyByID(context.Background(), "c1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
