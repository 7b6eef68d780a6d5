package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to set up a new company.
type CreateCompanyRequest struct {
	Name               string `json:"name" binding:"required"`
	GSTIN              string `json:"gstin" binding:"omitempty,len=15,alphanum"`
	FinancialYearStart string `json:"financialYearStart" binding:"required,datetime=2006-01-02"`
	BooksBeginFrom     string `json:"booksBeginFrom" binding:"omitempty,datetime=2006-01-02"` // Defaults to FinancialYearStart
	Address            string `json:"address"`
}

// ListCompaniesParams defines the query parameters for listing companies.
type ListCompaniesParams struct {
	PageParams
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	GSTIN              string    `json:"gstin,omitempty"`
	FinancialYearStart string    `json:"financialYearStart"`
	BooksBeginFrom     string    `json:"booksBeginFrom"`
	Address            string    `json:"address,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:          c.CompanyID,
		Name:               c.Name,
		GSTIN:              c.GSTIN,
		FinancialYearStart: FormatDate(c.FinancialYearStart),
		BooksBeginFrom:     FormatDate(c.BooksBeginFrom),
		Address:            c.Address,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
	}
}

// ToListCompanyResponse converts a slice of companies.
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}
