package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:          d.CompanyID,
		Name:               d.Name,
		GSTIN:              d.GSTIN,
		FinancialYearStart: d.FinancialYearStart,
		BooksBeginFrom:     d.BooksBeginFrom,
		Address:            d.Address,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		GSTIN:              m.GSTIN,
		FinancialYearStart: m.FinancialYearStart,
		BooksBeginFrom:     m.BooksBeginFrom,
		Address:            m.Address,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
