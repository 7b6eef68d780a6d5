package domain

import "time"

// Company is the owner of a chart of accounts and every voucher posted to it.
type Company struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	GSTIN              string    `json:"gstin,omitempty"`
	FinancialYearStart time.Time `json:"financialYearStart"`
	BooksBeginFrom     time.Time `json:"booksBeginFrom"`
	Address            string    `json:"address,omitempty"`
	AuditFields
}
