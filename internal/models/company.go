package models

import "time"

// Company represents a row in the companies table.
type Company struct {
	CompanyID          string    `db:"company_id"`
	Name               string    `db:"name"`
	GSTIN              string    `db:"gstin"`
	FinancialYearStart time.Time `db:"financial_year_start"`
	BooksBeginFrom     time.Time `db:"books_begin_from"`
	Address            string    `db:"address"`
	AuditFields
}
