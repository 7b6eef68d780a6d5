package dto

// ReportParams defines the query parameters shared by the reports.
// Each report reads the fields it needs:
//
//	trial-balance, balance-sheet, receivables, payables: asOf
//	profit-loss: startDate, endDate
//	cash-book: ledgerId (optional), startDate, endDate
//	bank-book: ledgerId, startDate, endDate
//	day-book: date
type ReportParams struct {
	AsOf      string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	LedgerID  string `form:"ledgerId"`
}
