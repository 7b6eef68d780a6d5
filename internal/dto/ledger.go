package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalanceRequest is the balance a ledger is created with.
type OpeningBalanceRequest struct {
	Amount decimal.Decimal    `json:"amount"`
	Type   domain.BalanceType `json:"type" binding:"omitempty,drcr"`                // Defaults to Dr
	Date   string             `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to the books-begin date
}

// CreateLedgerRequest defines the data needed to create a ledger.
type CreateLedgerRequest struct {
	Name           string                 `json:"name" binding:"required"`
	GroupID        string                 `json:"groupID" binding:"required"`
	OpeningBalance *OpeningBalanceRequest `json:"openingBalance"`
	ContactDetails *domain.ContactDetails `json:"contactDetails"`
	BankDetails    *domain.BankDetails    `json:"bankDetails"`
	GSTApplicable  bool                   `json:"gstApplicable"`
}

// UpdateLedgerRequest defines the data allowed for updating a ledger.
type UpdateLedgerRequest struct {
	Name           *string                `json:"name" binding:"omitempty,min=1"`
	GroupID        *string                `json:"groupID"`
	OpeningBalance *OpeningBalanceRequest `json:"openingBalance"`
	ContactDetails *domain.ContactDetails `json:"contactDetails"`
	BankDetails    *domain.BankDetails    `json:"bankDetails"`
	GSTApplicable  *bool                  `json:"gstApplicable"`
}

// ListLedgersParams defines the query parameters for listing ledgers.
type ListLedgersParams struct {
	GroupID string `form:"groupId"`
}

// StatementParams defines the query parameters for a ledger statement.
type StatementParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// OpeningBalanceResponse is the opening balance of a ledger.
type OpeningBalanceResponse struct {
	Amount decimal.Decimal    `json:"amount"`
	Type   domain.BalanceType `json:"type"`
	Date   string             `json:"date"`
}

// LedgerResponse defines the data returned for a ledger.
type LedgerResponse struct {
	LedgerID       string                 `json:"ledgerID"`
	CompanyID      string                 `json:"companyID"`
	GroupID        string                 `json:"groupID"`
	Name           string                 `json:"name"`
	OpeningBalance OpeningBalanceResponse `json:"openingBalance"`
	CurrentBalance domain.Balance         `json:"currentBalance"`
	ContactDetails *domain.ContactDetails `json:"contactDetails,omitempty"`
	BankDetails    *domain.BankDetails    `json:"bankDetails,omitempty"`
	GSTApplicable  bool                   `json:"gstApplicable"`
	LastUpdatedAt  time.Time              `json:"lastUpdatedAt"`
}

// ToLedgerResponse converts a domain.Ledger to LedgerResponse DTO
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:  l.LedgerID,
		CompanyID: l.CompanyID,
		GroupID:   l.GroupID,
		Name:      l.Name,
		OpeningBalance: OpeningBalanceResponse{
			Amount: l.OpeningBalance.Amount,
			Type:   l.Opening().Type,
			Date:   FormatDate(l.OpeningBalance.Date),
		},
		CurrentBalance: l.CurrentBalance,
		ContactDetails: l.ContactDetails,
		BankDetails:    l.BankDetails,
		GSTApplicable:  l.GSTApplicable,
		LastUpdatedAt:  l.LastUpdatedAt,
	}
}

// ToListLedgerResponse converts a slice of ledgers.
func ToListLedgerResponse(ledgers []domain.Ledger) []LedgerResponse {
	out := make([]LedgerResponse, len(ledgers))
	for i := range ledgers {
		out[i] = ToLedgerResponse(&ledgers[i])
	}
	return out
}
