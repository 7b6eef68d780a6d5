package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger
func ToModelLedger(d domain.Ledger) (models.Ledger, error) {
	opening := d.Opening()
	current := d.CurrentBalance
	if !current.Type.IsValid() {
		current.Type = domain.Debit
	}
	m := models.Ledger{
		LedgerID:           d.LedgerID,
		CompanyID:          d.CompanyID,
		GroupID:            d.GroupID,
		Name:               d.Name,
		OpeningBalance:     opening.Amount,
		OpeningBalanceType: string(opening.Type),
		OpeningBalanceDate: d.OpeningBalance.Date,
		CurrentBalance:     current.Amount,
		CurrentBalanceType: string(current.Type),
		GSTApplicable:      d.GSTApplicable,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
	var err error
	if d.ContactDetails != nil {
		if m.ContactDetails, err = marshalJSONB(d.ContactDetails); err != nil {
			return models.Ledger{}, err
		}
	}
	if d.BankDetails != nil {
		if m.BankDetails, err = marshalJSONB(d.BankDetails); err != nil {
			return models.Ledger{}, err
		}
	}
	return m, nil
}

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) (domain.Ledger, error) {
	d := domain.Ledger{
		LedgerID:  m.LedgerID,
		CompanyID: m.CompanyID,
		GroupID:   m.GroupID,
		Name:      m.Name,
		OpeningBalance: domain.OpeningBalance{
			Amount: m.OpeningBalance,
			Type:   domain.BalanceType(m.OpeningBalanceType),
			Date:   m.OpeningBalanceDate,
		},
		CurrentBalance: domain.Balance{
			Amount: m.CurrentBalance,
			Type:   domain.BalanceType(m.CurrentBalanceType),
		},
		GSTApplicable: m.GSTApplicable,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if len(m.ContactDetails) > 0 {
		var cd domain.ContactDetails
		if err := unmarshalJSONB(m.ContactDetails, &cd); err != nil {
			return domain.Ledger{}, err
		}
		d.ContactDetails = &cd
	}
	if len(m.BankDetails) > 0 {
		var bd domain.BankDetails
		if err := unmarshalJSONB(m.BankDetails, &bd); err != nil {
			return domain.Ledger{}, err
		}
		d.BankDetails = &bd
	}
	return d, nil
}
