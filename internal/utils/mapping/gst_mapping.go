package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelGSTEntry converts a domain GSTEntry to a model GSTEntry
func ToModelGSTEntry(d domain.GSTEntry) (models.GSTEntry, error) {
	lines := d.LineItems
	if lines == nil {
		lines = []domain.GSTLineItem{}
	}
	raw, err := marshalJSONB(lines)
	if err != nil {
		return models.GSTEntry{}, err
	}
	return models.GSTEntry{
		GSTEntryID:    d.GSTEntryID,
		CompanyID:     d.CompanyID,
		VoucherID:     d.VoucherID,
		VoucherNumber: d.VoucherNumber,
		EntryDate:     d.Date,
		VoucherType:   string(d.VoucherType),
		PartyLedgerID: d.PartyLedgerID,
		GSTIN:         d.GSTIN,
		TaxableAmount: d.TaxableAmount,
		CGST:          d.CGST,
		SGST:          d.SGST,
		IGST:          d.IGST,
		TotalTax:      d.TotalTax,
		LineItems:     raw,
		CreatedAt:     d.CreatedAt,
	}, nil
}

// ToDomainGSTEntry converts a model GSTEntry to a domain GSTEntry
func ToDomainGSTEntry(m models.GSTEntry) (domain.GSTEntry, error) {
	d := domain.GSTEntry{
		GSTEntryID:    m.GSTEntryID,
		CompanyID:     m.CompanyID,
		VoucherID:     m.VoucherID,
		VoucherNumber: m.VoucherNumber,
		Date:          m.EntryDate,
		VoucherType:   domain.VoucherType(m.VoucherType),
		PartyLedgerID: m.PartyLedgerID,
		GSTIN:         m.GSTIN,
		TaxableAmount: m.TaxableAmount,
		CGST:          m.CGST,
		SGST:          m.SGST,
		IGST:          m.IGST,
		TotalTax:      m.TotalTax,
		CreatedAt:     m.CreatedAt,
	}
	if err := unmarshalJSONB(m.LineItems, &d.LineItems); err != nil {
		return domain.GSTEntry{}, err
	}
	return d, nil
}
