package mapping

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
)

// ToModelVoucher converts a domain Voucher into its header row and entry rows.
func ToModelVoucher(d domain.Voucher) (models.Voucher, []models.VoucherEntry, error) {
	m := models.Voucher{
		VoucherID:     d.VoucherID,
		CompanyID:     d.CompanyID,
		VoucherNumber: d.VoucherNumber,
		VoucherType:   string(d.VoucherType),
		VoucherDate:   d.Date,
		Narration:     d.Narration,
		PartyLedgerID: d.PartyLedgerID,
		TotalAmount:   d.TotalAmount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}

	var err error
	if d.GSTDetails != nil {
		if m.GSTDetails, err = marshalJSONB(d.GSTDetails); err != nil {
			return models.Voucher{}, nil, err
		}
	}
	items := d.Items
	if items == nil {
		items = []domain.VoucherItem{}
	}
	if m.Items, err = marshalJSONB(items); err != nil {
		return models.Voucher{}, nil, err
	}
	history := d.EditHistory
	if history == nil {
		history = []domain.EditRecord{}
	}
	if m.EditHistory, err = marshalJSONB(history); err != nil {
		return models.Voucher{}, nil, err
	}

	entries := make([]models.VoucherEntry, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = models.VoucherEntry{
			VoucherID: d.VoucherID,
			LineNo:    i + 1,
			LedgerID:  e.LedgerID,
			EntryType: string(e.Type),
			Amount:    e.Amount,
		}
	}
	return m, entries, nil
}

// ToDomainVoucher converts a voucher row and its entry rows into a domain Voucher.
// Entries are expected in line order.
func ToDomainVoucher(m models.Voucher, entries []models.VoucherEntry) (domain.Voucher, error) {
	d := domain.Voucher{
		VoucherID:     m.VoucherID,
		CompanyID:     m.CompanyID,
		VoucherNumber: m.VoucherNumber,
		VoucherType:   domain.VoucherType(m.VoucherType),
		Date:          m.VoucherDate,
		Narration:     m.Narration,
		PartyLedgerID: m.PartyLedgerID,
		TotalAmount:   m.TotalAmount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if len(m.GSTDetails) > 0 && string(m.GSTDetails) != "null" {
		var gst domain.GSTDetails
		if err := unmarshalJSONB(m.GSTDetails, &gst); err != nil {
			return domain.Voucher{}, err
		}
		d.GSTDetails = &gst
	}
	if err := unmarshalJSONB(m.Items, &d.Items); err != nil {
		return domain.Voucher{}, err
	}
	if err := unmarshalJSONB(m.EditHistory, &d.EditHistory); err != nil {
		return domain.Voucher{}, err
	}

	d.Entries = make([]domain.VoucherEntry, len(entries))
	for i, e := range entries {
		d.Entries[i] = domain.VoucherEntry{
			LedgerID: e.LedgerID,
			Type:     domain.BalanceType(e.EntryType),
			Amount:   e.Amount,
		}
	}
	return d, nil
}
