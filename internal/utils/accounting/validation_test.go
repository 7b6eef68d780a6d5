package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateVoucherBalance(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.VoucherEntry
		wantErr bool
	}{
		{"balanced", []domain.VoucherEntry{dr("a", "100"), cr("b", "100")}, false},
		{"within tolerance", []domain.VoucherEntry{dr("a", "100.01"), cr("b", "100")}, false},
		{"just over tolerance", []domain.VoucherEntry{dr("a", "100.02"), cr("b", "100")}, true},
		{"credit heavy", []domain.VoucherEntry{dr("a", "10"), cr("b", "20")}, true},
		{"split credits", []domain.VoucherEntry{dr("a", "59000"), cr("b", "50000"), cr("c", "4500"), cr("d", "4500")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoucherBalance(tt.entries)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrImbalancedEntries)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVoucher_Structure(t *testing.T) {
	valid := func() domain.Voucher {
		v := voucher("v", "", "2024-04-15", dr("a", "100"), cr("b", "100"))
		v.VoucherType = domain.Sales
		return v
	}

	tests := []struct {
		name   string
		mutate func(v *domain.Voucher)
	}{
		{"unknown type", func(v *domain.Voucher) { v.VoucherType = "Memo" }},
		{"single entry", func(v *domain.Voucher) { v.Entries = v.Entries[:1] }},
		{"zero amount", func(v *domain.Voucher) { v.Entries[0].Amount = dec("0") }},
		{"bad side", func(v *domain.Voucher) { v.Entries[0].Type = "Dx" }},
		{"missing ledger", func(v *domain.Voucher) { v.Entries[1].LedgerID = "" }},
		{"zero quantity item", func(v *domain.Voucher) {
			v.Items = []domain.VoucherItem{{InventoryItemID: "i", Quantity: dec("0")}}
		}},
		{"negative gst", func(v *domain.Voucher) { v.GSTDetails = &domain.GSTDetails{CGST: dec("-1")} }},
	}

	assert.NoError(t, ValidateVoucher(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid()
			tt.mutate(&v)
			err := ValidateVoucher(v)
			assert.True(t, errors.Is(err, apperrors.ErrValidation), "expected validation error, got %v", err)
		})
	}
}

func TestValidateVoucher_ChecksStoredScale(t *testing.T) {
	// each 10.005 is stored as 10.01, so the stored voucher would be 0.02 out
	v := voucher("v", "", "2024-04-15", dr("a", "10.005"), dr("b", "10.005"), cr("c", "20.00"))
	v.VoucherType = domain.Journal
	assert.ErrorIs(t, ValidateVoucher(v), ErrImbalancedEntries)

	// 0.004 is stored as 0.00
	dust := voucher("v", "", "2024-04-15", dr("a", "0.004"), cr("b", "0.004"))
	dust.VoucherType = domain.Journal
	assert.ErrorIs(t, ValidateVoucher(dust), apperrors.ErrValidation)
}

func TestRoundVoucher(t *testing.T) {
	v := voucher("v", "", "2024-04-15", dr("a", "100.004"), cr("b", "100.005"))
	v.Items = []domain.VoucherItem{{InventoryItemID: "i", Quantity: dec("1.2345"), Rate: dec("9.999"), Amount: dec("12.3449")}}
	v.GSTDetails = &domain.GSTDetails{TaxableAmount: dec("12.345"), CGST: dec("1.111")}

	RoundVoucher(&v)

	assert.Equal(t, "100", v.Entries[0].Amount.String())
	assert.Equal(t, "100.01", v.Entries[1].Amount.String())
	assert.Equal(t, "1.235", v.Items[0].Quantity.String())
	assert.Equal(t, "10", v.Items[0].Rate.String())
	assert.Equal(t, "12.34", v.Items[0].Amount.String())
	assert.Equal(t, "12.35", v.GSTDetails.TaxableAmount.String())
	assert.Equal(t, "1.11", v.GSTDetails.CGST.String())
}
