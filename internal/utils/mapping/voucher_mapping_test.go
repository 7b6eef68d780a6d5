package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/SscSPs/erp_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelVoucher_NumbersEntryLines(t *testing.T) {
	v := domain.Voucher{
		VoucherID:   "v1",
		VoucherType: domain.Journal,
		Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Entries: []domain.VoucherEntry{
			{LedgerID: "a", Type: domain.Debit, Amount: decimal.NewFromInt(10)},
			{LedgerID: "b", Type: domain.Credit, Amount: decimal.NewFromInt(10)},
		},
	}

	m, entries, err := ToModelVoucher(v)
	require.NoError(t, err)
	assert.Nil(t, m.GSTDetails, "no gst details should stay NULL")
	assert.JSONEq(t, `[]`, string(m.Items))
	assert.JSONEq(t, `[]`, string(m.EditHistory))
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].LineNo)
	assert.Equal(t, 2, entries[1].LineNo)
	assert.Equal(t, "v1", entries[1].VoucherID)
	assert.Equal(t, "Cr", entries[1].EntryType)
}

func TestToDomainVoucher_DecodesJSONColumns(t *testing.T) {
	m := models.Voucher{
		VoucherID:   "v1",
		VoucherType: "Sales",
		GSTDetails:  []byte(`{"taxableAmount":"50000","cgst":"4500","sgst":"4500","igst":"0","totalTax":"9000"}`),
		Items:       []byte(`[{"inventoryItemID":"i1","quantity":"2","rate":"100","amount":"200","discount":"0"}]`),
	}
	entries := []models.VoucherEntry{{LedgerID: "a", EntryType: "Dr", Amount: decimal.NewFromInt(5)}}

	v, err := ToDomainVoucher(m, entries)
	require.NoError(t, err)
	require.NotNil(t, v.GSTDetails)
	assert.True(t, v.GSTDetails.TotalTax.Equal(decimal.NewFromInt(9000)))
	require.Len(t, v.Items, 1)
	assert.True(t, v.Items[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.Empty(t, v.EditHistory)
	assert.Equal(t, domain.Debit, v.Entries[0].Type)
}

func TestToDomainVoucher_BadJSON(t *testing.T) {
	_, err := ToDomainVoucher(models.Voucher{Items: []byte(`{`)}, nil)
	assert.Error(t, err)
}

func TestLedgerMapping_DefaultsBalanceSide(t *testing.T) {
	m, err := ToModelLedger(domain.Ledger{LedgerID: "l1"})
	require.NoError(t, err)
	assert.Equal(t, "Dr", m.OpeningBalanceType)
	assert.Equal(t, "Dr", m.CurrentBalanceType)
	assert.Nil(t, m.ContactDetails)

	m.BankDetails = []byte(`{"ifsc":"HDFC0001"}`)
	d, err := ToDomainLedger(m)
	require.NoError(t, err)
	require.NotNil(t, d.BankDetails)
	assert.Equal(t, "HDFC0001", d.BankDetails.IFSC)
	assert.Nil(t, d.ContactDetails)
}
