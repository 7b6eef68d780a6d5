package accounting

import (
	"testing"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateVoucherNumber(t *testing.T) {
	tests := []struct {
		voucherType domain.VoucherType
		date        string
		existing    int
		want        string
	}{
		{domain.Sales, "2024-04-15", 2, "SAL-202404-0003"},
		{domain.Payment, "2024-12-31", 0, "PAY-202412-0001"},
		{domain.CreditNote, "2025-01-01", 41, "CRE-202501-0042"},
		{domain.DebitNote, "2025-02-10", 9998, "DEB-202502-9999"},
		{domain.Contra, "2025-02-10", 9999, "CON-202502-10000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateVoucherNumber(tt.voucherType, day(tt.date), tt.existing))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(day("2024-02-15"))

	assert.Equal(t, day("2024-02-01"), start)
	assert.Equal(t, day("2024-02-29"), end)
}
