package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Scales money and stock quantities are stored at.
const (
	AmountPlaces   = 2
	QuantityPlaces = 3
)

// Tolerance is the largest debit/credit difference still treated as balanced.
var Tolerance = decimal.New(1, -AmountPlaces)

// RoundAmount rounds a money value to the scale it is stored at.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// RoundVoucher rounds every amount and quantity on v to its stored scale, so the
// voucher that is validated is the one that is persisted.
func RoundVoucher(v *domain.Voucher) {
	for i := range v.Entries {
		v.Entries[i].Amount = RoundAmount(v.Entries[i].Amount)
	}
	for i := range v.Items {
		it := &v.Items[i]
		it.Quantity = it.Quantity.Round(QuantityPlaces)
		it.Rate = RoundAmount(it.Rate)
		it.Amount = RoundAmount(it.Amount)
		it.Discount = RoundAmount(it.Discount)
	}
	if g := v.GSTDetails; g != nil {
		g.TaxableAmount = RoundAmount(g.TaxableAmount)
		g.CGST = RoundAmount(g.CGST)
		g.SGST = RoundAmount(g.SGST)
		g.IGST = RoundAmount(g.IGST)
		g.TotalTax = RoundAmount(g.TotalTax)
	}
	v.TotalAmount = RoundAmount(v.TotalAmount)
}

// ErrImbalancedEntries is returned when a voucher's debits and credits differ by more than Tolerance.
var ErrImbalancedEntries = fmt.Errorf("%w: voucher debit and credit totals do not match", apperrors.ErrValidation)

// WithinTolerance reports whether a and b differ by no more than Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// Totals sums the entries by side at the stored scale.
func Totals(entries []domain.VoucherEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case domain.Debit:
			debit = debit.Add(RoundAmount(e.Amount))
		case domain.Credit:
			credit = credit.Add(RoundAmount(e.Amount))
		}
	}
	return debit, credit
}

// ValidateVoucherBalance fails with ErrImbalancedEntries iff |debit - credit| > Tolerance.
func ValidateVoucherBalance(entries []domain.VoucherEntry) error {
	debit, credit := Totals(entries)
	if !WithinTolerance(debit, credit) {
		return fmt.Errorf("%w: debit %s, credit %s", ErrImbalancedEntries, debit.StringFixed(2), credit.StringFixed(2))
	}
	return nil
}

// ValidateVoucher checks the structure of a voucher and that its entries balance.
func ValidateVoucher(v domain.Voucher) error {
	if !v.VoucherType.IsValid() {
		return fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, v.VoucherType)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("%w: voucher date is required", apperrors.ErrValidation)
	}
	if len(v.Entries) < 2 {
		return fmt.Errorf("%w: voucher must have at least two entries", apperrors.ErrValidation)
	}
	for i, e := range v.Entries {
		if e.LedgerID == "" {
			return fmt.Errorf("%w: entry %d has no ledger", apperrors.ErrValidation, i+1)
		}
		if !e.Type.IsValid() {
			return fmt.Errorf("%w: entry %d has invalid type %q", apperrors.ErrValidation, i+1, e.Type)
		}
		if !RoundAmount(e.Amount).IsPositive() {
			return fmt.Errorf("%w: entry %d amount must be at least 0.01", apperrors.ErrValidation, i+1)
		}
	}
	for i, item := range v.Items {
		if item.InventoryItemID == "" {
			return fmt.Errorf("%w: item %d has no inventory item", apperrors.ErrValidation, i+1)
		}
		if !item.Quantity.Round(QuantityPlaces).IsPositive() {
			return fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrValidation, i+1)
		}
		if item.Rate.IsNegative() || item.Amount.IsNegative() || item.Discount.IsNegative() {
			return fmt.Errorf("%w: item %d has a negative amount", apperrors.ErrValidation, i+1)
		}
	}
	if g := v.GSTDetails; g != nil {
		for _, amt := range []decimal.Decimal{g.TaxableAmount, g.CGST, g.SGST, g.IGST, g.TotalTax} {
			if amt.IsNegative() {
				return fmt.Errorf("%w: gst amounts cannot be negative", apperrors.ErrValidation)
			}
		}
	}
	return ValidateVoucherBalance(v.Entries)
}
