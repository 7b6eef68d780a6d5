package dto

import (
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain validation tags used in binding rules.
//
//	drcr        - "Dr" or "Cr"
//	vouchertype - one of the supported voucher types
//	nature      - one of the group natures
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("drcr", func(fl validator.FieldLevel) bool {
		return domain.BalanceType(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("vouchertype", func(fl validator.FieldLevel) bool {
		return domain.VoucherType(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("nature", func(fl validator.FieldLevel) bool {
		return domain.GroupNature(fl.Field().String()).IsValid()
	})
}
