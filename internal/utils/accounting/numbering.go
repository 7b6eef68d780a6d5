package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// VoucherTypePrefix is the first three letters of the voucher type, uppercased.
func VoucherTypePrefix(t domain.VoucherType) string {
	prefix := strings.ToUpper(string(t))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return prefix
}

// SequencePeriod is the YYYYMM key that voucher sequences restart on.
func SequencePeriod(date time.Time) string {
	return date.Format("200601")
}

// MonthBounds returns the first and last calendar day of date's month.
func MonthBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 1, -1)
}

// GenerateVoucherNumber formats "<PREFIX>-<YYYYMM>-<seq>" where seq is existingCount+1 padded to four digits.
func GenerateVoucherNumber(t domain.VoucherType, date time.Time, existingCount int) string {
	return fmt.Sprintf("%s-%s-%04d", VoucherTypePrefix(t), SequencePeriod(date), existingCount+1)
}
