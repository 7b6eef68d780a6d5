package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger_app/internal/apperrors"
	"github.com/SscSPs/erp_ledger_app/internal/core/domain"
)

// SuccessResponse is the envelope of every successful API reply.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope of every failed API reply.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// PageParams are the common page/limit query parameters.
type PageParams struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return t, nil
}

// ParseOptionalDate parses value when it is non-empty.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParsePeriod parses an optional start/end date pair.
func ParsePeriod(startDate, endDate string) (domain.Period, error) {
	from, err := ParseOptionalDate("startDate", startDate)
	if err != nil {
		return domain.Period{}, err
	}
	to, err := ParseOptionalDate("endDate", endDate)
	if err != nil {
		return domain.Period{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return domain.Period{}, fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidation)
	}
	return domain.Period{From: from, To: to}, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
