package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidators(v))

	type probe struct {
		Side   string `validate:"drcr"`
		Type   string `validate:"vouchertype"`
		Nature string `validate:"nature"`
	}

	assert.NoError(t, v.Struct(probe{Side: "Dr", Type: "Sales", Nature: "Assets"}))
	assert.Error(t, v.Struct(probe{Side: "DR", Type: "Sales", Nature: "Assets"}))
	assert.Error(t, v.Struct(probe{Side: "Cr", Type: "Invoice", Nature: "Assets"}))
	assert.Error(t, v.Struct(probe{Side: "Cr", Type: "Receipt", Nature: "Equity"}))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.NotNil(t, p.From)
	require.NotNil(t, p.To)
	assert.Equal(t, "2024-04-01", FormatDate(*p.From))

	p, err = ParsePeriod("", "")
	require.NoError(t, err)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)

	_, err = ParsePeriod("2024-05-01", "2024-04-01")
	assert.Error(t, err)

	_, err = ParsePeriod("01/04/2024", "")
	assert.Error(t, err)
}
