package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "R$ 0,00"},
		{in: "0.5", want: "R$ 0,50"},
		{in: "800", want: "R$ 800,00"},
		{in: "1200.00", want: "R$ 1.200,00"},
		{in: "1234.567", want: "R$ 1.234,57"},
		{in: "1000000", want: "R$ 1.000.000,00"},
		{in: "-5", want: "-R$ 5,00"},
	}

	for _, tt := range tests {
		got := FormatBRL(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "FormatBRL(%s)", tt.in)
	}
}

func TestPlainBRL(t *testing.T) {
	assert.Equal(t, "999,99", PlainBRL(decimal.RequireFromString("999.99")))
	assert.Equal(t, "12.345,00", PlainBRL(decimal.NewFromInt(12345)))
}

func TestCSVAmount(t *testing.T) {
	assert.Equal(t, "1200,00", CSVAmount(decimal.NewFromInt(1200)))
	assert.Equal(t, "0,10", CSVAmount(decimal.RequireFromString("0.1")))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().Equal(decimal.Zero))

	total := Sum(decimal.RequireFromString("800.00"), decimal.RequireFromString("1200.00"))
	assert.True(t, total.Equal(decimal.NewFromInt(2000)))
}
