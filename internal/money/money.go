package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders value as pt-BR currency with two decimals and "."
// grouping: R$ 1.234,56. Works on the decimal string, never on a float.
func FormatBRL(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-R$ " + PlainBRL(value.Neg())
	}
	return "R$ " + PlainBRL(value)
}

// PlainBRL is FormatBRL without the symbol ("1.234,56").
func PlainBRL(value decimal.Decimal) string {
	neg := value.IsNegative()
	s := value.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)

	return b.String()
}

// CSV cells keep the raw amount with a decimal comma and no grouping.
func CSVAmount(value decimal.Decimal) string {
	return strings.Replace(value.StringFixed(2), ".", ",", 1)
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
