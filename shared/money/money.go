// Package money keeps currency arithmetic in decimal so that per-group subtotals
// and their aggregate are rounded the same way.
package money

import (
	"lodgehub/shared/constant"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to two decimal places.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(constant.MoneyDecimals)
}

// FromFloat converts an API amount into a decimal rounded to cents.
func FromFloat(value float64) decimal.Decimal {
	return Round2(decimal.NewFromFloat(value))
}

// ToFloat converts a decimal back to the float used on the wire and in storage.
func ToFloat(value decimal.Decimal) float64 {
	return Round2(value).InexactFloat64()
}

// Percent returns round2(base * rate / 100).
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(rate).Div(hundred))
}

// Sum adds values, rounding after every addition.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero

	for _, value := range values {
		total = Round2(total.Add(value))
	}

	return total
}
