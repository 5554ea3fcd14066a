package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents. Ties round away from zero
// (half-up), so $2.005 becomes $2.01 and -$2.005 becomes -$2.01.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the rounded amount with two fixed decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount for display: half-up rounded to cents,
// thousands-grouped, with a dollar sign prefix. The sign stays with the
// digits, so negative amounts render as "$-1,234.57".
func (m Money) Format() string {
	return "$" + GroupThousands(m.Round().String())
}

// GroupThousands inserts comma separators into the integer part of a
// plain decimal string such as "-1234567.89".
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
