// Package core holds the expense domain: the entity itself, the category
// registry, month bucketing and the aggregation functions over collections.
//
// This file covers money parsing and formatting. Amounts are kept in cents
// to avoid floating-point drift; floats appear only at the serialization and
// display boundaries.
package core

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseDecimalToCents converts a user-supplied decimal string to cents.
//
// Both dot (12.34) and comma (12,34) separators are accepted; a third decimal
// digit is rounded half-up. Only strictly positive amounts are valid.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// MoneyFromUnits converts a currency-unit value (e.g. the JSON number 25.5)
// to Money, rounding half-up to whole cents.
func MoneyFromUnits(units float64) Money {
	cents := decimal.NewFromFloat(units).Mul(decimal.NewFromInt(100)).Round(0)
	return Money{Cents: cents.IntPart()}
}

// Units returns the amount in currency units for serialization and display.
func (m Money) Units() float64 {
	f, _ := decimal.NewFromInt(m.Cents).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Format renders the amount the way the dashboard shows it: "R$ 1.234,56",
// dot-grouped thousands and a decimal comma.
func (m Money) Format() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	units := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}
	s := "R$ " + grouped.String() + "," + pad2(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
