// Package format renders billing amounts and tables for presentation and export.
//
// Every amount is rounded half-up (half away from zero) to the cent before it
// is rendered, so the same value prints the same way on screen, in CSV, in
// PDF and in words.
package format

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	CurrencySymbol = "$"
	centDigits     = 2
)

var ErrNonFiniteAmount = errors.New("amount is not a finite number")

// RoundCents rounds to two decimals, half away from zero.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(centDigits)
}

// FormatCurrency renders amount as "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	r := RoundCents(amount)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.Truncate(0)
	cents := r.Sub(whole).Shift(centDigits).IntPart()

	// Printers keep internal buffers; one per call keeps this reentrant.
	p := message.NewPrinter(language.English)
	return fmt.Sprintf("%s%s%s.%02d", sign, CurrencySymbol, p.Sprintf("%d", whole.IntPart()), cents)
}

// FormatAmount renders amount with exactly two fraction digits and no symbol
// or grouping, the shape used in CSV and spreadsheet cells.
func FormatAmount(amount decimal.Decimal) string {
	return RoundCents(amount).StringFixed(centDigits)
}

// AmountFromFloat converts a float reported by an external system into a
// decimal amount, rejecting NaN and infinities.
func AmountFromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, ErrNonFiniteAmount
	}
	return RoundCents(decimal.NewFromFloat(v)), nil
}
