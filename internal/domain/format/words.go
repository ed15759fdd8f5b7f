package format

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrAmountTooLarge = errors.New("amount exceeds 999,999,999,999.99")
)

var (
	smallNumbers = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tensNames = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	// short scale, indexed by the position of a three digit group
	scaleNames = []string{"", "Thousand", "Million", "Billion"}

	maxWordsAmount = decimal.New(1, 12)
)

// AmountToWords spells the amount for the invoice footer, e.g.
// "One Thousand Dollars Only" or
// "Twelve Dollars and Fifty Cents Only".
func AmountToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	r := RoundCents(amount)
	whole := r.Truncate(0)
	if whole.GreaterThanOrEqual(maxWordsAmount) {
		return "", ErrAmountTooLarge
	}
	dollars := whole.IntPart()
	cents := r.Sub(whole).Shift(centDigits).IntPart()

	var b strings.Builder
	if dollars == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(integerToWords(dollars))
	}
	b.WriteString(pluralize(" Dollar", dollars))
	if cents > 0 {
		b.WriteString(" and ")
		b.WriteString(integerToWords(cents))
		b.WriteString(pluralize(" Cent", cents))
	}
	b.WriteString(" Only")
	return b.String(), nil
}

func pluralize(unit string, n int64) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// integerToWords handles 1 <= n < 10^12.
func integerToWords(n int64) string {
	groups := make([]string, 0, len(scaleNames))
	for scale := 0; n > 0 && scale < len(scaleNames); scale++ {
		chunk := int(n % 1000)
		n /= 1000
		if chunk == 0 {
			continue
		}
		words := chunkToWords(chunk)
		if scaleNames[scale] != "" {
			words += " " + scaleNames[scale]
		}
		groups = append(groups, words)
	}
	// groups were collected least significant first
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, " ")
}

func chunkToWords(n int) string {
	parts := make([]string, 0, 4)
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tensNames[n/10])
		if n%10 > 0 {
			parts = append(parts, smallNumbers[n%10])
		}
	case n > 0:
		parts = append(parts, smallNumbers[n])
	}
	return strings.Join(parts, " ")
}
