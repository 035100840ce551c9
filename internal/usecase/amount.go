package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmountCents converts a major-unit amount ("64,73", "64.73", "10") to
// cents, rounding half up. The first comma is read as the decimal separator.
func ParseAmountCents(raw string) (int64, error) {
	s := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, raw)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, raw)
	}
	return cents.IntPart(), nil
}

// OnlyDigits strips everything but ASCII digits.
func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
