// Package format turns raw keystroke text into the masked strings shown in
// the interest form. Every function here is pure and never fails: input that
// does not fit a mask is reduced to the part that does.
package format

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"interest-form/pkg/models"
)

const (
	phoneDigits = 10
	pinDigits   = 16
	pinGroup    = 4
	// 16 digits plus 3 separators
	pinLength = pinDigits + pinDigits/pinGroup - 1

	currencyDecimals = 2
)

// Digits keeps only the characters 0-9
func Digits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DigitCount returns the number of 0-9 characters in value
func DigitCount(value string) int {
	return len(Digits(value))
}

// Phone masks value as ddd, ddd-ddd or ddd-ddd-dddd
func Phone(value string) string {
	digits := Digits(value)
	if len(digits) > phoneDigits {
		digits = digits[:phoneDigits]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

// Currency groups the integer part with commas and keeps at most two decimals.
// Only the first decimal point separates; any later point is dropped.
func Currency(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}

	integer, fraction, hasPoint := strings.Cut(b.String(), ".")
	fraction = strings.ReplaceAll(fraction, ".", "")

	grouped := ""
	if integer != "" {
		n, _ := new(big.Int).SetString(integer, 10)
		grouped = humanize.BigComma(n)
	}

	if !hasPoint {
		return grouped
	}
	if len(fraction) > currencyDecimals {
		fraction = fraction[:currencyDecimals]
	}
	return grouped + "." + fraction
}

// Pin groups digits in fours joined by hyphens, capped at 16 digits
func Pin(value string) string {
	digits := Digits(value)

	groups := make([]string, 0, len(digits)/pinGroup+1)
	for i := 0; i < len(digits); i += pinGroup {
		end := i + pinGroup
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}

	out := strings.Join(groups, "-")
	if len(out) > pinLength {
		out = out[:pinLength]
	}
	return out
}

// Field formats a keystroke for the given field the way the input control
// does: phone and PIN input is reduced to digits and clamped to the field's
// max length before masking, the price guess is masked as currency and the
// remaining fields pass through unchanged.
func Field(field models.Field, raw string) string {
	switch field {
	case models.FieldPhone:
		return Phone(clamp(field, Digits(raw)))
	case models.FieldSpidrPin:
		return Pin(clamp(field, Digits(raw)))
	case models.FieldCostGuess:
		return Currency(raw)
	}
	return raw
}

// Form passes every field of state through Field, so the masked fields hold
// exactly their display form
func Form(state models.FormState) models.FormState {
	for _, f := range models.Fields {
		state = state.With(f, Field(f, state.Get(f)))
	}
	return state
}

func clamp(field models.Field, digits string) string {
	spec, ok := models.SpecFor(field)
	if !ok || spec.MaxLength == 0 || len(digits) <= spec.MaxLength {
		return digits
	}
	return digits[:spec.MaxLength]
}
