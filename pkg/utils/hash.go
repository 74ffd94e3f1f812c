package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"interest-form/pkg/format"
)

// HashPhone returns the hex SHA-256 of the phone number's digits, so
// "123-456-7890" and "1234567890" hash the same
func HashPhone(phone string) string {
	sum := sha256.Sum256([]byte(format.Digits(phone)))
	return hex.EncodeToString(sum[:])
}

// MaskPin hides every PIN group except the last one
func MaskPin(pin string) string {
	groups := strings.Split(format.Pin(pin), "-")
	if len(groups) < 2 {
		return strings.Repeat("*", len(groups[0]))
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] = strings.Repeat("*", len(groups[i]))
	}
	return strings.Join(groups, "-")
}
