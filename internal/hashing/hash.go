// Package hashing normalizes and hashes user identity fields the way the
// Conversions API expects them: SHA-256 over a canonical form, hex encoded.
// Raw personal data never leaves the process.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Identity normalizes a free-text identity field (email, first/last name)
// to lowercase with surrounding whitespace removed, and returns the SHA-256
// digest of the result as 64 lowercase hex characters. Returns "" when the
// value is empty after normalization.
func Identity(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Phone reduces a phone number to its ASCII digits and returns the SHA-256
// digest as 64 lowercase hex characters, so "(555) 123-4567" and
// "5551234567" hash identically. Returns "" when no digits remain.
func Phone(value string) string {
	var digits []byte
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			digits = append(digits, value[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	sum := sha256.Sum256(digits)
	return hex.EncodeToString(sum[:])
}
