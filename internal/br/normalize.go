package br

import (
	"fmt"
	"strings"
)

// OnlyDigits removes every non-digit character from s. Idempotent:
// OnlyDigits(OnlyDigits(x)) == OnlyDigits(x).
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// MaskCEP formats an 8-digit string as "NNNNN-NNN".
//
// Anything other than exactly 8 digits is an error. A silent pass-through
// here could let malformed postal codes reach storage if a call site ever
// skips prior validation, so the normalizer refuses instead.
func MaskCEP(digits string) (string, error) {
	if len(digits) != 8 || OnlyDigits(digits) != digits {
		return "", fmt.Errorf("mask cep: want exactly 8 digits, got %q", digits)
	}
	return digits[:5] + "-" + digits[5:], nil
}

// NormalizeUF uppercases a two-letter federative unit code.
// Validation is IsValidUF's job; this only canonicalizes case.
func NormalizeUF(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
