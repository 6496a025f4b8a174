// Package br validates and normalizes Brazilian document and address
// formats: CPF (taxpayer id), CEP (postal code), phone numbers and UF
// (federative unit) codes. Every predicate is pure and fails closed;
// malformed input returns false, never a panic.
package br

// IsValidCPF reports whether s is a valid CPF.
//
// The input must be at least 11 characters before stripping (so a bare
// 10-digit string is rejected even if a mask would pad it). Non-digits
// are stripped, the result must be exactly 11 digits, sequences of a
// single repeated digit are rejected, and the two trailing check digits
// must match the mod-11 weighted checksum.
func IsValidCPF(s string) bool {
	if len(s) < 11 {
		return false
	}

	digits := OnlyDigits(s)
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(digits, 9) == int(digits[9]-'0') &&
		cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

// cpfCheckDigit computes the check digit over the first n digits.
// The weight starts at n+1 and decreases to 2; the remainder of
// sum*10 mod 11 maps 10 to 0.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		d = 0
	}
	return d
}
