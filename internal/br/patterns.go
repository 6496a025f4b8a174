package br

import "regexp"

var (
	phoneRx       = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	legacyPhoneRx = regexp.MustCompile(`^\(\d{2}\)\s?\d{4,5}-\d{4}$`)
	cepRx         = regexp.MustCompile(`^\d{5}-\d{3}$`)
	ufRx          = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// IsValidPhone reports whether s matches the canonical mobile mask
// "(DD) DDDDD-DDDD".
func IsValidPhone(s string) bool {
	return phoneRx.MatchString(s)
}

// IsValidLegacyPhone additionally accepts the older 4-digit local form
// "(DD) DDDD-DDDD". Only the address update flow uses this; the create
// flow requires the 5-digit mask. The asymmetry is inherited behavior
// and kept observable rather than silently unified.
func IsValidLegacyPhone(s string) bool {
	return legacyPhoneRx.MatchString(s)
}

// IsValidCEP reports whether s matches the masked postal code "DDDDD-DDD".
func IsValidCEP(s string) bool {
	return cepRx.MatchString(s)
}

// IsValidUF reports whether s is exactly two ASCII letters, any case.
func IsValidUF(s string) bool {
	return ufRx.MatchString(s)
}
