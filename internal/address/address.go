// Package address holds the canonical shipping-address validation
// ruleset. One definition is shared by the create and update flows so the
// rules cannot drift between call sites; the single remaining divergence
// (the update flow's legacy phone mask) is explicit in the constructors.
package address

import "bewear/internal/domain"

// Normalized is a validated address field set in persisted form: name and
// number trimmed, CPF digits-only, CEP remasked, UF uppercased, phone kept
// as typed, country fixed.
type Normalized struct {
	Email         string
	RecipientName string
	CPF           string
	Phone         string
	ZipCode       string
	Street        string
	Number        string
	Complement    string
	Neighborhood  string
	City          string
	State         string
	Country       string
}

// Validator validates a raw address field set and produces its normalized
// form, or a field-keyed *domain.ValidationError listing every violation.
type Validator interface {
	ValidateAndNormalize(input domain.AddressInput) (*Normalized, error)
}
