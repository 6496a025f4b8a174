package address

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"bewear/internal/br"
	"bewear/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// schemaValidator implements Validator. The phone predicate is the only
// knob: the create flow requires the 5-digit mobile mask while the update
// flow still accepts the legacy 4-digit local form.
type schemaValidator struct {
	phoneValid func(string) bool
	phoneMsg   string
	op         string
}

// NewCreateValidator returns the validator used when creating an address.
func NewCreateValidator() Validator {
	return &schemaValidator{
		phoneValid: br.IsValidPhone,
		phoneMsg:   "Celular inválido (ex: (11) 99999-9999)",
		op:         "address.create",
	}
}

// NewUpdateValidator returns the validator used when updating an address.
// It accepts the legacy 4-digit phone mask in addition to the mobile mask.
func NewUpdateValidator() Validator {
	return &schemaValidator{
		phoneValid: br.IsValidLegacyPhone,
		phoneMsg:   "Celular inválido (ex: (11) 98888-7777)",
		op:         "address.update",
	}
}

// ValidateAndNormalize checks every field independently so all violations
// are reported together, then applies the canonical transforms. Complement
// is the only optional field.
func (v *schemaValidator) ValidateAndNormalize(input domain.AddressInput) (*Normalized, error) {
	fields := make(map[string]string)

	if err := validate.Var(input.Email, "required,email"); err != nil {
		fields["email"] = "E-mail inválido"
	}
	if strings.TrimSpace(input.FullName) == "" {
		fields["fullName"] = "Nome completo é obrigatório"
	}
	if !br.IsValidCPF(input.CPF) {
		fields["cpf"] = "CPF inválido"
	}
	if !v.phoneValid(input.Phone) {
		fields["phone"] = v.phoneMsg
	}
	if !br.IsValidCEP(strings.TrimSpace(input.ZipCode)) {
		fields["zipCode"] = "CEP inválido (ex: 01311-000)"
	}
	if strings.TrimSpace(input.Street) == "" {
		fields["address"] = "Endereço é obrigatório"
	}
	if strings.TrimSpace(input.Number) == "" {
		fields["number"] = "Número é obrigatório"
	}
	if strings.TrimSpace(input.Neighborhood) == "" {
		fields["neighborhood"] = "Bairro é obrigatório"
	}
	if strings.TrimSpace(input.City) == "" {
		fields["city"] = "Cidade é obrigatória"
	}
	if !br.IsValidUF(input.State) {
		fields["state"] = "UF inválida (ex: SP)"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Op: v.op, Fields: fields}
	}

	zip, err := br.MaskCEP(br.OnlyDigits(input.ZipCode))
	if err != nil {
		// Unreachable after IsValidCEP, but the normalizer refuses rather
		// than persisting an unmasked value.
		return nil, &domain.ValidationError{
			Op:     v.op,
			Fields: map[string]string{"zipCode": "CEP inválido (ex: 01311-000)"},
		}
	}

	return &Normalized{
		Email:         input.Email,
		RecipientName: strings.TrimSpace(input.FullName),
		CPF:           br.OnlyDigits(input.CPF),
		Phone:         input.Phone,
		ZipCode:       zip,
		Street:        input.Street,
		Number:        strings.TrimSpace(input.Number),
		Complement:    input.Complement,
		Neighborhood:  input.Neighborhood,
		City:          input.City,
		State:         br.NormalizeUF(input.State),
		Country:       domain.Country,
	}, nil
}
