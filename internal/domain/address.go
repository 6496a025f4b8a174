package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Country is the only country the storefront ships to.
// Address writes always persist this literal; no country selection is exposed.
const Country = "Brasil"

// Address-related domain errors.
var (
	// ErrAddressNotFound is returned when an address update targets a row
	// that does not exist OR belongs to another user. The two cases are
	// deliberately indistinguishable so address ids cannot be probed.
	ErrAddressNotFound = &Error{Code: ENOTFOUND, Message: "Endereço não encontrado"}

	// ErrCEPNotFound is returned for a well-formed postal code the upstream
	// registry does not know.
	ErrCEPNotFound = &Error{Code: ENOTFOUND, Message: "CEP não encontrado"}
)

// ShippingAddress is a delivery address owned by exactly one user.
// Stored in canonical form: zip code masked NNNNN-NNN, CPF digits only,
// state uppercased, country fixed.
type ShippingAddress struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RecipientName string
	Street        string
	Number        string
	Complement    string // optional, may be empty
	Neighborhood  string
	City          string
	State         string // UF, 2 uppercase letters
	ZipCode       string // CEP, "NNNNN-NNN"
	Country       string
	Phone         string // display mask as typed, e.g. "(11) 98888-7777"
	Email         string
	CPF           string // 11 digits, no punctuation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddressInput is a raw field set as received from a form or API payload.
// All fields are strings; validation and normalization happen downstream.
type AddressInput struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	CPF          string `json:"cpf"`
	Phone        string `json:"phone"`
	ZipCode      string `json:"zipCode"`
	Street       string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// AddressService manages a user's shipping addresses.
//
// Create and Update validate and normalize their input before touching
// storage and revalidate the cached checkout identification page on
// success. Update is an ownership-scoped conditional mutation: zero rows
// affected surfaces as ErrAddressNotFound.
type AddressService interface {
	Create(ctx context.Context, userID uuid.UUID, input AddressInput) (*ShippingAddress, error)
	Update(ctx context.Context, addressID, userID uuid.UUID, input AddressInput) (*ShippingAddress, error)
	List(ctx context.Context, userID uuid.UUID) ([]ShippingAddress, error)
}
