// Package storefront holds the customer-facing HTTP handlers: catalog,
// cart, checkout steps, shipping addresses, postal-code autofill and
// order history.
package storefront

import (
	"net/http"

	"github.com/google/uuid"

	"bewear/internal/domain"
	"bewear/internal/handler"
	"bewear/internal/middleware"
)

// AddressHandler serves the shipping-address endpoints.
type AddressHandler struct {
	addresses domain.AddressService
}

// NewAddressHandler creates an address handler.
func NewAddressHandler(addresses domain.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

type addressResponse struct {
	ID            string `json:"id"`
	RecipientName string `json:"fullName"`
	Street        string `json:"address"`
	Number        string `json:"number"`
	Complement    string `json:"complement,omitempty"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CPF           string `json:"cpf"`
}

func toAddressResponse(a domain.ShippingAddress) addressResponse {
	return addressResponse{
		ID:            a.ID.String(),
		RecipientName: a.RecipientName,
		Street:        a.Street,
		Number:        a.Number,
		Complement:    a.Complement,
		Neighborhood:  a.Neighborhood,
		City:          a.City,
		State:         a.State,
		ZipCode:       a.ZipCode,
		Country:       a.Country,
		Phone:         a.Phone,
		Email:         a.Email,
		CPF:           a.CPF,
	}
}

// List handles GET /api/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	addresses, err := h.addresses.List(r.Context(), user.ID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	out := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressResponse(a))
	}
	handler.RespondJSON(w, http.StatusOK, out)
}

// Create handles POST /api/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var input domain.AddressInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addr, err := h.addresses.Create(r.Context(), user.ID, input)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, toAddressResponse(*addr))
}

// Update handles PUT /api/addresses/{id}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	addressID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// An unparsable id is indistinguishable from a missing one.
		handler.RespondError(w, r, domain.ErrAddressNotFound)
		return
	}

	var input domain.AddressInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	addr, err := h.addresses.Update(r.Context(), addressID, user.ID, input)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toAddressResponse(*addr))
}
