package storefront

import (
	"net/http"

	"bewear/internal/cep"
	"bewear/internal/handler"
)

// CEPHandler serves the postal-code autofill endpoint.
type CEPHandler struct {
	lookup cep.Lookuper
}

// NewCEPHandler creates a CEP handler.
func NewCEPHandler(lookup cep.Lookuper) *CEPHandler {
	return &CEPHandler{lookup: lookup}
}

// Lookup handles GET /api/cep/{code}. Failures are non-fatal for the
// address form: the client falls back to manual entry on any error.
func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	result, err := h.lookup.Lookup(r.Context(), r.PathValue("code"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, result)
}
